// SPDX-License-Identifier: MIT

// Package stream provides restartable, possibly unbounded sequences.
//
// A Stream carries its own length tag: Len returns the number of remaining
// elements for finite streams and Unbounded otherwise. Restart returns a fresh
// stream positioned at the first element; the receiver is left untouched, so
// a consumer can walk the same sequence several times (derivative streams at
// each endpoint of a sum are read that way).
package stream
