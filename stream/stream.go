// SPDX-License-Identifier: MIT

package stream

// Unbounded is the Len of a stream without a known end.
const Unbounded = -1

// Stream is a lazy sequence of values.
type Stream[T any] interface {
	// Next returns the next element and true, or the zero value and false
	// once the stream is exhausted.
	Next() (T, bool)
	// Len reports the remaining element count, or Unbounded.
	Len() int
	// Restart returns a new stream positioned at the first element.
	Restart() Stream[T]
}

// Take reads at most n elements from s.
func Take[T any](s Stream[T], n int) []T {
	out := make([]T, 0, n)
	for len(out) < n {
		v, ok := s.Next()
		if !ok {
			break
		}
		out = append(out, v)
	}

	return out
}

// sliceStream walks a fixed slice.
type sliceStream[T any] struct {
	items []T
	pos   int
}

// FromSlice returns a finite stream over items. The slice is not copied and
// must not be modified while the stream is in use.
func FromSlice[T any](items []T) Stream[T] { return &sliceStream[T]{items: items} }

func (s *sliceStream[T]) Next() (T, bool) {
	if s.pos >= len(s.items) {
		var zero T
		return zero, false
	}
	v := s.items[s.pos]
	s.pos++

	return v, true
}

func (s *sliceStream[T]) Len() int { return len(s.items) - s.pos }

func (s *sliceStream[T]) Restart() Stream[T] { return &sliceStream[T]{items: s.items} }

// repeatStream yields one value n times (or forever).
type repeatStream[T any] struct {
	v     T
	n     int
	taken int
}

// Repeat yields v n times; n == Unbounded repeats forever.
func Repeat[T any](v T, n int) Stream[T] { return &repeatStream[T]{v: v, n: n} }

func (s *repeatStream[T]) Next() (T, bool) {
	if s.n != Unbounded && s.taken >= s.n {
		var zero T
		return zero, false
	}
	s.taken++

	return s.v, true
}

func (s *repeatStream[T]) Len() int {
	if s.n == Unbounded {
		return Unbounded
	}

	return s.n - s.taken
}

func (s *repeatStream[T]) Restart() Stream[T] { return &repeatStream[T]{v: s.v, n: s.n} }

// genStream evaluates an index function on demand.
type genStream[T any] struct {
	gen func(i int) T
	n   int
	i   int
}

// Generate yields gen(0), gen(1), … up to n elements; n == Unbounded never ends.
// gen is called once per element per pass; Restart re-evaluates it.
func Generate[T any](gen func(i int) T, n int) Stream[T] {
	return &genStream[T]{gen: gen, n: n}
}

func (s *genStream[T]) Next() (T, bool) {
	if s.n != Unbounded && s.i >= s.n {
		var zero T
		return zero, false
	}
	v := s.gen(s.i)
	s.i++

	return v, true
}

func (s *genStream[T]) Len() int {
	if s.n == Unbounded {
		return Unbounded
	}

	return s.n - s.i
}

func (s *genStream[T]) Restart() Stream[T] { return &genStream[T]{gen: s.gen, n: s.n} }

// cachedStream memoizes an expensive source so that restarts replay the
// elements already computed instead of recomputing them.
type cachedStream[T any] struct {
	shared *cache[T]
	pos    int
}

type cache[T any] struct {
	src  Stream[T]
	done bool
	vals []T
}

// Cached wraps src so that each element is computed at most once across all
// restarts. The wrapper owns src from then on.
func Cached[T any](src Stream[T]) Stream[T] {
	return &cachedStream[T]{shared: &cache[T]{src: src}}
}

func (s *cachedStream[T]) Next() (T, bool) {
	c := s.shared
	if s.pos < len(c.vals) {
		v := c.vals[s.pos]
		s.pos++
		return v, true
	}
	if c.done {
		var zero T
		return zero, false
	}
	v, ok := c.src.Next()
	if !ok {
		c.done = true
		return v, false
	}
	c.vals = append(c.vals, v)
	s.pos++

	return v, true
}

func (s *cachedStream[T]) Len() int {
	n := s.shared.src.Len()
	if n == Unbounded {
		return Unbounded
	}

	return n + len(s.shared.vals) - s.pos
}

func (s *cachedStream[T]) Restart() Stream[T] { return &cachedStream[T]{shared: s.shared} }
