// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"sort"

	"github.com/ericlagergren/decimal"
	"github.com/katalvlaran/accel/nsum"
	"github.com/katalvlaran/accel/numeric"
)

// outcome is a field-independent view of nsum.Result.
type outcome struct {
	Value     string
	Error     *decimal.Big
	Method    nsum.Methods
	Terms     int
	Converged bool
}

// problem is one catalogue entry. Defaults are applied before the user's
// options, so flags and config files override them.
type problem struct {
	Name      string
	Summary   string
	Reference string
	Defaults  []nsum.Option
	Eval      func(ctx *numeric.Context, opts []nsum.Option) (outcome, error)
}

func realOutcome(R numeric.Real, res nsum.Result[*decimal.Big], err error) (outcome, error) {
	if err != nil {
		return outcome{}, err
	}

	return outcome{
		Value:     R.String(res.Value),
		Error:     res.Error,
		Method:    res.Method,
		Terms:     res.Terms,
		Converged: res.Converged,
	}, nil
}

func upFrom(n int64) numeric.Interval { return numeric.MustInterval(numeric.AtInt(n), numeric.PosInf) }

// alternatingSign returns (−1)^k for an integral k.
func alternatingSign(R numeric.Real, k *decimal.Big) *decimal.Big {
	n, _ := k.Int64()
	if n%2 != 0 {
		return R.FromInt(-1)
	}

	return R.One()
}

// zetaSum returns a problem for ζ(s) = Σ_{k≥1} k^-s.
func zetaSum(name string, s int, reference string) problem {
	return problem{
		Name:      name,
		Summary:   fmt.Sprintf("zeta(%d) = sum 1/k^%d, k >= 1", s, s),
		Reference: reference,
		Eval: func(ctx *numeric.Context, opts []nsum.Option) (outcome, error) {
			R := numeric.NewReal(ctx)
			f := func(k *decimal.Big) *decimal.Big { return R.Quo(R.One(), R.PowInt(k, s)) }
			res, err := nsum.Sum[*decimal.Big](R, f, upFrom(1), opts...)
			return realOutcome(R, res, err)
		},
	}
}

var catalog = map[string]problem{}

func register(p problem) { catalog[p.Name] = p }

func init() {
	register(zetaSum("zeta2", 2, "1.64493406684822643647241516665"))
	register(zetaSum("zeta3", 3, "1.20205690315959428539973816151"))

	register(problem{
		Name:      "leibniz",
		Summary:   "pi = sum 4(-1)^k/(2k+1), k >= 0",
		Reference: "3.14159265358979323846264338328",
		Eval: func(ctx *numeric.Context, opts []nsum.Option) (outcome, error) {
			R := numeric.NewReal(ctx)
			f := func(k *decimal.Big) *decimal.Big {
				den := R.Add(R.Mul(R.FromInt(2), k), R.One())
				return R.Quo(R.Mul(R.FromInt(4), alternatingSign(R, k)), den)
			}
			res, err := nsum.Sum[*decimal.Big](R, f, upFrom(0), opts...)
			return realOutcome(R, res, err)
		},
	})

	register(problem{
		Name:      "log2",
		Summary:   "log 2 = sum (-1)^(k+1)/k, k >= 1",
		Reference: "0.693147180559945309417232121458",
		Eval: func(ctx *numeric.Context, opts []nsum.Option) (outcome, error) {
			R := numeric.NewReal(ctx)
			f := func(k *decimal.Big) *decimal.Big { return R.Neg(R.Quo(alternatingSign(R, k), k)) }
			res, err := nsum.Sum[*decimal.Big](R, f, upFrom(1), opts...)
			return realOutcome(R, res, err)
		},
	})

	register(problem{
		Name:      "log10",
		Summary:   "log 10 = sum -(-9)^k/k, k >= 1 (divergent, Shanks continuation)",
		Reference: "2.30258509299404568401799145468",
		Defaults:  []nsum.Option{nsum.WithMethods(nsum.Shanks)},
		Eval: func(ctx *numeric.Context, opts []nsum.Option) (outcome, error) {
			R := numeric.NewReal(ctx)
			nine := R.FromInt(9)
			f := func(k *decimal.Big) *decimal.Big {
				n, _ := k.Int64()
				return R.Neg(R.Quo(R.Mul(alternatingSign(R, k), R.PowInt(nine, int(n))), k))
			}
			res, err := nsum.Sum[*decimal.Big](R, f, upFrom(1), opts...)
			return realOutcome(R, res, err)
		},
	})

	register(problem{
		Name:      "geometric-complex",
		Summary:   "1/(1-z) = sum z^k, k >= 0, z = 0.5+0.25i",
		Reference: "(1.6 + 0.8i)",
		Eval: func(ctx *numeric.Context, opts []nsum.Option) (outcome, error) {
			C := numeric.NewComplexField(ctx)
			R := C.Real()
			z := C.New(R.Quo(R.One(), R.FromInt(2)), R.Quo(R.One(), R.FromInt(4)))
			f := func(k numeric.Complex) numeric.Complex {
				n, _ := k.Re.Int64()
				p := C.One()
				for ; n > 0; n-- {
					p = C.Mul(p, z)
				}
				return p
			}
			res, err := nsum.Sum[numeric.Complex](C, f, upFrom(0), opts...)
			if err != nil {
				return outcome{}, err
			}
			return outcome{
				Value:     C.String(res.Value),
				Error:     res.Error,
				Method:    res.Method,
				Terms:     res.Terms,
				Converged: res.Converged,
			}, nil
		},
	})

	register(problem{
		Name:      "wallis",
		Summary:   "pi/2 = prod 4k^2/(4k^2-1), k >= 1",
		Reference: "1.57079632679489661923132169164",
		Eval: func(ctx *numeric.Context, opts []nsum.Option) (outcome, error) {
			R := numeric.NewReal(ctx)
			f := func(k *decimal.Big) *decimal.Big {
				q := R.Mul(R.FromInt(4), R.Mul(k, k))
				return R.Quo(q, R.Sub(q, R.One()))
			}
			res, err := nsum.Product[*decimal.Big](R, f, upFrom(1), opts...)
			return realOutcome(R, res, err)
		},
	})

	register(problem{
		Name:      "euler-gamma",
		Summary:   "gamma = lim H_n - log n, n -> +inf",
		Reference: "0.577215664901532860606512090082",
		Eval: func(ctx *numeric.Context, opts []nsum.Option) (outcome, error) {
			R := numeric.NewReal(ctx)
			inv := func(k *decimal.Big) *decimal.Big { return R.Quo(R.One(), k) }
			f := func(n *decimal.Big) *decimal.Big {
				m, _ := n.Int64()
				return R.Sub(nsum.FiniteSumRange[*decimal.Big](R, inv, 1, m), R.Log(n))
			}
			res, err := nsum.Limit[*decimal.Big](R, f, numeric.PosInf, opts...)
			return realOutcome(R, res, err)
		},
	})

	register(problem{
		Name:      "e",
		Summary:   "e = lim (1+1/n)^n, n -> +inf, exponential sampling",
		Reference: "2.71828182845904523536028747135",
		Defaults:  []nsum.Option{nsum.WithExponentialSampling()},
		Eval: func(ctx *numeric.Context, opts []nsum.Option) (outcome, error) {
			R := numeric.NewReal(ctx)
			f := func(n *decimal.Big) *decimal.Big {
				return R.Exp(R.Mul(n, R.Log(R.Add(R.One(), R.Quo(R.One(), n)))))
			}
			res, err := nsum.Limit[*decimal.Big](R, f, numeric.PosInf, opts...)
			return realOutcome(R, res, err)
		},
	})
}

// problemNames lists the catalogue in lexical order.
func problemNames() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
