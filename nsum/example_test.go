// SPDX-License-Identifier: MIT

package nsum_test

import (
	"fmt"

	"github.com/ericlagergren/decimal"
	"github.com/katalvlaran/accel/nsum"
	"github.com/katalvlaran/accel/numeric"
)

// ExampleSum evaluates ζ(2) = Σ 1/k² to 15 digits.
func ExampleSum() {
	R := numeric.NewReal(numeric.NewContext(15))
	f := func(k *decimal.Big) *decimal.Big { return R.Quo(R.One(), R.Mul(k, k)) }

	res, err := nsum.Sum[*decimal.Big](R, f, numeric.MustInterval(numeric.AtInt(1), numeric.PosInf))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.12f converged=%v\n", numeric.Float64(res.Value), res.Converged)
	// Output:
	// 1.644934066848 converged=true
}

// ExampleProduct multiplies a finite range directly.
func ExampleProduct() {
	R := numeric.NewReal(numeric.NewContext(15))
	f := func(k *decimal.Big) *decimal.Big { return k }

	res, err := nsum.Product[*decimal.Big](R, f, numeric.MustInterval(numeric.AtInt(1), numeric.AtInt(10)))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(R.String(res.Value), res.Method)
	// Output:
	// 3628800 direct
}

// ExampleLimit evaluates lim (e^x − 1)/x as x → 0.
func ExampleLimit() {
	R := numeric.NewReal(numeric.NewContext(15))
	f := func(x *decimal.Big) *decimal.Big { return R.Quo(R.Sub(R.Exp(x), R.One()), x) }

	res, err := nsum.Limit[*decimal.Big](R, f, numeric.AtInt(0))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.10f\n", numeric.Float64(res.Value))
	// Output:
	// 1.0000000000
}

// ExampleParseMethods shows the accepted method spellings.
func ExampleParseMethods() {
	m, err := nsum.ParseMethods("r+Shanks")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(m)
	// Output:
	// richardson+shanks
}
