// Copyright 2020 Aleksandr Demakin. All rights reserved.

package sfloat

import (
	"fmt"
)

func ExampleValue() {
	a := FromFloat64(1.5)
	b := FromFloat64(-2)

	p := a.Mul(b)
	fmt.Printf("%v * %v = %v (%v)\n", a, b, p, p.Class())

	neg, exp, mant := p.Parts()
	fmt.Printf("sign: %v, exponent: %d, mantissa: %d\n", neg, exp, mant)

	s := a.Add(b)
	fmt.Printf("%v + %v = %v\n", a, b, s)

	invalid := FromBits(0).Mul(Inf(false))
	fmt.Printf("0 * +Inf = %v, quiet: %v\n", invalid, invalid.IsQuietNaN())

	// Output:
	// 1.5 * -2 = -3 (normal)
	// sign: true, exponent: 1, mantissa: 2251799813685248
	// 1.5 + -2 = -0.5
	// 0 * +Inf = NaN, quiet: true
}
