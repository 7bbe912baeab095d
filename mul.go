// Copyright 2020 Aleksandr Demakin. All rights reserved.

package sfloat

import (
	mu "github.com/quackduck/sfloat/internal/mathutil"
)

// Mul returns the product of two values, rounded to nearest with ties to
// even. It is total and deterministic: every pair of encodings, signaling
// NaNs and subnormal boundaries included, produces a defined result.
func (v Value) Mul(other Value) Value {
	if r, ok := propagateNaN(v, other); ok {
		return r
	}
	neg := signbit(v) != signbit(other)
	if v.IsInf() || other.IsInf() {
		if v.IsZero() || other.IsZero() {
			return NaN()
		}
		return Inf(neg)
	}
	if v.IsZero() || other.IsZero() {
		return fromParts(neg, minExp, 0)
	}

	m1, adj1 := fullMantissa(v)
	m2, adj2 := fullMantissa(other)
	exponent := exp(v) + exp(other) + adj1 + adj2

	// The exact product of two significands in [2^52, 2^53) occupies up
	// to 106 bits; nothing may be lost before rounding.
	hi, lo := mu.Mul128(m1, m2)
	return roundPack(neg, exponent, hi, lo)
}
