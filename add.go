// Copyright 2020 Aleksandr Demakin. All rights reserved.

package sfloat

import (
	mu "github.com/quackduck/sfloat/internal/mathutil"
)

// Add returns the sum of two values, rounded to nearest with ties to even.
// NaN selection follows the same convention as Mul; opposite-signed
// infinities yield the canonical NaN; exact cancellation yields +0.
func (v Value) Add(other Value) Value {
	if r, ok := propagateNaN(v, other); ok {
		return r
	}
	switch {
	case v.IsInf():
		if other.IsInf() && signbit(v) != signbit(other) {
			return NaN()
		}
		return v
	case other.IsInf():
		return other
	case v.IsZero():
		if other.IsZero() {
			// -0 + -0 keeps the sign, every other zero pair is +0.
			return fromParts(signbit(v) && signbit(other), minExp, 0)
		}
		return other
	case other.IsZero():
		return v
	}

	// Order the operands by magnitude. Same-sign finite encodings compare
	// as unsigned integers, and here only the exponent and mantissa
	// fields take part.
	big, small := v, other
	if exp(big) < exp(small) || exp(big) == exp(small) && mant(big) < mant(small) {
		big, small = small, big
	}
	mb, adjb := fullMantissa(big)
	ms, adjs := fullMantissa(small)
	eb := exp(big) + adjb
	diff := uint(eb - exp(small) - adjs)

	// Three guard bits keep rounding decisions exact; bits lost to the
	// alignment shift are jammed into a sticky bit. A shift short enough
	// to allow more than one bit of cancellation loses nothing, so a jam
	// implies the difference keeps its top bit within one position of the
	// larger operand's, and the jam stays below the rounding position
	// where it forces an odd remainder instead of a false tie. Past 64
	// bits of difference the smaller operand cannot overlap the register
	// at all and survives only as the sticky bit.
	mb <<= 3
	ms <<= 3
	if diff >= 64 {
		ms = 1
	} else {
		ms = mu.ShrSticky64(ms, diff)
	}

	var sum number
	if signbit(big) == signbit(small) {
		sum = mb + ms
	} else {
		sum = mb - ms
		if sum == 0 {
			// x + (-x): round-to-nearest produces +0.
			return fromParts(false, minExp, 0)
		}
	}

	// sum carries the value sum * 2^(eb-55); rebase it onto roundPack's
	// 2^(exponent-104) register scale.
	return roundPack(signbit(big), eb+49, 0, sum)
}
