// Copyright 2020 Aleksandr Demakin. All rights reserved.

package sfloat

import (
	mu "github.com/quackduck/sfloat/internal/mathutil"
)

// roundPack builds the final encoding from a sign, a working exponent, and
// an exact significand held in a 128-bit register, so that the represented
// number is (hi:lo) * 2^(exponent-104). The significand must be nonzero and
// below 2^106. Canonical position is bit 104; rounding is to nearest, ties
// to even.
//
// A carry out of the rounded 53-bit significand renormalizes without
// re-running the overflow check: composing exponent 1024 with a zero
// fraction is already the infinity encoding, so the carried case degrades
// to ±Inf on its own.
func roundPack(neg bool, exponent int, hi, lo uint64) Value {
	shift := uint(mantBits)
	if hi>>(105-64) != 0 {
		// The significand reached bit 105. Fold the renormalizing right
		// shift into the rounding distance, so the low bit still takes
		// part in tie detection.
		exponent++
		shift++
	} else if n := mu.LeadingZeros128(hi, lo) - 23; n > 0 {
		// Below canonical position, reachable with subnormal operands
		// and after additive cancellation.
		hi, lo = mu.Shl128(hi, lo, uint(n))
		exponent -= n
	}
	if exponent >= maxExp {
		return Inf(neg)
	}
	if exponent <= minExp {
		if exponent < minExp-mantBits {
			// Below half the smallest subnormal: underflow to zero.
			return fromParts(neg, minExp, 0)
		}
		// Shift further so the result lands in the subnormal range,
		// and pin the exponent to the subnormal marker.
		shift += uint(minExp + 1 - exponent)
		exponent = minExp
	}
	m := mu.Shr128RoundEven(hi, lo, shift)
	if m>>(mantBits+1) != 0 {
		// Round carry out of the 53-bit significand.
		m >>= 1
		exponent++
	}
	if exponent == minExp && m>>mantBits != 0 {
		// A subnormal rounded up into the smallest normal.
		exponent++
	}
	return fromParts(neg, exponent, m)
}

// fullMantissa returns the significand with the implicit bit restored for
// normal values, or the raw 52-bit field for subnormals, together with the
// exponent adjustment the caller must add: a subnormal's effective exponent
// is -1022, one above the stored -1023 sentinel.
func fullMantissa(v Value) (mantissa number, adjust int) {
	if exp(v) == minExp {
		return mant(v), 1
	}
	return mant(v) | implicitBit, 0
}
