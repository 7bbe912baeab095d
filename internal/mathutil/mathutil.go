package mathutil

import (
	"math/bits"
)

// Mul128 returns the full 128-bit product of a and b as a (hi, lo) pair.
func Mul128(a, b uint64) (hi, lo uint64) {
	return bits.Mul64(a, b)
}

// LeadingZeros128 returns the number of leading zero bits in hi:lo.
// The result is 128 for a zero value.
func LeadingZeros128(hi, lo uint64) int {
	if hi != 0 {
		return bits.LeadingZeros64(hi)
	}
	return 64 + bits.LeadingZeros64(lo)
}

// Shl128 shifts hi:lo left by n bits. n must be below 128.
func Shl128(hi, lo uint64, n uint) (uint64, uint64) {
	switch {
	case n >= 64:
		return lo << (n - 64), 0
	case n == 0:
		return hi, lo
	}
	return hi<<n | lo>>(64-n), lo << n
}

// Shr128 shifts hi:lo right by n bits. n must be below 128.
func Shr128(hi, lo uint64, n uint) (uint64, uint64) {
	switch {
	case n >= 64:
		return 0, hi >> (n - 64)
	case n == 0:
		return hi, lo
	}
	return hi >> n, lo>>n | hi<<(64-n)
}

// Shr128RoundEven shifts hi:lo right by n bits and rounds the result to
// nearest, ties to even. n must be in [1, 127], and the shifted value must
// fit 64 bits.
func Shr128RoundEven(hi, lo uint64, n uint) uint64 {
	var kept, remHi, remLo uint64
	if n >= 64 {
		kept = hi >> (n - 64)
		remHi = hi & (1<<(n-64) - 1)
		remLo = lo
	} else {
		kept = hi<<(64-n) | lo>>n
		remLo = lo & (1<<n - 1)
	}
	halfHi, halfLo := Shl128(0, 1, n-1)
	switch {
	case remHi > halfHi || remHi == halfHi && remLo > halfLo:
		kept++
	case remHi == halfHi && remLo == halfLo && kept&1 == 1:
		kept++
	}
	return kept
}

// ShrSticky64 shifts x right by n bits, jamming any lost bits into the
// lowest bit of the result. n must be below 64.
func ShrSticky64(x uint64, n uint) uint64 {
	r := x >> n
	if x&(1<<n-1) != 0 {
		r |= 1
	}
	return r
}
