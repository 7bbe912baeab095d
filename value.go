// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package sfloat implements IEEE 754 binary64 arithmetic in software,
// operating directly on 64-bit encodings instead of hardware float
// instructions. Multiplication produces the bit-exact result a compliant
// floating-point unit would, including subnormals, signed zeros,
// infinities, and a fixed CPU-style NaN payload convention.
// Can be used to validate custom floating-point hardware, or in
// interpreters where native float multiplication is unavailable.
package sfloat

import (
	"math"
)

const (
	mantBits = 52
	expBits  = 11

	signMask = number(1) << 63
	expMask  = number(1)<<expBits - 1
	mantMask = number(1)<<mantBits - 1

	expBias = 1023

	// minExp is the unbiased exponent of the all-zeros field: zeros and
	// subnormals. maxExp is the all-ones field: infinities and NaNs.
	minExp = -expBias
	maxExp = expBias + 1

	// implicitBit is the leading significand bit of a normal value, not
	// stored in the encoding. quietBit distinguishes quiet NaNs.
	implicitBit = number(1) << 52
	quietBit    = number(1) << 51
)

type number = uint64

// Value is a binary64 number stored as its 64-bit IEEE 754 encoding.
//
//	63 62        52 51                                                 0
//	_|___________|_____________________________________________________
//	seeeeeeeeeeeemmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmm
//
// Every possible pattern is a legal Value, including all NaN payloads,
// so constructors never fail and arithmetic is total. The zero Value is +0.
type Value number

func signbit(v Value) bool {
	return number(v)&signMask != 0
}

func exp(v Value) int {
	return int(number(v)>>mantBits&expMask) - expBias
}

func mant(v Value) number {
	return number(v) & mantMask
}

func split(v Value) (neg bool, exponent int, mantissa number) {
	return signbit(v), exp(v), mant(v)
}

func fromParts(neg bool, exponent int, mantissa number) Value {
	var sign number
	if neg {
		sign = signMask
	}
	return Value(sign | (number(exponent+expBias)&expMask)<<mantBits | mantissa&mantMask)
}

// FromBits returns the value for a raw 64-bit encoding.
func FromBits(bits uint64) Value {
	return Value(bits)
}

// FromFloat64 returns the value with the same encoding as a native float64.
// It exists for reference and test construction; the arithmetic in this
// package never consults native floating point.
func FromFloat64(f float64) Value {
	return Value(math.Float64bits(f))
}

// FromParts composes a value from a sign, an unbiased exponent, and a 52-bit
// mantissa without the implicit bit. The exponent is re-biased and masked to
// 11 bits, the mantissa to 52 bits; out-of-range inputs are silently
// truncated, never validated. Callers must not rely on FromParts to
// range-check arbitrary values.
func FromParts(neg bool, exponent int, mantissa uint64) Value {
	return fromParts(neg, exponent, mantissa)
}

// Bits returns the raw 64-bit encoding.
func (v Value) Bits() uint64 {
	return uint64(v)
}

// Float64 reinterprets the encoding as a native float64. Diagnostic only.
func (v Value) Float64() float64 {
	return math.Float64frombits(uint64(v))
}

// Parts decomposes the value into a sign, an unbiased exponent in
// [-1023, 1024], and the raw 52-bit mantissa field.
func (v Value) Parts() (neg bool, exponent int, mantissa uint64) {
	return split(v)
}

// Signbit reports whether the sign bit is set. Note that -0 and NaNs with
// the sign bit set report true.
func (v Value) Signbit() bool {
	return signbit(v)
}

// Exp returns the unbiased exponent, in [-1023, 1024].
func (v Value) Exp() int {
	return exp(v)
}

// Mant returns the raw 52-bit mantissa field, without the implicit bit.
func (v Value) Mant() uint64 {
	return mant(v)
}

// Neg flips the sign bit in place. It is valid for every class, NaNs
// included, and is the only mutating operation on a Value.
func (v *Value) Neg() {
	*v ^= Value(signMask)
}

// IsZero reports whether v is +0 or -0.
func (v Value) IsZero() bool {
	return exp(v) == minExp && mant(v) == 0
}

// IsSubnormal reports whether v is subnormal.
func (v Value) IsSubnormal() bool {
	return exp(v) == minExp && mant(v) != 0
}

// IsNormal reports whether v is a normal, finite, nonzero number.
func (v Value) IsNormal() bool {
	e := exp(v)
	return e > minExp && e < maxExp
}

// IsInf reports whether v is +Inf or -Inf.
func (v Value) IsInf() bool {
	return exp(v) == maxExp && mant(v) == 0
}

// IsNaN reports whether v is a NaN, quiet or signaling.
func (v Value) IsNaN() bool {
	return exp(v) == maxExp && mant(v) != 0
}

// IsQuietNaN reports whether v is a NaN with the quiet bit set.
func (v Value) IsQuietNaN() bool {
	return v.IsNaN() && number(v)&quietBit != 0
}

// IsSignalingNaN reports whether v is a NaN with the quiet bit clear.
func (v Value) IsSignalingNaN() bool {
	return v.IsNaN() && number(v)&quietBit == 0
}

// Less reports whether v's encoding is below other's as an unsigned
// integer. Valid only for same-sign, non-NaN operands; this is an
// unsigned-magnitude helper, not an IEEE total order.
func (v Value) Less(other Value) bool {
	return v < other
}

// Greater reports whether v's encoding is above other's as an unsigned
// integer. Same preconditions as Less.
func (v Value) Greater(other Value) bool {
	return v > other
}

// Eq reports whether the encodings are identical. +0 and -0 are not equal,
// and NaNs with the same payload are.
func (v Value) Eq(other Value) bool {
	return v == other
}

// Class describes which of the five binary64 encoding classes a value
// belongs to.
type Class int

const (
	ClassZero Class = iota
	ClassSubnormal
	ClassNormal
	ClassInf
	ClassNaN
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case ClassZero:
		return "zero"
	case ClassSubnormal:
		return "subnormal"
	case ClassNormal:
		return "normal"
	case ClassInf:
		return "infinity"
	case ClassNaN:
		return "nan"
	}
	return "unknown"
}

// Class returns the encoding class of v.
func (v Value) Class() Class {
	switch e := exp(v); {
	case e == maxExp:
		if mant(v) == 0 {
			return ClassInf
		}
		return ClassNaN
	case e == minExp:
		if mant(v) == 0 {
			return ClassZero
		}
		return ClassSubnormal
	}
	return ClassNormal
}
