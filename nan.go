// Copyright 2020 Aleksandr Demakin. All rights reserved.

package sfloat

// canonicalNaN is the pattern returned for invalid operations such as
// 0 * Inf: positive sign, quiet bit set, payload zero.
const canonicalNaN = Value(0x7FF8000000000000)

// NaN returns the canonical quiet NaN.
func NaN() Value {
	return canonicalNaN
}

// Inf returns an infinity with the requested sign.
func Inf(neg bool) Value {
	return fromParts(neg, maxExp, 0)
}

// propagateNaN selects the result of an arithmetic operation with at least
// one NaN operand, following a fixed CPU convention rather than the
// implementation-defined IEEE latitude: a signaling NaN on either side wins
// over a quiet one, same-kind conflicts keep the first operand's payload,
// and the chosen payload is always quieted. The second return is false if
// neither operand is a NaN, in which case the caller proceeds with the
// numeric path.
func propagateNaN(a, b Value) (Value, bool) {
	if !a.IsNaN() && !b.IsNaN() {
		return 0, false
	}
	switch {
	case b.IsSignalingNaN() && !a.IsSignalingNaN():
		return b | Value(quietBit), true
	case a.IsNaN():
		return a | Value(quietBit), true
	}
	return b | Value(quietBit), true
}
