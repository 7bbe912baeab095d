// Copyright 2020 Aleksandr Demakin. All rights reserved.

package sfloat

import (
	"fmt"
	"strconv"
)

// String returns a decimal rendering of the value, such as "1.5",
// "-0.25", "+Inf" or "NaN". It is a diagnostic convenience and round-trips
// through the native formatter, never through this package's arithmetic.
func (v Value) String() string {
	return strconv.FormatFloat(v.Float64(), 'g', -1, 64)
}

// GoString returns a debug rendering with the decomposed fields:
// class, sign, unbiased exponent, and the 52-bit mantissa in binary.
func (v Value) GoString() string {
	neg, e, m := split(v)
	return fmt.Sprintf("%s %s {sign: %v, exp: %d, mant: %052b}", v.String(), v.Class(), neg, e, m)
}

// BitString returns all 64 bits of the encoding, most significant first.
func (v Value) BitString() string {
	return fmt.Sprintf("%064b", uint64(v))
}
