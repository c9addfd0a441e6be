// SPDX-License-Identifier: GPL-2.0-or-later

package math

import (
	gmath "math"

	"github.com/chewxy/math32"
)

// Neither MaxInt32 nor MaxUint32 is representable as float32, both round up
// to the next power of two. Anything at or above these limits saturates.
const (
	twoTo31 = 1 << 31
	twoTo32 = 1 << 32
	twoTo63 = 1 << 63
)

var maxInt = float32(gmath.MaxInt)

// The Trunc functions convert a float32 to an integer type by truncating
// toward zero. Out of range values saturate at the bounds of the target type
// and NaN becomes 0, so the result never depends on the platform's handling
// of overflowing conversions.

func TruncUint32(f float32) uint32 {
	switch {
	case math32.IsNaN(f) || f <= 0:
		return 0
	case f >= twoTo32:
		return gmath.MaxUint32
	}
	return uint32(f)
}

func TruncInt32(f float32) int32 {
	switch {
	case math32.IsNaN(f):
		return 0
	case f >= twoTo31:
		return gmath.MaxInt32
	case f <= -twoTo31:
		return gmath.MinInt32
	}
	return int32(f)
}

func TruncInt64(f float32) int64 {
	switch {
	case math32.IsNaN(f):
		return 0
	case f >= twoTo63:
		return gmath.MaxInt64
	case f <= -twoTo63:
		return gmath.MinInt64
	}
	return int64(f)
}

// TruncUint8 saturates at 255, so ZeroToOne()*256 covers the full byte.
func TruncUint8(f float32) uint8 {
	if math32.IsNaN(f) {
		return 0
	}
	return uint8(Clamp(0, math32.Trunc(f), gmath.MaxUint8))
}

// TruncInt is the non-negative truncation used for slice indices.
// Negative values yield 0.
func TruncInt(f float32) int {
	switch {
	case math32.IsNaN(f) || f <= 0:
		return 0
	case f >= maxInt:
		return gmath.MaxInt
	}
	return int(f)
}
