// SPDX-License-Identifier: GPL-2.0-or-later

package noise

import (
	smath "squirrel/math"
)

// Int32 is Uint32 reinterpreted as a signed value.
func Int32(index, seed int32) int32 {
	return int32(Uint32(index, seed))
}

func Int32XY(x, y, seed int32) int32 {
	return Int32(Fold2(x, y), seed)
}

func Int32XYZ(x, y, z, seed int32) int32 {
	return Int32(Fold3(x, y, z), seed)
}

func Int32XYZW(x, y, z, w, seed int32) int32 {
	return Int32(Fold4(x, y, z, w), seed)
}

// Int64 is Uint64 reinterpreted as a signed value.
func Int64(index, seed int32) int64 {
	return int64(Uint64(index, seed))
}

func Int64XY(x, y, seed int32) int64 {
	return Int64(Fold2(x, y), seed)
}

func Int64XYZ(x, y, z, seed int32) int64 {
	return Int64(Fold3(x, y, z), seed)
}

func Int64XYZW(x, y, z, w, seed int32) int64 {
	return Int64(Fold4(x, y, z, w), seed)
}

// Int32Range returns a value in [min, max), truncating the scaled offset
// toward zero. The width is taken in 64 bits so ranges wider than MaxInt32
// keep their bounds, the offset never passes max.
func Int32Range(min, max int32, index, seed int32) int32 {
	width := int64(max) - int64(min)
	off := smath.TruncInt64(float32(width) * ZeroToOne(index, seed))
	if width >= 0 {
		off = smath.Clamp(0, off, width)
	}
	return int32(int64(min) + off)
}

func Int32RangeXY(min, max int32, x, y, seed int32) int32 {
	return Int32Range(min, max, Fold2(x, y), seed)
}

func Int32RangeXYZ(min, max int32, x, y, z, seed int32) int32 {
	return Int32Range(min, max, Fold3(x, y, z), seed)
}

func Int32RangeXYZW(min, max int32, x, y, z, w, seed int32) int32 {
	return Int32Range(min, max, Fold4(x, y, z, w), seed)
}

// Int32Cap returns a value between 0 and max, excluding max.
func Int32Cap(max int32, index, seed int32) int32 {
	return smath.TruncInt32(float32(max) * ZeroToOne(index, seed))
}

func Int32CapXY(max int32, x, y, seed int32) int32 {
	return Int32Cap(max, Fold2(x, y), seed)
}

func Int32CapXYZ(max int32, x, y, z, seed int32) int32 {
	return Int32Cap(max, Fold3(x, y, z), seed)
}

func Int32CapXYZW(max int32, x, y, z, w, seed int32) int32 {
	return Int32Cap(max, Fold4(x, y, z, w), seed)
}
