// SPDX-License-Identifier: GPL-2.0-or-later

package noise

import (
	smath "squirrel/math"
)

// Uint32 returns the hash of index under seed.
func Uint32(index, seed int32) uint32 {
	return Mix(uint32(index), uint32(seed))
}

func Uint32XY(x, y, seed int32) uint32 {
	return Uint32(Fold2(x, y), seed)
}

func Uint32XYZ(x, y, z, seed int32) uint32 {
	return Uint32(Fold3(x, y, z), seed)
}

func Uint32XYZW(x, y, z, w, seed int32) uint32 {
	return Uint32(Fold4(x, y, z, w), seed)
}

// Uint64 chains two 32 bit hashes at the same index. The high half is
// Uint32(index, seed), the low half rehashes index using the high half as
// seed.
func Uint64(index, seed int32) uint64 {
	hi := Uint32(index, seed)
	lo := Uint32(index, int32(hi))
	return uint64(hi)<<32 | uint64(lo)
}

func Uint64XY(x, y, seed int32) uint64 {
	return Uint64(Fold2(x, y), seed)
}

func Uint64XYZ(x, y, z, seed int32) uint64 {
	return Uint64(Fold3(x, y, z), seed)
}

func Uint64XYZW(x, y, z, w, seed int32) uint64 {
	return Uint64(Fold4(x, y, z, w), seed)
}

// Uint32Range returns a value in [min, max). The scaled offset is truncated,
// not rounded, so results lean slightly toward min. max is only reached when
// ZeroToOne is 1 or the width rounds up in float32. min > max is a caller
// error and yields values outside the band.
func Uint32Range(min, max uint32, index, seed int32) uint32 {
	width := max - min
	off := smath.TruncUint32(float32(width) * ZeroToOne(index, seed))
	if min <= max {
		off = smath.Clamp(0, off, width)
	}
	return min + off
}

func Uint32RangeXY(min, max uint32, x, y, seed int32) uint32 {
	return Uint32Range(min, max, Fold2(x, y), seed)
}

func Uint32RangeXYZ(min, max uint32, x, y, z, seed int32) uint32 {
	return Uint32Range(min, max, Fold3(x, y, z), seed)
}

func Uint32RangeXYZW(min, max uint32, x, y, z, w, seed int32) uint32 {
	return Uint32Range(min, max, Fold4(x, y, z, w), seed)
}

// Uint32Cap returns a value in [0, max).
func Uint32Cap(max uint32, index, seed int32) uint32 {
	return smath.TruncUint32(float32(max) * ZeroToOne(index, seed))
}

func Uint32CapXY(max uint32, x, y, seed int32) uint32 {
	return Uint32Cap(max, Fold2(x, y), seed)
}

func Uint32CapXYZ(max uint32, x, y, z, seed int32) uint32 {
	return Uint32Cap(max, Fold3(x, y, z), seed)
}

func Uint32CapXYZW(max uint32, x, y, z, w, seed int32) uint32 {
	return Uint32Cap(max, Fold4(x, y, z, w), seed)
}
