// SPDX-License-Identifier: GPL-2.0-or-later

package noise

import (
	"math"
)

// ZeroToOne maps Uint32 onto [0, 1]. The division happens in float64 and is
// narrowed afterwards.
func ZeroToOne(index, seed int32) float32 {
	return float32(float64(Uint32(index, seed)) / math.MaxUint32)
}

func ZeroToOneXY(x, y, seed int32) float32 {
	return ZeroToOne(Fold2(x, y), seed)
}

func ZeroToOneXYZ(x, y, z, seed int32) float32 {
	return ZeroToOne(Fold3(x, y, z), seed)
}

func ZeroToOneXYZW(x, y, z, w, seed int32) float32 {
	return ZeroToOne(Fold4(x, y, z, w), seed)
}

// NegOneToOne maps Int32 onto [-1, 1]. It divides by MaxInt32 rather than
// by the magnitude of MinInt32, so the negative side is scaled slightly
// differently from the positive one. Existing outputs depend on this.
func NegOneToOne(index, seed int32) float32 {
	return float32(float64(Int32(index, seed)) / math.MaxInt32)
}

func NegOneToOneXY(x, y, seed int32) float32 {
	return NegOneToOne(Fold2(x, y), seed)
}

func NegOneToOneXYZ(x, y, z, seed int32) float32 {
	return NegOneToOne(Fold3(x, y, z), seed)
}

func NegOneToOneXYZW(x, y, z, w, seed int32) float32 {
	return NegOneToOne(Fold4(x, y, z, w), seed)
}

// Float32Range returns min + (max-min)*ZeroToOne.
func Float32Range(min, max float32, index, seed int32) float32 {
	// keep the product rounded on its own, a fused multiply-add gives
	// different bits
	return min + float32((max-min)*ZeroToOne(index, seed))
}

func Float32RangeXY(min, max float32, x, y, seed int32) float32 {
	return Float32Range(min, max, Fold2(x, y), seed)
}

func Float32RangeXYZ(min, max float32, x, y, z, seed int32) float32 {
	return Float32Range(min, max, Fold3(x, y, z), seed)
}

func Float32RangeXYZW(min, max float32, x, y, z, w, seed int32) float32 {
	return Float32Range(min, max, Fold4(x, y, z, w), seed)
}
