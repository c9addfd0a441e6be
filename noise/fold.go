// SPDX-License-Identifier: GPL-2.0-or-later

package noise

const (
	prime1 = 198491317
	prime2 = 6542989
	prime3 = 357239
)

// Fold2 folds a 2D coordinate into a single index. Overflow wraps.
func Fold2(x, y int32) int32 {
	return x + y*prime1
}

// Fold3 folds a 3D coordinate into a single index. Overflow wraps.
func Fold3(x, y, z int32) int32 {
	return x + y*prime1 + z*prime2
}

// Fold4 folds a 4D coordinate into a single index. Overflow wraps.
func Fold4(x, y, z, w int32) int32 {
	return x + y*prime1 + z*prime2 + w*prime3
}
