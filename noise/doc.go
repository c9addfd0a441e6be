// SPDX-License-Identifier: GPL-2.0-or-later

// Package noise is a stateless positional hash. Every function maps a
// coordinate of one to four int32 values plus an int32 seed to a
// pseudo-random value, and the same inputs always produce the same output.
//
// The one dimensional functions take (index, seed). The XY, XYZ and XYZW
// variants fold their coordinates into a single index with Fold2, Fold3 and
// Fold4 and then behave exactly like the one dimensional form.
//
// The hash is not cryptographic.
package noise
