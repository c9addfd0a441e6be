// SPDX-License-Identifier: GPL-2.0-or-later

package rand

import (
	smath "squirrel/math"
)

// The helpers below are built from ZeroToOne and Int32 and advance the
// position once per underlying draw.

func (g *Generator) Float32Range(min, max float32) float32 {
	return min + float32((max-min)*g.ZeroToOne())
}

// Intn returns a value in [0, n). The scaled value is truncated, a
// non-positive n yields 0.
func (g *Generator) Intn(n int) int {
	return smath.TruncInt(g.ZeroToOne() * float32(n))
}

// IntRange returns a value in [min, max).
func (g *Generator) IntRange(min, max int) int {
	return min + g.Intn(max-min)
}

// Uint8 covers the full byte range.
func (g *Generator) Uint8() uint8 {
	return smath.TruncUint8(g.ZeroToOne() * 256)
}

func (g *Generator) Uint8Cap(max uint8) uint8 {
	return smath.TruncUint8(g.ZeroToOne() * float32(max))
}

func (g *Generator) Uint8Range(min, max uint8) uint8 {
	return min + g.Uint8Cap(max-min)
}

// Bool reports whether the next Int32 draw is negative.
func (g *Generator) Bool() bool {
	return g.Int32() < 0
}

// Shuffle permutes n elements with Fisher-Yates, calling swap(i, j) with
// j drawn from [0, i] for every i from 1 to n-1.
func (g *Generator) Shuffle(n int, swap func(i, j int)) {
	for i := 1; i < n; i++ {
		// ZeroToOne can round up to exactly 1
		j := min(g.Intn(i+1), i)
		swap(i, j)
	}
}

// ShuffleSlice shuffles s in place.
func ShuffleSlice[T any](g *Generator, s []T) {
	g.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}
