// SPDX-License-Identifier: GPL-2.0-or-later

// Package rand provides a streaming generator on top of the stateless
// noise functions.
package rand

import (
	"squirrel/noise"
)

// Generator walks the noise field of one seed. Every draw hashes the current
// position and then advances it by exactly one, also for draws that hash
// more than once internally. The position wraps after 2^32 draws.
//
// The zero value is a generator with seed 0 at position 0.
// A Generator must not be used by multiple goroutines at once, use Locked
// for that.
type Generator struct {
	seed int32
	pos  int32
}

func New(seed, position int32) Generator {
	return Generator{seed: seed, pos: position}
}

func (g Generator) Seed() int32 {
	return g.seed
}

func (g Generator) Position() int32 {
	return g.pos
}

// NewSeed switches to another seed without moving the position.
func (g *Generator) NewSeed(s int32) {
	g.seed = s
}

// Jump moves the position by delta.
func (g *Generator) Jump(delta int32) {
	g.pos += delta
}

// Goto moves the position to p.
func (g *Generator) Goto(p int32) {
	g.pos = p
}

func (g *Generator) next() int32 {
	p := g.pos
	g.pos++
	return p
}

func (g *Generator) Uint32() uint32 {
	return noise.Uint32(g.next(), g.seed)
}

func (g *Generator) Uint32Range(min, max uint32) uint32 {
	return noise.Uint32Range(min, max, g.next(), g.seed)
}

func (g *Generator) Uint32Cap(max uint32) uint32 {
	return noise.Uint32Cap(max, g.next(), g.seed)
}

func (g *Generator) Uint64() uint64 {
	return noise.Uint64(g.next(), g.seed)
}

func (g *Generator) Int32() int32 {
	return noise.Int32(g.next(), g.seed)
}

func (g *Generator) Int32Range(min, max int32) int32 {
	return noise.Int32Range(min, max, g.next(), g.seed)
}

func (g *Generator) Int32Cap(max int32) int32 {
	return noise.Int32Cap(max, g.next(), g.seed)
}

func (g *Generator) Int64() int64 {
	return noise.Int64(g.next(), g.seed)
}

func (g *Generator) ZeroToOne() float32 {
	return noise.ZeroToOne(g.next(), g.seed)
}

func (g *Generator) NegOneToOne() float32 {
	return noise.NegOneToOne(g.next(), g.seed)
}
