// SPDX-License-Identifier: GPL-2.0-or-later

package rand

import (
	"encoding/binary"
	"io"
	mrand "math/rand/v2"
)

var (
	_ mrand.Source = (*Generator)(nil)
	_ io.Reader    = (*Generator)(nil)
	_ mrand.Source = (*Locked)(nil)
	_ io.Reader    = (*Locked)(nil)
)

// FromSeedBytes returns a generator at position 0 seeded with the little
// endian value of b.
func FromSeedBytes(b [4]byte) Generator {
	return New(int32(binary.LittleEndian.Uint32(b[:])), 0)
}

// Read fills p with little endian Uint64 draws. A tail of five to seven
// bytes takes one more Uint64, a tail of up to four bytes one Uint32.
// It never fails.
func (g *Generator) Read(p []byte) (int, error) {
	n := len(p)
	for len(p) >= 8 {
		binary.LittleEndian.PutUint64(p, g.Uint64())
		p = p[8:]
	}
	var tail [8]byte
	switch {
	case len(p) > 4:
		binary.LittleEndian.PutUint64(tail[:], g.Uint64())
		copy(p, tail[:])
	case len(p) > 0:
		binary.LittleEndian.PutUint32(tail[:], g.Uint32())
		copy(p, tail[:4])
	}
	return n, nil
}
