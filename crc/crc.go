// SPDX-License-Identifier: GPL-2.0-or-later

// Package crc implements CRC-16/CCITT-FALSE, the XMODEM style 16 bit CRC.
package crc

const (
	poly    = 0x1021
	initial = 0xffff
)

var table = makeTable(poly)

func makeTable(poly uint16) *[256]uint16 {
	t := new([256]uint16)
	for i := range t {
		c := uint16(i) << 8
		for j := 0; j < 8; j++ {
			if c&0x8000 != 0 {
				c = c<<1 ^ poly
			} else {
				c <<= 1
			}
		}
		t[i] = c
	}
	return t
}

// Update returns the checksum c extended by p.
func Update(c uint16, p []byte) uint16 {
	for _, v := range p {
		c = table[byte(c>>8)^v] ^ c<<8
	}
	return c
}

// Sum16 returns the checksum of p.
func Sum16(p []byte) uint16 {
	return Update(initial, p)
}
