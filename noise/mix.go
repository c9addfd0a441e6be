// SPDX-License-Identifier: GPL-2.0-or-later

package noise

const (
	noise1 = 0xD2A80A3F // 11010010101010000000101000111111
	noise2 = 0xA884F197 // 10101000100001001111000110010111
	noise3 = 0x6C736F4B // 01101100011100110110111101001011
	noise4 = 0xB79F3ABB // 10110111100111110011101010111011
	noise5 = 0x1B56C4F5 // 00011011010101101100010011110101
)

// Mix scrambles value with seed. All arithmetic wraps modulo 2^32.
// Changing any constant changes every value derived from Mix.
func Mix(value, seed uint32) uint32 {
	m := value
	m *= noise1
	m += seed
	m ^= m >> 9
	m += noise2
	m ^= m >> 11
	m *= noise3
	m ^= m >> 13
	m += noise4
	m ^= m >> 15
	m *= noise5
	m ^= m >> 17
	return m
}
