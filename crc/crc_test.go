// SPDX-License-Identifier: GPL-2.0-or-later

package crc

import (
	"testing"
)

func TestSum16(t *testing.T) {
	tests := []struct {
		in   string
		want uint16
	}{
		{"", 0xffff},
		{"123456789", 0x29b1},
	}
	for _, tc := range tests {
		if got := Sum16([]byte(tc.in)); got != tc.want {
			t.Errorf("Sum16(%q) = %#04x want %#04x", tc.in, got, tc.want)
		}
	}
}

func TestUpdateSplits(t *testing.T) {
	whole := Sum16([]byte("123456789"))
	split := Update(Sum16([]byte("1234")), []byte("56789"))
	if whole != split {
		t.Errorf("split update %#04x != %#04x", split, whole)
	}
}
