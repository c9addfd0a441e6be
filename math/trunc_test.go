// SPDX-License-Identifier: GPL-2.0-or-later

package math

import (
	gmath "math"
	"testing"

	"github.com/chewxy/math32"
)

func TestTruncUint32(t *testing.T) {
	tests := []struct {
		in   float32
		want uint32
	}{
		{0, 0},
		{0.99, 0},
		{1.5, 1},
		{-7, 0},
		{4294967040, 4294967040},
		{4294967296, gmath.MaxUint32},
		{math32.Inf(1), gmath.MaxUint32},
		{math32.NaN(), 0},
	}
	for _, tc := range tests {
		if got := TruncUint32(tc.in); got != tc.want {
			t.Errorf("TruncUint32(%v) = %v want %v", tc.in, got, tc.want)
		}
	}
}

func TestTruncInt32(t *testing.T) {
	tests := []struct {
		in   float32
		want int32
	}{
		{0, 0},
		{2.9, 2},
		{-2.9, -2},
		{2147483648, gmath.MaxInt32},
		{-2147483648, gmath.MinInt32},
		{-3e9, gmath.MinInt32},
		{math32.NaN(), 0},
	}
	for _, tc := range tests {
		if got := TruncInt32(tc.in); got != tc.want {
			t.Errorf("TruncInt32(%v) = %v want %v", tc.in, got, tc.want)
		}
	}
}

func TestTruncUint8(t *testing.T) {
	tests := []struct {
		in   float32
		want uint8
	}{
		{0, 0},
		{255.99, 255},
		{256, 255},
		{-1, 0},
		{17.5, 17},
		{math32.NaN(), 0},
	}
	for _, tc := range tests {
		if got := TruncUint8(tc.in); got != tc.want {
			t.Errorf("TruncUint8(%v) = %v want %v", tc.in, got, tc.want)
		}
	}
}

func TestTruncInt(t *testing.T) {
	tests := []struct {
		in   float32
		want int
	}{
		{0, 0},
		{9.99, 9},
		{-0.5, 0},
		{-100, 0},
		{math32.Inf(1), gmath.MaxInt},
		{math32.NaN(), 0},
	}
	for _, tc := range tests {
		if got := TruncInt(tc.in); got != tc.want {
			t.Errorf("TruncInt(%v) = %v want %v", tc.in, got, tc.want)
		}
	}
}

func TestTruncInt64(t *testing.T) {
	tests := []struct {
		in   float32
		want int64
	}{
		{0, 0},
		{4e9, 4000000000},
		{-4294967296, -4294967296},
		{-7.9, -7},
		{math32.Inf(1), gmath.MaxInt64},
		{math32.Inf(-1), gmath.MinInt64},
		{math32.NaN(), 0},
	}
	for _, tc := range tests {
		if got := TruncInt64(tc.in); got != tc.want {
			t.Errorf("TruncInt64(%v) = %v want %v", tc.in, got, tc.want)
		}
	}
}
