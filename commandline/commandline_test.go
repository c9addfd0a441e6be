// SPDX-License-Identifier: GPL-2.0-or-later

package commandline

import (
	"flag"
	"io"
	"testing"
)

func TestInt32Value(t *testing.T) {
	var flags flag.FlagSet
	flags.Init("test", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	var a, b, c int32Value
	flags.Var(&a, "a", "usage")
	flags.Var(&b, "b", "usage")
	flags.Var(&c, "c", "usage")
	if err := flags.Parse([]string{"-a=-5", "-b", "0x10", "-c=2147483647"}); err != nil {
		t.Fatal(err)
	}
	if a != -5 {
		t.Errorf("a = %v", a)
	}
	if b != 16 {
		t.Errorf("b = %v", b)
	}
	if c != 2147483647 {
		t.Errorf("c = %v", c)
	}
	if err := flags.Parse([]string{"-a=2147483648"}); err == nil {
		t.Errorf("out of range value accepted")
	}
}

func TestCoords(t *testing.T) {
	tests := []struct {
		in   string
		want string
		err  bool
	}{
		{"1", "1", false},
		{"1,-2", "1,-2", false},
		{"1, 2, 3", "1,2,3", false},
		{"1,2,3,4", "1,2,3,4", false},
		{"1,2,3,4,5", "", true},
		{"1,x", "", true},
		{"", "", false},
		{",", "", true},
	}
	for _, tc := range tests {
		var c coords
		err := c.Set(tc.in)
		if (err != nil) != tc.err {
			t.Errorf("Set(%q) error = %v", tc.in, err)
			continue
		}
		if err == nil && c.String() != tc.want {
			t.Errorf("Set(%q) = %v want %v", tc.in, c.String(), tc.want)
		}
	}
}
