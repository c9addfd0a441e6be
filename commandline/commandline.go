// SPDX-License-Identifier: GPL-2.0-or-later

package commandline

import (
	"flag"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	random  bool
	verbose bool

	seed     int32Value
	position int32Value
	at       coords

	count int

	lowerBound float64
	upperBound float64

	kind     string
	loadFile string
	saveFile string
)

type int32Value int32

func (i *int32Value) Set(s string) error {
	v, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		return errors.Wrapf(err, "%q is not a 32 bit integer", s)
	}
	*i = int32Value(v)
	return nil
}

func (i *int32Value) String() string {
	return strconv.FormatInt(int64(*i), 10)
}

// coords holds one to four comma separated int32 values. An empty string
// clears it.
type coords []int32

func (c *coords) Set(s string) error {
	if s == "" {
		*c = nil
		return nil
	}
	parts := strings.Split(s, ",")
	if len(parts) > 4 {
		return errors.Errorf("at most 4 coordinates, got %d", len(parts))
	}
	r := make(coords, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(p), 0, 32)
		if err != nil {
			return errors.Wrapf(err, "bad coordinate %q", p)
		}
		r = append(r, int32(v))
	}
	*c = r
	return nil
}

func (c *coords) String() string {
	s := make([]string, len(*c))
	for i, v := range *c {
		s[i] = strconv.FormatInt(int64(v), 10)
	}
	return strings.Join(s, ",")
}

func init() {
	flag.BoolVar(&random, "random", false, "seed from system entropy, overrides -seed")
	flag.BoolVar(&verbose, "v", false, "verbose logging")

	flag.Var(&seed, "seed", "noise seed")
	flag.Var(&position, "pos", "start position of the generator")
	flag.Var(&at, "at", "print the value at x[,y[,z[,w]]] instead of a stream")

	flag.IntVar(&count, "n", 8, "number of values to draw")

	flag.Float64Var(&lowerBound, "min", 0, "lower bound for ranged kinds")
	flag.Float64Var(&upperBound, "max", 0, "upper bound for ranged kinds, unranged if min and max are 0")

	flag.StringVar(&kind, "kind", "u32", "u32, i32, u64, i64, f01, f11, bool or u8")
	flag.StringVar(&loadFile, "load", "", "read the generator state from this file")
	flag.StringVar(&saveFile, "save", "", "write the generator state to this file when done")
}

func Random() bool {
	return random
}

func Verbose() bool {
	return verbose
}

func Seed() int32 {
	return int32(seed)
}

func Position() int32 {
	return int32(position)
}

// At returns the coordinate given with -at, nil if unset.
func At() []int32 {
	return at
}

func Count() int {
	return count
}

func Min() float64 {
	return lowerBound
}

func Max() float64 {
	return upperBound
}

// Ranged reports whether -min or -max were set to something non zero.
func Ranged() bool {
	return lowerBound != 0 || upperBound != 0
}

func Kind() string {
	return kind
}

func LoadFile() string {
	return loadFile
}

func SaveFile() string {
	return saveFile
}
