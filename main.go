// SPDX-License-Identifier: GPL-2.0-or-later

// Command squirrel prints positional noise values, either as a stream from a
// generator or as a single stateless sample at a coordinate.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	gmath "math"
	"os"

	"github.com/pkg/errors"

	"squirrel/commandline"
	"squirrel/conlog"
	"squirrel/noise"
	"squirrel/rand"
	"squirrel/statefile"
)

func main() {
	flag.Parse()
	conlog.SetVerbose(commandline.Verbose())
	if err := run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "squirrel: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer) error {
	g, err := generator()
	if err != nil {
		return err
	}
	conlog.Debugf("seed %d, position %d\n", g.Seed(), g.Position())

	if c := commandline.At(); len(c) > 0 {
		// stateless, only the seed of the generator matters
		s, err := sample(commandline.Kind(), c, g.Seed())
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, s)
		return err
	}

	bw := bufio.NewWriter(w)
	for i := 0; i < commandline.Count(); i++ {
		s, err := draw(&g, commandline.Kind())
		if err != nil {
			return err
		}
		fmt.Fprintln(bw, s)
	}
	if err := bw.Flush(); err != nil {
		return err
	}

	if name := commandline.SaveFile(); name != "" {
		if err := statefile.Save(name, &g); err != nil {
			return err
		}
		conlog.Debugf("saved position %d to %s\n", g.Position(), name)
	}
	return nil
}

func generator() (rand.Generator, error) {
	switch {
	case commandline.LoadFile() != "":
		return statefile.Load(commandline.LoadFile())
	case commandline.Random():
		return rand.NewRandom()
	}
	return rand.New(commandline.Seed(), commandline.Position()), nil
}

// checkBounds rejects -min/-max values that are not whole numbers in
// [lower, upper].
func checkBounds(lo, hi, lower, upper float64) error {
	for _, v := range []float64{lo, hi} {
		if v != gmath.Trunc(v) || v < lower || v > upper {
			return errors.Errorf("bound %v is not an integer in [%v, %v]", v, lower, upper)
		}
	}
	return nil
}

func draw(g *rand.Generator, kind string) (string, error) {
	lo, hi := commandline.Min(), commandline.Max()
	ranged := commandline.Ranged()
	switch kind {
	case "u32":
		if !ranged {
			return fmt.Sprint(g.Uint32()), nil
		}
		if err := checkBounds(lo, hi, 0, gmath.MaxUint32); err != nil {
			return "", err
		}
		return fmt.Sprint(g.Uint32Range(uint32(lo), uint32(hi))), nil
	case "i32":
		if !ranged {
			return fmt.Sprint(g.Int32()), nil
		}
		if err := checkBounds(lo, hi, gmath.MinInt32, gmath.MaxInt32); err != nil {
			return "", err
		}
		return fmt.Sprint(g.Int32Range(int32(lo), int32(hi))), nil
	case "u64":
		return fmt.Sprint(g.Uint64()), nil
	case "i64":
		return fmt.Sprint(g.Int64()), nil
	case "f01":
		if ranged {
			return fmt.Sprint(g.Float32Range(float32(lo), float32(hi))), nil
		}
		return fmt.Sprint(g.ZeroToOne()), nil
	case "f11":
		return fmt.Sprint(g.NegOneToOne()), nil
	case "bool":
		return fmt.Sprint(g.Bool()), nil
	case "u8":
		if !ranged {
			return fmt.Sprint(g.Uint8()), nil
		}
		if err := checkBounds(lo, hi, 0, gmath.MaxUint8); err != nil {
			return "", err
		}
		return fmt.Sprint(g.Uint8Range(uint8(lo), uint8(hi))), nil
	}
	return "", errors.Errorf("unknown kind %q", kind)
}

func sample(kind string, c []int32, seed int32) (string, error) {
	var index int32
	switch len(c) {
	case 1:
		index = c[0]
	case 2:
		index = noise.Fold2(c[0], c[1])
	case 3:
		index = noise.Fold3(c[0], c[1], c[2])
	case 4:
		index = noise.Fold4(c[0], c[1], c[2], c[3])
	default:
		return "", errors.Errorf("need 1 to 4 coordinates, got %d", len(c))
	}
	conlog.Debugf("coordinate %v folds to index %d\n", c, index)

	lo, hi := commandline.Min(), commandline.Max()
	ranged := commandline.Ranged()
	switch kind {
	case "u32":
		if !ranged {
			return fmt.Sprint(noise.Uint32(index, seed)), nil
		}
		if err := checkBounds(lo, hi, 0, gmath.MaxUint32); err != nil {
			return "", err
		}
		return fmt.Sprint(noise.Uint32Range(uint32(lo), uint32(hi), index, seed)), nil
	case "i32":
		if !ranged {
			return fmt.Sprint(noise.Int32(index, seed)), nil
		}
		if err := checkBounds(lo, hi, gmath.MinInt32, gmath.MaxInt32); err != nil {
			return "", err
		}
		return fmt.Sprint(noise.Int32Range(int32(lo), int32(hi), index, seed)), nil
	case "u64":
		return fmt.Sprint(noise.Uint64(index, seed)), nil
	case "i64":
		return fmt.Sprint(noise.Int64(index, seed)), nil
	case "f01":
		if ranged {
			return fmt.Sprint(noise.Float32Range(float32(lo), float32(hi), index, seed)), nil
		}
		return fmt.Sprint(noise.ZeroToOne(index, seed)), nil
	case "f11":
		return fmt.Sprint(noise.NegOneToOne(index, seed)), nil
	}
	return "", errors.Errorf("kind %q has no stateless form", kind)
}
