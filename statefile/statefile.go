// SPDX-License-Identifier: GPL-2.0-or-later

// Package statefile persists a generator between runs.
package statefile

import (
	"os"

	"github.com/pkg/errors"

	"squirrel/rand"
)

// Load reads a generator saved by Save. A missing file keeps os.ErrNotExist
// in the error chain.
func Load(name string) (rand.Generator, error) {
	in, err := os.ReadFile(name)
	if err != nil {
		return rand.Generator{}, errors.Wrap(err, "failed to read state file")
	}
	var g rand.Generator
	if err := g.UnmarshalBinary(in); err != nil {
		return rand.Generator{}, errors.Wrapf(err, "failed to decode %s", name)
	}
	return g, nil
}

func Save(name string, g *rand.Generator) error {
	out, err := g.MarshalBinary()
	if err != nil {
		return errors.Wrap(err, "failed to encode state")
	}
	if err := os.WriteFile(name, out, 0660); err != nil {
		return errors.Wrap(err, "failed to write state file")
	}
	return nil
}
