// SPDX-License-Identifier: GPL-2.0-or-later

package rand

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// NewRandom returns a generator at position 0 whose seed comes from the
// leading bytes of a random UUID. Those bytes carry no version or variant
// bits.
func NewRandom() (Generator, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return Generator{}, errors.Wrap(err, "drawing a seed")
	}
	return FromSeedBytes([4]byte(id[:4])), nil
}
