// SPDX-License-Identifier: GPL-2.0-or-later

package statefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"squirrel/rand"
)

func TestSaveLoad(t *testing.T) {
	name := filepath.Join(t.TempDir(), "state")
	g := rand.New(17, 0)
	g.Uint64()
	g.Uint64()
	require.NoError(t, Save(name, &g))

	got, err := Load(name)
	require.NoError(t, err)
	assert.Equal(t, g, got)
	assert.Equal(t, g.Uint32(), got.Uint32())
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadCorrupt(t *testing.T) {
	name := filepath.Join(t.TempDir(), "state")
	require.NoError(t, os.WriteFile(name, []byte{0x08, 0x54, 0x10, 0x0d, 0x18, 0x00}, 0660))
	_, err := Load(name)
	assert.True(t, errors.Is(err, rand.ErrChecksum))
}
