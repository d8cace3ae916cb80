package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFallsBackToBuiltInDefaults(t *testing.T) {
	d, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8, d.BlockSize)
	assert.Equal(t, "base64", d.CharsetPreset)
	assert.False(t, d.Progress)
	assert.Equal(t, 0, d.MaxRate)
}

func TestDirIsUnderHome(t *testing.T) {
	dir, err := Dir()
	require.NoError(t, err)
	assert.Contains(t, dir, DirName)
}
