package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", prefsFile)
	p, err := LoadFrom(path)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, p.Float(KeyZoom, 1), 1e-9)
	assert.Equal(t, 50, p.Int(KeyPageSize, 50))
	assert.False(t, p.Bool(KeyOutlines, false))
	assert.Equal(t, "Mapa", p.String(KeyTab, "Mapa"))

	p.SetFloat(KeyZoom, 1.5625)
	p.SetInt(KeyPageSize, 25)
	p.SetBool(KeyOutlines, true)
	p.SetString(KeyTab, "Tabela")
	require.NoError(t, p.Save())

	again, err := LoadFrom(path)
	require.NoError(t, err)
	assert.InDelta(t, 1.5625, again.Float(KeyZoom, 1), 1e-9)
	assert.Equal(t, 25, again.Int(KeyPageSize, 50))
	assert.True(t, again.Bool(KeyOutlines, false))
	assert.Equal(t, "Tabela", again.String(KeyTab, "Mapa"))
	assert.Equal(t, path, again.Path())
}

func TestWrongTypeFallsBack(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), prefsFile)
	require.NoError(t, os.WriteFile(path, []byte(`{"map.zoom": "big", "map.outlines": 1}`), 0o600))

	p, err := LoadFrom(path)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, p.Float(KeyZoom, 2), 1e-9)
	assert.True(t, p.Bool(KeyOutlines, true))
	assert.Equal(t, 1, p.Int(KeyOutlines, 0))
}

func TestCorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), prefsFile)
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))

	p, err := LoadFrom(path)
	require.Error(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 7, p.Int(KeyPageSize, 7))
}
