package colorutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithAlpha(t *testing.T) {
	t.Parallel()

	c := WithAlpha(Selection, 80)
	assert.Equal(t, uint8(80), c.A)
	assert.Equal(t, Selection.R, c.R)
	assert.Equal(t, uint8(255), Selection.A)
}

func TestPaletteIsOpaque(t *testing.T) {
	t.Parallel()

	for _, c := range []struct {
		name string
		rgba [4]uint8
	}{
		{"Paper", [4]uint8{Paper.R, Paper.G, Paper.B, Paper.A}},
		{"Outline", [4]uint8{Outline.R, Outline.G, Outline.B, Outline.A}},
		{"Selection", [4]uint8{Selection.R, Selection.G, Selection.B, Selection.A}},
		{"Hover", [4]uint8{Hover.R, Hover.G, Hover.B, Hover.A}},
	} {
		assert.Equal(t, uint8(255), c.rgba[3], c.name)
	}
}
