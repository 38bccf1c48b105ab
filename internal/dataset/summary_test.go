package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	t.Parallel()

	table, _ := buildTestTable(t)
	sums := Summarize(table)
	require.Len(t, sums, 3)

	width := sums[0]
	assert.Equal(t, "Szerokość pręty", width.Column)
	assert.Equal(t, 2, width.NonZero)
	assert.InDelta(t, 6.0, width.Sum, 1e-9)
	assert.InDelta(t, 1.5, width.Mean, 1e-9)
	assert.InDelta(t, 3.0, width.Max, 1e-9)

	area := sums[1]
	assert.Equal(t, 1, area.NonZero)
	assert.InDelta(t, 0.25, area.Mean, 1e-9)

	assert.Zero(t, sums[2].NonZero)
}

func TestSummarizeEmpty(t *testing.T) {
	t.Parallel()

	table := NewTable([]string{"a"}, []string{"a"}, nil)
	sums := Summarize(table)
	require.Len(t, sums, 1)
	assert.Zero(t, sums[0].Sum)
	assert.Zero(t, sums[0].Max)
}
