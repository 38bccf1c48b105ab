package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/bsmietanka/interactive-map/internal/logger"
)

func writeFixtures(t *testing.T, annotations, descriptions string) Paths {
	t.Helper()
	dir := t.TempDir()
	paths := Paths{
		Annotations:  filepath.Join(dir, "polygons.json"),
		Descriptions: filepath.Join(dir, "description.json"),
	}
	require.NoError(t, os.WriteFile(paths.Annotations, []byte(annotations), 0o600))
	require.NoError(t, os.WriteFile(paths.Descriptions, []byte(descriptions), 0o600))
	return paths
}

func TestLoad(t *testing.T) {
	t.Parallel()

	paths := writeFixtures(t, testAnnotations, testDescriptions)
	lggr, logs := logger.TestObserved(t, zapcore.InfoLevel)

	table, report, err := Load(paths, testSchema(), lggr)
	require.NoError(t, err)
	assert.Equal(t, 4, table.Len())

	assert.Equal(t, 4, report.Annotations)
	assert.Equal(t, 3, report.Descriptions)
	assert.Equal(t, 4, report.Exploded)
	require.Len(t, report.Warnings, 1)
	assert.Equal(t, WarnNumericJunk, report.Warnings[0].Kind)

	warns := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warns, 1)
	assert.Equal(t, string(WarnNumericJunk), warns[0].ContextMap()["kind"])

	loaded := logs.FilterMessage("Dataset loaded").All()
	require.Len(t, loaded, 1)
	assert.EqualValues(t, 1, loaded[0].ContextMap()["unmatched"])
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, _, err := Load(Paths{Annotations: filepath.Join(t.TempDir(), "nope.json")}, testSchema(), logger.Test(t))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("missing key field", func(t *testing.T) {
		t.Parallel()
		paths := writeFixtures(t, testAnnotations, `[{"Budynek": "tak"}]`)
		_, _, err := Load(paths, testSchema(), logger.Test(t))
		require.ErrorIs(t, err, ErrMissingField)
	})

	t.Run("malformed points", func(t *testing.T) {
		t.Parallel()
		paths := writeFixtures(t, `{"a": {"comment": "1", "label": "", "desc": "", "points": [[1, 2, 3]]}}`, `[]`)
		_, _, err := Load(paths, testSchema(), logger.Test(t))
		require.ErrorIs(t, err, ErrMalformedPoints)
	})
}

func TestBuildEmptyDescriptions(t *testing.T) {
	t.Parallel()

	table, report, err := Build([]byte(testAnnotations), []byte(`[]`), testSchema(), logger.Nop())
	require.NoError(t, err)
	require.Equal(t, 4, table.Len())
	assert.Equal(t, 4, report.Unmatched)
	assert.Equal(t, []string{"Typ", "Opis", "ID", "points",
		"Szerokość pręty", "Powierzchnia morgi", "Powierzchnia stopy"}, table.Columns())
}
