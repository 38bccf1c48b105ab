package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDescriptions(t *testing.T) {
	t.Parallel()

	recs, err := ParseDescriptions([]byte(testDescriptions), testSchema())
	require.NoError(t, err)
	require.Len(t, recs, 3)

	assert.Equal(t, String("12, 13"), recs[0].Key)
	assert.Equal(t, Number("14"), recs[1].Key)

	var cols []string
	for pair := recs[1].Fields.Oldest(); pair != nil; pair = pair.Next() {
		cols = append(cols, pair.Key)
	}
	assert.Equal(t, []string{"Budynek", "Szerokość pręty", "Powierzchnia morgi", "Właściciel"}, cols)

	inf, ok := recs[0].Fields.Get("Powierzchnia morgi")
	require.True(t, ok)
	assert.True(t, inf.IsNull())
}

func TestParseDescriptionsKeyErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		doc  string
		err  error
	}{
		{"missing", `[{"Budynek": "tak"}]`, ErrMissingField},
		{"null", `[{"Nr bieżący": null}]`, ErrMissingField},
		{"null record", `[null]`, ErrMissingField},
		{"NaN reads as null", `[{"Nr bieżący": NaN}]`, ErrMissingField},
		{"Infinity reads as null", `[{"Nr bieżący": -Infinity}]`, ErrMissingField},
		{"bool", `[{"Nr bieżący": true}]`, ErrInvalidKey},
		{"array", `[{"Nr bieżący": [1, 2]}]`, ErrInvalidKey},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseDescriptions([]byte(tc.doc), testSchema())
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestKeyFragments(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"12", "13", "14"}, KeyFragments(String("12, 13 ,14")))
	assert.Equal(t, []string{"12a"}, KeyFragments(String(" 12a ")))
	assert.Equal(t, []string{"12"}, KeyFragments(Number("12")))
	assert.Equal(t, []string{"12.0"}, KeyFragments(Number("12.0")))
	assert.Equal(t, []string{"1", "", "2"}, KeyFragments(String("1,,2")))
}

func TestExplode(t *testing.T) {
	t.Parallel()

	recs, err := ParseDescriptions([]byte(testDescriptions), testSchema())
	require.NoError(t, err)

	exploded, warnings := Explode(recs)
	assert.Empty(t, warnings)

	total := 0
	for _, r := range recs {
		total += len(KeyFragments(r.Key))
	}
	require.Len(t, exploded, total)

	var keys []string
	for _, e := range exploded {
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []string{"12", "13", "14", "15"}, keys)
	assert.Same(t, exploded[0].Fields, exploded[1].Fields)
	assert.Equal(t, 0, exploded[1].Record)
	assert.Equal(t, 1, exploded[2].Record)
}

func TestExplodeEmptyFragments(t *testing.T) {
	t.Parallel()

	recs, err := ParseDescriptions([]byte(`[{"Nr bieżący": "1, ,2,"}, {"Nr bieżący": " "}]`), testSchema())
	require.NoError(t, err)

	exploded, warnings := Explode(recs)
	require.Len(t, exploded, 2)
	assert.Equal(t, "1", exploded[0].Key)
	assert.Equal(t, "2", exploded[1].Key)

	require.Len(t, warnings, 3)
	for _, w := range warnings {
		assert.Equal(t, WarnEmptyKeyFragment, w.Kind)
	}
	assert.Equal(t, 1, warnings[2].Record)
}
