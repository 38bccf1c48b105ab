package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnnotations(t *testing.T) {
	t.Parallel()

	anns, err := ParseAnnotations([]byte(testAnnotations))
	require.NoError(t, err)
	require.Len(t, anns, 4)

	var ids, keys []string
	for _, a := range anns {
		ids = append(ids, a.ID)
		keys = append(keys, a.Key)
	}
	assert.Equal(t, []string{"b7", "a1", "c3", "d4"}, ids)
	assert.Equal(t, []string{"12", "13", "99", "14"}, keys)

	first := anns[0]
	assert.Equal(t, String("Dom"), first.Type)
	assert.Equal(t, String(""), first.Desc)
	require.Len(t, first.Points, 4)
	assert.InDelta(t, 20.0, first.Points[2].X, 1e-9)
	assert.Equal(t, Raw("[[10,10],[20,10],[20,20],[10,20]]"), first.PointsRaw)

	assert.True(t, anns[3].Desc.IsNull())
	assert.Empty(t, anns[3].Points)
}

func TestParseAnnotationsErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		doc  string
		err  error
	}{
		{"missing comment", `{"a": {"label": "Dom", "desc": "", "points": []}}`, ErrMissingField},
		{"missing points", `{"a": {"comment": "1", "label": "Dom", "desc": ""}}`, ErrMissingField},
		{"short pair", `{"a": {"comment": "1", "label": "Dom", "desc": "", "points": [[1]]}}`, ErrMalformedPoints},
		{"text coordinate", `{"a": {"comment": "1", "label": "Dom", "desc": "", "points": [["1", 2]]}}`, ErrMalformedPoints},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseAnnotations([]byte(tc.doc))
			require.ErrorIs(t, err, tc.err)
			assert.Contains(t, err.Error(), `annotation "a"`)
		})
	}

	_, err := ParseAnnotations([]byte(`[1, 2]`))
	require.Error(t, err)
}

func TestParseAnnotationsNonFinite(t *testing.T) {
	t.Parallel()

	anns, err := ParseAnnotations([]byte(`{"a": {"comment": 7, "label": NaN, "desc": "", "points": [[NaN, 5], [1, 1], [2, 0]]}}`))
	require.NoError(t, err)
	require.Len(t, anns, 1)
	assert.Equal(t, "7", anns[0].Key)
	assert.True(t, anns[0].Type.IsNull())
	assert.Zero(t, anns[0].Points[0].X)
	assert.InDelta(t, 5.0, anns[0].Points[0].Y, 1e-9)
}
