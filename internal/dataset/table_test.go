package dataset

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"

	"github.com/bsmietanka/interactive-map/internal/logger"
)

func buildTestTable(t *testing.T) (*Table, *Report) {
	t.Helper()
	table, report, err := Build([]byte(testAnnotations), []byte(testDescriptions), testSchema(), logger.Test(t))
	require.NoError(t, err)
	return table, report
}

func TestJoinColumns(t *testing.T) {
	t.Parallel()

	table, _ := buildTestTable(t)
	assert.Equal(t, []string{
		"Typ", "Opis", "ID", "points",
		"Budynek", "Szerokość pręty", "Powierzchnia morgi", "Właściciel",
		"Powierzchnia stopy",
	}, table.Columns())
	assert.Equal(t, []string{"Szerokość pręty", "Powierzchnia morgi", "Powierzchnia stopy"}, table.NumericColumns())
	assert.False(t, table.IsNumeric("Budynek"))
}

func TestJoinRows(t *testing.T) {
	t.Parallel()

	table, _ := buildTestTable(t)
	require.Equal(t, 4, table.Len())

	var keys []string
	for i := 0; i < table.Len(); i++ {
		keys = append(keys, table.Row(i).Key)
	}
	assert.Equal(t, []string{"12", "13", "99", "14"}, keys)

	// 12 and 13 share one description record
	for _, i := range []int{0, 1} {
		assert.Equal(t, String("tak"), table.Value(i, "Budynek"))
		assert.Equal(t, Int(3), table.Value(i, "Szerokość pręty"))
		assert.Equal(t, Int(0), table.Value(i, "Powierzchnia morgi"))
		assert.True(t, table.Value(i, "Właściciel").IsNull())
	}

	assert.Equal(t, String("Stodoła"), table.Value(1, ColumnType))
	assert.Equal(t, String("a1"), table.Value(1, ColumnID))
	assert.Equal(t, String("13"), table.Value(1, ColumnKey))

	last := 3
	assert.Equal(t, String("Jan Kowalski"), table.Value(last, "Właściciel"))
	assert.Equal(t, Int(1), table.Value(last, "Powierzchnia morgi"))
	assert.Equal(t, Raw("[]"), table.Value(last, ColumnPoints))

	assert.True(t, table.Value(0, "no such column").IsNull())

	i, ok := table.Lookup("14")
	require.True(t, ok)
	assert.Equal(t, 3, i)
	_, ok = table.Lookup("15")
	assert.False(t, ok)
}

func TestJoinUnmatched(t *testing.T) {
	t.Parallel()

	table, report := buildTestTable(t)
	i, ok := table.Lookup("99")
	require.True(t, ok)

	for _, col := range table.NumericColumns() {
		assert.Equal(t, Int(0), table.Value(i, col), col)
	}
	assert.True(t, table.Value(i, "Budynek").IsNull())
	assert.True(t, table.Value(i, "Właściciel").IsNull())

	assert.Equal(t, 3, report.Matched)
	assert.Equal(t, 1, report.Unmatched)
}

func TestJoinNumericInvariant(t *testing.T) {
	t.Parallel()

	table, _ := buildTestTable(t)
	for i := 0; i < table.Len(); i++ {
		for _, col := range table.NumericColumns() {
			n, ok := table.Value(i, col).Int64()
			require.True(t, ok, "row %d column %s", i, col)
			assert.GreaterOrEqual(t, n, int64(0))
		}
	}
}

func TestJoinCollision(t *testing.T) {
	t.Parallel()

	anns, err := ParseAnnotations([]byte(`{"a": {"comment": "1", "label": "Dom", "desc": "x", "points": []}}`))
	require.NoError(t, err)
	recs, err := ParseDescriptions([]byte(`[{"Nr bieżący": "1", "Typ": "murowany", "Budynek": "tak"}]`), testSchema())
	require.NoError(t, err)
	exploded, _ := Explode(recs)

	table, warnings := Join(anns, exploded, Schema{KeyField: "Nr bieżący"})
	assert.Empty(t, warnings)
	assert.Equal(t, []string{"Typ_x", "Opis", "ID", "points", "Typ_y", "Budynek"}, table.Columns())
	assert.Equal(t, String("Dom"), table.Value(0, "Typ_x"))
	assert.Equal(t, String("murowany"), table.Value(0, "Typ_y"))
}

func TestJoinDuplicateKeys(t *testing.T) {
	t.Parallel()

	anns, err := ParseAnnotations([]byte(`{
		"a": {"comment": "1", "label": "", "desc": "", "points": []},
		"b": {"comment": "2", "label": "", "desc": "", "points": []}
	}`))
	require.NoError(t, err)
	recs, err := ParseDescriptions([]byte(`[
		{"Nr bieżący": "1", "Budynek": "first"},
		{"Nr bieżący": "1, 2", "Budynek": "second"}
	]`), testSchema())
	require.NoError(t, err)
	exploded, _ := Explode(recs)

	table, warnings := Join(anns, exploded, testSchema())
	assert.Equal(t, String("first"), table.Value(0, "Budynek"))
	assert.Equal(t, String("second"), table.Value(1, "Budynek"))
	require.Len(t, warnings, 1)
	assert.Equal(t, Warning{Kind: WarnDuplicateKey, Record: 1, Key: "1"}, warnings[0])
}

func TestTableMarshalJSON(t *testing.T) {
	t.Parallel()

	table, _ := buildTestTable(t)
	out, err := json.Marshal(table)
	require.NoError(t, err)

	var rows []*orderedmap.OrderedMap[string, json.RawMessage]
	require.NoError(t, json.Unmarshal(out, &rows))
	require.Len(t, rows, 4)

	var keys []string
	for pair := rows[3].Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	assert.Equal(t, append([]string{ColumnKey}, table.Columns()...), keys)

	assert.JSONEq(t, `{
		"Numer": "14", "Typ": "Ogród", "Opis": null, "ID": "d4", "points": [],
		"Budynek": "", "Szerokość pręty": 0, "Powierzchnia morgi": 1,
		"Właściciel": "Jan Kowalski", "Powierzchnia stopy": 0
	}`, string(mustJSON(t, rows[3])))
}

func TestTableEncodingIdempotent(t *testing.T) {
	t.Parallel()

	first, _ := buildTestTable(t)
	second, _ := buildTestTable(t)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))

	ya, err := yaml.Marshal(first)
	require.NoError(t, err)
	yb, err := yaml.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(ya), string(yb))
}

func TestTableMarshalYAML(t *testing.T) {
	t.Parallel()

	table, _ := buildTestTable(t)
	out, err := yaml.Marshal(table)
	require.NoError(t, err)

	var rows []map[string]interface{}
	require.NoError(t, yaml.Unmarshal(out, &rows))
	require.Len(t, rows, 4)
	assert.Equal(t, "12", rows[0][ColumnKey])
	assert.Equal(t, 3, rows[0]["Szerokość pręty"])
	assert.Equal(t, "Jan Kowalski", rows[3]["Właściciel"])
	assert.Nil(t, rows[3]["Opis"])
}

func mustJSON(t *testing.T, v interface{}) []byte {
	t.Helper()
	out, err := json.Marshal(v)
	require.NoError(t, err)
	return out
}
