package dataset

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestValueTruthy(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		v    Value
		want bool
	}{
		{"null", Null(), false},
		{"empty string", String(""), false},
		{"text", String("Dom"), true},
		{"zero number", Number("0"), false},
		{"zero float", Number("0.0"), false},
		{"number", Number("12"), true},
		{"zero int", Int(0), false},
		{"int", Int(3), true},
		{"false", Bool(false), false},
		{"true", Bool(true), true},
		{"empty array", Raw("[]"), false},
		{"empty object", Raw("{}"), false},
		{"array", Raw("[1]"), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.v.Truthy())
		})
	}
}

func TestValueFloat(t *testing.T) {
	t.Parallel()

	f, ok := String(" 12.5 ").Float()
	require.True(t, ok)
	assert.InDelta(t, 12.5, f, 1e-9)

	f, ok = String("1,5").Float()
	assert.False(t, ok, "got %v", f)
	f, ok = String("1,000.5").Float()
	assert.False(t, ok, "got %v", f)

	f, ok = Number("-3.25").Float()
	require.True(t, ok)
	assert.InDelta(t, -3.25, f, 1e-9)

	_, ok = String("abc").Float()
	assert.False(t, ok)
	_, ok = Null().Float()
	assert.False(t, ok)
}

func TestDecodeValue(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want Value
	}{
		{`null`, Null()},
		{`"Dom"`, String("Dom")},
		{`12`, Number("12")},
		{`12.0`, Number("12.0")},
		{`true`, Bool(true)},
		{`[ [1, 2], [3,4] ]`, Raw("[[1,2],[3,4]]")},
		{`{"a": 1}`, Raw(`{"a":1}`)},
	}
	for _, tc := range cases {
		got, err := decodeValue(json.RawMessage(tc.in))
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestValueMarshal(t *testing.T) {
	t.Parallel()

	row := []Value{Null(), String("a\"b"), Number("12.50"), Int(7), Bool(false), Raw("[[1,2]]")}
	out, err := json.Marshal(row)
	require.NoError(t, err)
	assert.Equal(t, `[null,"a\"b",12.50,7,false,[[1,2]]]`, string(out))

	y, err := yaml.Marshal(row)
	require.NoError(t, err)
	assert.Equal(t, "- null\n- a\"b\n- 12.50\n- 7\n- false\n- [[1, 2]]\n", string(y))
}
