package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_KeepsKeyOrder(t *testing.T) {
	v, err := Decode([]byte(`{"z": 1, "a": {"y": true, "b": null}, "m": ["x", 2.50]}`))
	require.NoError(t, err)

	require.Len(t, v.Members, 3)
	assert.Equal(t, "z", v.Members[0].Key)
	assert.Equal(t, "a", v.Members[1].Key)
	assert.Equal(t, "m", v.Members[2].Key)

	a, ok := v.Get("a")
	require.True(t, ok)
	assert.Equal(t, "y", a.Members[0].Key)
	assert.Equal(t, KindNull, a.Members[1].Value.Kind)

	m, _ := v.Get("m")
	require.Len(t, m.Items, 2)
	assert.Equal(t, "x", m.Items[0].Text())
	assert.Equal(t, "2.50", m.Items[1].Text())
}

func TestDecode_DuplicateKeysLastWins(t *testing.T) {
	v, err := Decode([]byte(`{"k": 1, "other": 0, "k": 2}`))
	require.NoError(t, err)

	require.Len(t, v.Members, 2)
	assert.Equal(t, "k", v.Members[0].Key)
	assert.Equal(t, "2", v.Members[0].Value.Text())
}

func TestDecode_Escapes(t *testing.T) {
	v, err := Decode([]byte(`{"a\"b": "line\nnext Ф"}`))
	require.NoError(t, err)

	got, ok := v.Get(`a"b`)
	require.True(t, ok)
	assert.Equal(t, "line\nnext Ф", got.Str)
}

func TestValue_Truthy(t *testing.T) {
	tests := []struct {
		doc  string
		want bool
	}{
		{`true`, true},
		{`false`, false},
		{`""`, false},
		{`"x"`, true},
		{`0`, false},
		{`0.0`, false},
		{`-3`, true},
		{`0.25`, true},
		{`[]`, false},
		{`[0]`, true},
		{`{}`, false},
		{`null`, false},
	}

	for _, tt := range tests {
		t.Run(tt.doc, func(t *testing.T) {
			v, err := Decode([]byte(tt.doc))
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Truthy())
		})
	}
}
