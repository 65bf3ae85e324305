package builder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValue_Literals(t *testing.T) {
	ts := time.Date(2024, 5, 17, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{name: "int", input: 42, expected: "42"},
		{name: "negative int64", input: int64(-7), expected: "-7"},
		{name: "uint", input: uint(3), expected: "3"},
		{name: "float", input: 2.5, expected: "2.5"},
		{name: "string", input: "hello", expected: "'hello'"},
		{name: "string with quote", input: "it's", expected: "'it''s'"},
		{name: "bool true", input: true, expected: "1"},
		{name: "bool false", input: false, expected: "0"},
		{name: "time", input: ts, expected: "'2024-05-17 09:30:00'"},
		{name: "nil", input: nil, expected: "NULL"},
		{name: "raw", input: Raw("CURRENT_TIMESTAMP"), expected: "CURRENT_TIMESTAMP"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, err := NewValue(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, v.Literal())
		})
	}
}

func TestNewValue_UnsupportedType(t *testing.T) {
	_, err := NewValue(struct{ X int }{X: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedValueType)

	_, err = NewValue([]int{1, 2})
	assert.ErrorIs(t, err, ErrUnsupportedValueType)

	_, err = NewValue(map[string]int{"a": 1})
	assert.ErrorIs(t, err, ErrUnsupportedValueType)
}

func TestLiteral_Helper(t *testing.T) {
	s, err := Literal("a'b")
	require.NoError(t, err)
	assert.Equal(t, "'a''b'", s)

	_, err = Literal(complex(1, 2))
	assert.ErrorIs(t, err, ErrUnsupportedValueType)
}

func TestValue_Kinds(t *testing.T) {
	assert.True(t, Null.IsNull())
	assert.False(t, Null.IsRaw())
	assert.True(t, Raw("x").IsRaw())

	v, err := NewValue(1)
	require.NoError(t, err)
	assert.False(t, v.IsNull())
}
