package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsKeyword(t *testing.T) {
	assert.True(t, IsKeyword("SELECT"))
	assert.True(t, IsKeyword("select"))
	assert.True(t, IsKeyword("Order"))
	assert.False(t, IsKeyword("myCustomColumn"))
	assert.False(t, IsKeyword(""))
}

func TestQuote_Modes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		mode     Mode
		kind     Kind
		expected string
	}{
		{name: "none never quotes", input: "select", mode: ModeNone, kind: KindDoubleQuote, expected: "select"},
		{name: "keywords only skips plain name", input: "user_id", mode: ModeKeywordsOnly, kind: KindDoubleQuote, expected: "user_id"},
		{name: "keywords only quotes keyword", input: "order", mode: ModeKeywordsOnly, kind: KindDoubleQuote, expected: `"order"`},
		{name: "all quotes plain name", input: "user_id", mode: ModeAll, kind: KindDoubleQuote, expected: `"user_id"`},
		{name: "empty name", input: "", mode: ModeAll, kind: KindDoubleQuote, expected: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Quote(tc.input, tc.mode, tc.kind))
		})
	}
}

func TestQuote_Kinds(t *testing.T) {
	assert.Equal(t, `"name"`, Quote("name", ModeAll, KindDoubleQuote))
	assert.Equal(t, `'name'`, Quote("name", ModeAll, KindSingleQuote))
	assert.Equal(t, `[name]`, Quote("name", ModeAll, KindBrackets))
	assert.Equal(t, "`name`", Quote("name", ModeAll, KindBacktick))
}

func TestQuote_DottedSegments(t *testing.T) {
	// Each segment is matched against the keyword set on its own.
	assert.Equal(t, `users."order"`, Quote("users.order", ModeKeywordsOnly, KindDoubleQuote))
	assert.Equal(t, `"group"."order"`, Quote("group.order", ModeKeywordsOnly, KindDoubleQuote))
	assert.Equal(t, "users.id", Quote("users.id", ModeKeywordsOnly, KindDoubleQuote))
	assert.Equal(t, "[users].[id]", Quote("users.id", ModeAll, KindBrackets))
}

func TestQuote_WildcardSegmentUntouched(t *testing.T) {
	assert.Equal(t, `"t1".*`, Quote("t1.*", ModeAll, KindDoubleQuote))
}
