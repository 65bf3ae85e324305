// Package quote implements the identifier quoting policy: when a table or
// column name must be escaped and which bracketing characters to use.
package quote

import "strings"

// Mode decides when an identifier is quoted.
type Mode int

const (
	// ModeNone never quotes.
	ModeNone Mode = iota
	// ModeKeywordsOnly quotes an identifier segment only when it matches a
	// reserved word, case-insensitively.
	ModeKeywordsOnly
	// ModeAll quotes every segment.
	ModeAll
)

// Kind selects the bracketing characters applied around a quoted segment.
type Kind int

const (
	KindDoubleQuote Kind = iota
	KindSingleQuote
	KindBrackets
	KindBacktick
)

func (k Kind) wrap(segment string) string {
	switch k {
	case KindSingleQuote:
		return "'" + segment + "'"
	case KindBrackets:
		return "[" + segment + "]"
	case KindBacktick:
		return "`" + segment + "`"
	default:
		return `"` + segment + `"`
	}
}

// Quote applies the quoting policy to name. Dotted identifiers such as
// "table.column" are split and each segment is evaluated independently, so
// under ModeKeywordsOnly only the segments that collide with a reserved word
// are wrapped. Segments are rejoined with their original dots.
func Quote(name string, mode Mode, kind Kind) string {
	if mode == ModeNone || name == "" {
		return name
	}

	if !strings.Contains(name, ".") {
		return quoteSegment(name, mode, kind)
	}

	segments := strings.Split(name, ".")
	for i, segment := range segments {
		segments[i] = quoteSegment(segment, mode, kind)
	}

	return strings.Join(segments, ".")
}

func quoteSegment(segment string, mode Mode, kind Kind) string {
	if segment == "" || segment == "*" {
		return segment
	}

	if mode == ModeKeywordsOnly && !IsKeyword(segment) {
		return segment
	}

	return kind.wrap(segment)
}

// IsKeyword reports whether s matches a reserved word, case-insensitively.
func IsKeyword(s string) bool {
	_, ok := keywords[strings.ToUpper(s)]
	return ok
}
