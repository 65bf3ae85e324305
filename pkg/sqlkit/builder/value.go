package builder

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// timestampLayout is the literal form dates render with.
const timestampLayout = "2006-01-02 15:04:05"

type valueKind int

const (
	kindNull valueKind = iota
	kindInt
	kindReal
	kindText
	kindBool
	kindTime
	kindRaw
)

// Value is a closed tagged union of the literal kinds an operand can hold:
// null, integer, real, text, boolean, timestamp, or raw SQL text. The kind is
// decided once at construction so rendering is an exhaustive match instead of
// a runtime type switch.
type Value struct {
	kind valueKind
	i    int64
	f    float64
	s    string
	b    bool
	t    time.Time
}

// Null is the SQL NULL value.
var Null = Value{kind: kindNull}

// Raw wraps sql so it is embedded verbatim: never escaped, never
// parameterized. This is an explicit injection-risk escape hatch; the text
// must come from trusted code, not from user input.
func Raw(sql string) Value {
	return Value{kind: kindRaw, s: sql}
}

// NewValue converts a Go value into a Value. Supported types are nil, Value
// itself, signed and unsigned integers, floats, string, bool, and time.Time.
// Anything else fails with ErrUnsupportedValueType.
func NewValue(v any) (Value, error) {
	switch t := v.(type) {
	case nil:
		return Null, nil
	case Value:
		return t, nil
	case int:
		return Value{kind: kindInt, i: int64(t)}, nil
	case int8:
		return Value{kind: kindInt, i: int64(t)}, nil
	case int16:
		return Value{kind: kindInt, i: int64(t)}, nil
	case int32:
		return Value{kind: kindInt, i: int64(t)}, nil
	case int64:
		return Value{kind: kindInt, i: t}, nil
	case uint:
		return Value{kind: kindInt, i: int64(t)}, nil
	case uint8:
		return Value{kind: kindInt, i: int64(t)}, nil
	case uint16:
		return Value{kind: kindInt, i: int64(t)}, nil
	case uint32:
		return Value{kind: kindInt, i: int64(t)}, nil
	case uint64:
		if t > math.MaxInt64 {
			return Value{}, fmt.Errorf("%w: uint64 overflows int64", ErrUnsupportedValueType)
		}
		return Value{kind: kindInt, i: int64(t)}, nil
	case float32:
		return Value{kind: kindReal, f: float64(t)}, nil
	case float64:
		return Value{kind: kindReal, f: t}, nil
	case string:
		return Value{kind: kindText, s: t}, nil
	case bool:
		return Value{kind: kindBool, b: t}, nil
	case time.Time:
		return Value{kind: kindTime, t: t}, nil
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedValueType, v)
	}
}

// IsNull reports whether the value is SQL NULL.
func (v Value) IsNull() bool {
	return v.kind == kindNull
}

// IsRaw reports whether the value is verbatim SQL text.
func (v Value) IsRaw() bool {
	return v.kind == kindRaw
}

// Literal renders the value as inline SQL: numbers unquoted, strings
// single-quoted with embedded quotes doubled, booleans as 1/0, timestamps as
// 'yyyy-MM-dd HH:mm:ss', null as NULL, raw text verbatim.
func (v Value) Literal() string {
	switch v.kind {
	case kindInt:
		return strconv.FormatInt(v.i, 10)
	case kindReal:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case kindText:
		return "'" + strings.ReplaceAll(v.s, "'", "''") + "'"
	case kindBool:
		if v.b {
			return "1"
		}
		return "0"
	case kindTime:
		return "'" + v.t.Format(timestampLayout) + "'"
	case kindRaw:
		return v.s
	default:
		return "NULL"
	}
}

// arg is the driver-level value bound when the Value is parameterized.
func (v Value) arg() any {
	switch v.kind {
	case kindInt:
		return v.i
	case kindReal:
		return v.f
	case kindText:
		return v.s
	case kindBool:
		return v.b
	case kindTime:
		return v.t
	default:
		return nil
	}
}

// Literal formats v as inline SQL text using the literal-value rules.
// It fails on unsupported Go types instead of stringifying them.
func Literal(v any) (string, error) {
	val, err := NewValue(v)
	if err != nil {
		return "", err
	}

	return val.Literal(), nil
}
