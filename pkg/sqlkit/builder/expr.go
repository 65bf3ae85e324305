package builder

import (
	"strings"
)

// Operator is a comparison operator an Expression applies between its
// identifier and operand(s).
type Operator int

const (
	Equals Operator = iota
	NotEquals
	LessThan
	GreaterThan
	LessOrEquals
	GreaterOrEquals
	Like
	NotLike
	In
	NotIn
	Between
	NotBetween
)

func (op Operator) String() string {
	switch op {
	case Equals:
		return "="
	case NotEquals:
		return "!="
	case LessThan:
		return "<"
	case GreaterThan:
		return ">"
	case LessOrEquals:
		return "<="
	case GreaterOrEquals:
		return ">="
	case Like:
		return "LIKE"
	case NotLike:
		return "NOT LIKE"
	case In:
		return "IN"
	case NotIn:
		return "NOT IN"
	case Between:
		return "BETWEEN"
	case NotBetween:
		return "NOT BETWEEN"
	default:
		return ""
	}
}

// Expression is a single predicate: identifier, comparison operator and
// operand(s). It is validated at construction and read-only afterwards.
type Expression struct {
	identifier string
	op         Operator
	operands   []Value
	isNull     bool
}

// NewExpression validates the operator/operand shape and returns the
// finished expression:
//
//   - Between and NotBetween take exactly two operands.
//   - In and NotIn take one or more operands.
//   - A nil operand is only legal with Equals or NotEquals and renders as
//     IS NULL / IS NOT NULL.
//   - Every other operator takes exactly one operand.
func NewExpression(identifier string, op Operator, operands ...any) (*Expression, error) {
	vals := make([]Value, 0, len(operands))
	for _, operand := range operands {
		v, err := NewValue(operand)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}

	e := &Expression{identifier: identifier, op: op, operands: vals}

	switch op {
	case Between, NotBetween:
		if len(vals) != 2 {
			return nil, ErrBetweenOperands
		}
		if vals[0].IsNull() || vals[1].IsNull() {
			return nil, ErrNullOperand
		}
	case In, NotIn:
		if len(vals) == 0 {
			return nil, ErrInOperands
		}
		for _, v := range vals {
			if v.IsNull() {
				return nil, ErrNullOperand
			}
		}
	default:
		if len(vals) != 1 {
			return nil, ErrOperandCount
		}
		if vals[0].IsNull() {
			if op != Equals && op != NotEquals {
				return nil, ErrNullOperand
			}
			e.isNull = true
		}
	}

	return e, nil
}

// Identifier returns the column reference the expression filters on.
func (e *Expression) Identifier() string {
	return e.identifier
}

// Operator returns the comparison operator.
func (e *Expression) Operator() Operator {
	return e.op
}

// render produces the SQL fragment. A nil sink renders inline literals (the
// display-only form); a live sink allocates one @P<n> parameter per scalar
// operand and returns the placeholder-referencing form. qualifier, when set,
// prefixes identifiers that carry no table segment of their own.
func (e *Expression) render(cfg Config, qualifier string, sink *Params) string {
	ident := cfg.Quote(e.identifier)
	if qualifier != "" && !strings.Contains(e.identifier, ".") {
		ident = qualifier + "." + ident
	}

	if e.isNull {
		if e.op == NotEquals {
			return ident + " IS NOT NULL"
		}
		return ident + " IS NULL"
	}

	switch e.op {
	case In, NotIn:
		parts := make([]string, 0, len(e.operands))
		for _, v := range e.operands {
			parts = append(parts, renderOperand(v, sink))
		}
		return ident + " " + e.op.String() + " (" + strings.Join(parts, ", ") + ")"
	case Between, NotBetween:
		lo := renderOperand(e.operands[0], sink)
		hi := renderOperand(e.operands[1], sink)
		return ident + " " + e.op.String() + " " + lo + " AND " + hi
	default:
		return ident + " " + e.op.String() + " " + renderOperand(e.operands[0], sink)
	}
}

// renderOperand emits either the inline literal or a fresh placeholder.
// Raw values bypass the sink in both forms.
func renderOperand(v Value, sink *Params) string {
	if sink == nil || v.IsRaw() || v.IsNull() {
		return v.Literal()
	}

	return sink.add(v)
}
