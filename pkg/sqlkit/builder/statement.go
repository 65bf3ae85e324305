package builder

import "strings"

// LogicalOperator is a boolean connective between conditions.
type LogicalOperator int

const (
	And LogicalOperator = iota
	Or
)

func (l LogicalOperator) String() string {
	if l == Or {
		return "OR"
	}
	return "AND"
}

func (l LogicalOperator) opposite() LogicalOperator {
	if l == Or {
		return And
	}
	return Or
}

// Clause is a run of expressions joined by the statement's inner connective.
// It renders as a parenthesized group when the statement holds more than one
// clause.
type Clause struct {
	exprs []*Expression
}

// Len returns the number of expressions in the clause.
func (c *Clause) Len() int {
	return len(c.exprs)
}

// Expressions returns the clause's expressions in append order.
func (c *Clause) Expressions() []*Expression {
	return c.exprs
}

func (c *Clause) render(cfg Config, qualifier string, inner LogicalOperator, sink *Params) string {
	parts := make([]string, 0, len(c.exprs))
	for _, e := range c.exprs {
		parts = append(parts, e.render(cfg, qualifier, sink))
	}

	return strings.Join(parts, " "+inner.String()+" ")
}

// Statement is an ordered list of clauses forming a full WHERE or HAVING
// condition. The inner operator joins expressions within a clause; its
// opposite joins the clauses themselves. Appending a condition with the
// connective that differs from the inner operator starts a new clause,
// provided the statement already holds at least one expression.
type Statement struct {
	inner   LogicalOperator
	clauses []*Clause
	err     error
}

// NewStatement returns a statement whose inner operator is AND.
func NewStatement() *Statement {
	return &Statement{inner: And}
}

// NewStatementWithOperator returns a statement with the given inner operator.
func NewStatementWithOperator(inner LogicalOperator) *Statement {
	return &Statement{inner: inner}
}

// InnerOperator returns the connective applied within each clause.
func (s *Statement) InnerOperator() LogicalOperator {
	return s.inner
}

// HasClause reports whether at least one clause holds an expression.
func (s *Statement) HasClause() bool {
	for _, c := range s.clauses {
		if len(c.exprs) > 0 {
			return true
		}
	}

	return false
}

// Err returns the first expression validation error recorded by the fluent
// chain, if any. A build call surfaces it.
func (s *Statement) Err() error {
	return s.err
}

// And starts a condition joined with the AND connective.
func (s *Statement) And(field string) *Condition {
	return &Condition{stmt: s, field: field, connective: And}
}

// Or starts a condition joined with the OR connective.
func (s *Statement) Or(field string) *Condition {
	return &Condition{stmt: s, field: field, connective: Or}
}

// Append validates and appends one condition, applying the clause-splitting
// rule for the given connective. It is the non-fluent entry point.
func (s *Statement) Append(field string, op Operator, connective LogicalOperator, operands ...any) error {
	e, err := NewExpression(field, op, operands...)
	if err != nil {
		return err
	}

	s.push(connective, e)

	return nil
}

func (s *Statement) append(field string, op Operator, connective LogicalOperator, operands ...any) {
	if err := s.Append(field, op, connective, operands...); err != nil && s.err == nil {
		s.err = err
	}
}

func (s *Statement) push(connective LogicalOperator, e *Expression) {
	if connective != s.inner && s.HasClause() {
		s.clauses = append(s.clauses, &Clause{})
	}
	if len(s.clauses) == 0 {
		s.clauses = append(s.clauses, &Clause{})
	}

	last := s.clauses[len(s.clauses)-1]
	last.exprs = append(last.exprs, e)
}

// Clauses returns the statement's clauses in order, including empty ones.
func (s *Statement) Clauses() []*Clause {
	return s.clauses
}

// render prunes empty clauses and joins the rest. With a single surviving
// clause no parentheses are emitted; with several, every clause is wrapped
// and they are joined by the opposite of the inner operator. A nil sink
// yields the literal (unsafe) form.
func (s *Statement) render(cfg Config, qualifier string, sink *Params) string {
	clauses := make([]*Clause, 0, len(s.clauses))
	for _, c := range s.clauses {
		if len(c.exprs) > 0 {
			clauses = append(clauses, c)
		}
	}

	if len(clauses) == 0 {
		return ""
	}

	if len(clauses) == 1 {
		return clauses[0].render(cfg, qualifier, s.inner, sink)
	}

	parts := make([]string, 0, len(clauses))
	for _, c := range clauses {
		parts = append(parts, "("+c.render(cfg, qualifier, s.inner, sink)+")")
	}

	return strings.Join(parts, " "+s.inner.opposite().String()+" ")
}

// Condition is the fluent hop between naming a field and choosing its
// comparison. Each comparison method finalizes one expression and returns
// the owning statement for further chaining.
type Condition struct {
	stmt       *Statement
	field      string
	connective LogicalOperator
}

// Equals appends field = value. A nil value renders as IS NULL.
func (c *Condition) Equals(value any) *Statement {
	c.stmt.append(c.field, Equals, c.connective, value)
	return c.stmt
}

// NotEquals appends field != value. A nil value renders as IS NOT NULL.
func (c *Condition) NotEquals(value any) *Statement {
	c.stmt.append(c.field, NotEquals, c.connective, value)
	return c.stmt
}

// LessThan appends field < value.
func (c *Condition) LessThan(value any) *Statement {
	c.stmt.append(c.field, LessThan, c.connective, value)
	return c.stmt
}

// GreaterThan appends field > value.
func (c *Condition) GreaterThan(value any) *Statement {
	c.stmt.append(c.field, GreaterThan, c.connective, value)
	return c.stmt
}

// LessOrEquals appends field <= value.
func (c *Condition) LessOrEquals(value any) *Statement {
	c.stmt.append(c.field, LessOrEquals, c.connective, value)
	return c.stmt
}

// GreaterOrEquals appends field >= value.
func (c *Condition) GreaterOrEquals(value any) *Statement {
	c.stmt.append(c.field, GreaterOrEquals, c.connective, value)
	return c.stmt
}

// Like appends field LIKE pattern.
func (c *Condition) Like(pattern any) *Statement {
	c.stmt.append(c.field, Like, c.connective, pattern)
	return c.stmt
}

// NotLike appends field NOT LIKE pattern.
func (c *Condition) NotLike(pattern any) *Statement {
	c.stmt.append(c.field, NotLike, c.connective, pattern)
	return c.stmt
}

// In appends field IN (values...), one parameter per element.
func (c *Condition) In(values ...any) *Statement {
	c.stmt.append(c.field, In, c.connective, values...)
	return c.stmt
}

// NotIn appends field NOT IN (values...).
func (c *Condition) NotIn(values ...any) *Statement {
	c.stmt.append(c.field, NotIn, c.connective, values...)
	return c.stmt
}

// Between appends field BETWEEN low AND high.
func (c *Condition) Between(low, high any) *Statement {
	c.stmt.append(c.field, Between, c.connective, low, high)
	return c.stmt
}

// NotBetween appends field NOT BETWEEN low AND high.
func (c *Condition) NotBetween(low, high any) *Statement {
	c.stmt.append(c.field, NotBetween, c.connective, low, high)
	return c.stmt
}

// IsNull appends field IS NULL.
func (c *Condition) IsNull() *Statement {
	return c.Equals(nil)
}

// IsNotNull appends field IS NOT NULL.
func (c *Condition) IsNotNull() *Statement {
	return c.NotEquals(nil)
}
