package builder

import "strings"

// columnValue is one column assignment, kept in declaration order.
type columnValue struct {
	name  string
	value Value
}

// columnSet is an ordered column -> value mapping. A repeated Set replaces
// the earlier value in place so declaration order stays stable.
type columnSet struct {
	entries []columnValue
	index   map[string]int
}

func newColumnSet() *columnSet {
	return &columnSet{index: map[string]int{}}
}

func (s *columnSet) set(name string, v Value) {
	if i, ok := s.index[name]; ok {
		s.entries[i].value = v
		return
	}

	s.index[name] = len(s.entries)
	s.entries = append(s.entries, columnValue{name: name, value: v})
}

func (s *columnSet) len() int {
	return len(s.entries)
}

// InsertBuilder assembles an INSERT statement: a table, an ordered set of
// column values, and an optional conditional tail.
type InsertBuilder struct {
	cfg     Config
	table   string
	columns *columnSet
	where   *Statement
	err     error
}

// NewInsert returns an empty insert builder rendering with cfg.
func NewInsert(cfg Config) *InsertBuilder {
	return &InsertBuilder{cfg: cfg, columns: newColumnSet(), where: NewStatement()}
}

// Into names the target table.
func (b *InsertBuilder) Into(table string) *InsertBuilder {
	b.table = table
	return b
}

// Set assigns a value to a column. Values become parameters on BuildCommand
// unless they are null or raw.
func (b *InsertBuilder) Set(column string, value any) *InsertBuilder {
	v, err := NewValue(value)
	if err != nil {
		if b.err == nil {
			b.err = err
		}
		return b
	}

	b.columns.set(column, v)

	return b
}

// Where starts a condition on the given field.
func (b *InsertBuilder) Where(field string) *Condition {
	return b.where.And(field)
}

// WhereStatement exposes the conditional statement for direct chaining.
func (b *InsertBuilder) WhereStatement() *Statement {
	return b.where
}

// BuildQuery renders the statement with inline literals; display only.
func (b *InsertBuilder) BuildQuery() (string, error) {
	return b.build(nil)
}

// BuildCommand renders the parameterized statement.
func (b *InsertBuilder) BuildCommand() (*Command, error) {
	sink := &Params{}
	query, err := b.build(sink)
	if err != nil {
		return nil, err
	}

	return &Command{SQL: query, Parameters: sink.List()}, nil
}

func (b *InsertBuilder) build(sink *Params) (string, error) {
	if b.err != nil {
		return "", b.err
	}
	if b.table == "" {
		return "", ErrNoTable
	}
	if b.columns.len() == 0 {
		return "", ErrNoColumns
	}
	if err := b.where.Err(); err != nil {
		return "", err
	}

	names := make([]string, 0, b.columns.len())
	values := make([]string, 0, b.columns.len())
	for _, cv := range b.columns.entries {
		names = append(names, b.cfg.Quote(cv.name))
		values = append(values, renderOperand(cv.value, sink))
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(b.cfg.Quote(b.table))
	sb.WriteString(" (")
	sb.WriteString(strings.Join(names, ", "))
	sb.WriteString(") VALUES (")
	sb.WriteString(strings.Join(values, ", "))
	sb.WriteString(")")

	if b.where.HasClause() {
		sb.WriteString(" WHERE ")
		sb.WriteString(b.where.render(b.cfg, "", sink))
	}

	return sb.String(), nil
}
