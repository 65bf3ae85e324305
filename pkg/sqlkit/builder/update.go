package builder

import "strings"

// AssignMode is how an update value is applied to its column.
type AssignMode int

const (
	// AssignSet replaces the column value.
	AssignSet AssignMode = iota
	// AssignAdd emits col = col + value.
	AssignAdd
	// AssignSubtract emits col = col - value.
	AssignSubtract
	// AssignMultiply emits col = col * value.
	AssignMultiply
	// AssignDivide emits col = col / value.
	AssignDivide
)

func (m AssignMode) operator() string {
	switch m {
	case AssignAdd:
		return "+"
	case AssignSubtract:
		return "-"
	case AssignMultiply:
		return "*"
	case AssignDivide:
		return "/"
	default:
		return ""
	}
}

type updateEntry struct {
	name  string
	value Value
	mode  AssignMode
}

// UpdateBuilder assembles an UPDATE statement: a table, an ordered list of
// column assignments (plain or arithmetic), and a WHERE statement.
type UpdateBuilder struct {
	cfg     Config
	table   string
	entries []updateEntry
	index   map[string]int
	where   *Statement
	err     error
}

// NewUpdate returns an empty update builder rendering with cfg.
func NewUpdate(cfg Config) *UpdateBuilder {
	return &UpdateBuilder{cfg: cfg, index: map[string]int{}, where: NewStatement()}
}

// Table names the target table.
func (b *UpdateBuilder) Table(table string) *UpdateBuilder {
	b.table = table
	return b
}

func (b *UpdateBuilder) assign(column string, value any, mode AssignMode) *UpdateBuilder {
	v, err := NewValue(value)
	if err != nil {
		if b.err == nil {
			b.err = err
		}
		return b
	}

	if i, ok := b.index[column]; ok {
		b.entries[i].value = v
		b.entries[i].mode = mode
		return b
	}

	b.index[column] = len(b.entries)
	b.entries = append(b.entries, updateEntry{name: column, value: v, mode: mode})

	return b
}

// Set replaces a column's value.
func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	return b.assign(column, value, AssignSet)
}

// Add increments a column by value.
func (b *UpdateBuilder) Add(column string, value any) *UpdateBuilder {
	return b.assign(column, value, AssignAdd)
}

// Subtract decrements a column by value.
func (b *UpdateBuilder) Subtract(column string, value any) *UpdateBuilder {
	return b.assign(column, value, AssignSubtract)
}

// Multiply scales a column by value.
func (b *UpdateBuilder) Multiply(column string, value any) *UpdateBuilder {
	return b.assign(column, value, AssignMultiply)
}

// Divide divides a column by value.
func (b *UpdateBuilder) Divide(column string, value any) *UpdateBuilder {
	return b.assign(column, value, AssignDivide)
}

// Where starts a WHERE condition on the given field.
func (b *UpdateBuilder) Where(field string) *Condition {
	return b.where.And(field)
}

// WhereStatement exposes the WHERE statement for direct chaining.
func (b *UpdateBuilder) WhereStatement() *Statement {
	return b.where
}

// BuildQuery renders the statement with inline literals; display only.
func (b *UpdateBuilder) BuildQuery() (string, error) {
	return b.build(nil)
}

// BuildCommand renders the parameterized statement.
func (b *UpdateBuilder) BuildCommand() (*Command, error) {
	sink := &Params{}
	query, err := b.build(sink)
	if err != nil {
		return nil, err
	}

	return &Command{SQL: query, Parameters: sink.List()}, nil
}

func (b *UpdateBuilder) build(sink *Params) (string, error) {
	if b.err != nil {
		return "", b.err
	}
	if b.table == "" {
		return "", ErrNoTable
	}
	if len(b.entries) == 0 {
		return "", ErrNoColumns
	}
	if err := b.where.Err(); err != nil {
		return "", err
	}

	sets := make([]string, 0, len(b.entries))
	for _, e := range b.entries {
		col := b.cfg.Quote(e.name)
		val := renderOperand(e.value, sink)
		if op := e.mode.operator(); op != "" {
			sets = append(sets, col+" = "+col+" "+op+" "+val)
		} else {
			sets = append(sets, col+" = "+val)
		}
	}

	var sb strings.Builder
	sb.WriteString("UPDATE ")
	sb.WriteString(b.cfg.Quote(b.table))
	sb.WriteString(" SET ")
	sb.WriteString(strings.Join(sets, ", "))

	if b.where.HasClause() {
		sb.WriteString(" WHERE ")
		sb.WriteString(b.where.render(b.cfg, "", sink))
	}

	return sb.String(), nil
}
