package builder

import "strings"

// DeleteBuilder assembles a DELETE statement: a table plus a WHERE statement.
type DeleteBuilder struct {
	cfg   Config
	table string
	where *Statement
}

// NewDelete returns an empty delete builder rendering with cfg.
func NewDelete(cfg Config) *DeleteBuilder {
	return &DeleteBuilder{cfg: cfg, where: NewStatement()}
}

// From names the target table.
func (b *DeleteBuilder) From(table string) *DeleteBuilder {
	b.table = table
	return b
}

// Where starts a WHERE condition on the given field.
func (b *DeleteBuilder) Where(field string) *Condition {
	return b.where.And(field)
}

// WhereStatement exposes the WHERE statement for direct chaining.
func (b *DeleteBuilder) WhereStatement() *Statement {
	return b.where
}

// BuildQuery renders the statement with inline literals; display only.
func (b *DeleteBuilder) BuildQuery() (string, error) {
	return b.build(nil)
}

// BuildCommand renders the parameterized statement.
func (b *DeleteBuilder) BuildCommand() (*Command, error) {
	sink := &Params{}
	query, err := b.build(sink)
	if err != nil {
		return nil, err
	}

	return &Command{SQL: query, Parameters: sink.List()}, nil
}

func (b *DeleteBuilder) build(sink *Params) (string, error) {
	if b.table == "" {
		return "", ErrNoTable
	}
	if err := b.where.Err(); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("DELETE FROM ")
	sb.WriteString(b.cfg.Quote(b.table))

	if b.where.HasClause() {
		sb.WriteString(" WHERE ")
		sb.WriteString(b.where.render(b.cfg, "", sink))
	}

	return sb.String(), nil
}
