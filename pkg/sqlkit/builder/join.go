package builder

import "strings"

// JoinKind selects the join keyword.
type JoinKind int

const (
	InnerJoin JoinKind = iota
	OuterJoin
	CrossJoin
	LeftJoin
)

func (k JoinKind) String() string {
	switch k {
	case OuterJoin:
		return "OUTER JOIN"
	case CrossJoin:
		return "CROSS JOIN"
	case LeftJoin:
		return "LEFT JOIN"
	default:
		return "INNER JOIN"
	}
}

// joinCondition is the resolved ON expression: from-table.from-column
// compared against joined-table.joined-column.
type joinCondition struct {
	fromTable  string
	fromColumn string
	op         Operator
	joinColumn string
}

// JoinClause records one join: its kind, the joined table, and exactly one
// of an ON expression or a USING column list. It is created by
// SelectBuilder.Join and configured through the fluent methods below.
type JoinClause struct {
	kind  JoinKind
	table *TableRef
	on    *joinCondition
	using []string
	owner *SelectBuilder
}

// Table returns the joined table reference.
func (j *JoinClause) Table() *TableRef {
	return j.table
}

// As sets the joined table's alias.
func (j *JoinClause) As(alias string) *JoinClause {
	j.table.Alias = alias
	return j
}

// Using sets a USING column list and returns the owning builder.
func (j *JoinClause) Using(columns ...string) *SelectBuilder {
	j.using = columns
	return j.owner
}

// On names the joined table's column for the ON expression. The comparison
// method that follows names the source table and column.
func (j *JoinClause) On(column string) *JoinCondition {
	return &JoinCondition{join: j, column: column}
}

func (j *JoinClause) render(cfg Config) (string, error) {
	var sb strings.Builder
	sb.WriteString(j.kind.String())
	sb.WriteString(" ")
	sb.WriteString(cfg.Quote(j.table.Name))
	sb.WriteString(" AS ")
	sb.WriteString(j.table.Alias)

	switch {
	case j.on != nil:
		fromAlias, err := j.owner.tableAlias(j.on.fromTable)
		if err != nil {
			return "", err
		}
		sb.WriteString(" ON ")
		sb.WriteString(fromAlias + "." + cfg.Quote(j.on.fromColumn))
		sb.WriteString(" " + j.on.op.String() + " ")
		sb.WriteString(j.table.Alias + "." + cfg.Quote(j.on.joinColumn))
	case len(j.using) > 0:
		quoted := make([]string, 0, len(j.using))
		for _, c := range j.using {
			quoted = append(quoted, cfg.Quote(c))
		}
		sb.WriteString(" USING (" + strings.Join(quoted, ", ") + ")")
	case j.kind == CrossJoin:
		// cross joins carry no condition
	default:
		return "", ErrJoinCondition
	}

	return sb.String(), nil
}

// JoinCondition is the fluent hop between naming the joined column and
// choosing the comparison against the source table.
type JoinCondition struct {
	join   *JoinClause
	column string
}

func (c *JoinCondition) set(op Operator, fromTable, fromColumn string) *SelectBuilder {
	c.join.on = &joinCondition{
		fromTable:  fromTable,
		fromColumn: fromColumn,
		op:         op,
		joinColumn: c.column,
	}

	return c.join.owner
}

// Equals joins on fromTable.fromColumn = joined.column.
func (c *JoinCondition) Equals(fromTable, fromColumn string) *SelectBuilder {
	return c.set(Equals, fromTable, fromColumn)
}

// NotEquals joins on fromTable.fromColumn != joined.column.
func (c *JoinCondition) NotEquals(fromTable, fromColumn string) *SelectBuilder {
	return c.set(NotEquals, fromTable, fromColumn)
}

// LessThan joins on fromTable.fromColumn < joined.column.
func (c *JoinCondition) LessThan(fromTable, fromColumn string) *SelectBuilder {
	return c.set(LessThan, fromTable, fromColumn)
}

// GreaterThan joins on fromTable.fromColumn > joined.column.
func (c *JoinCondition) GreaterThan(fromTable, fromColumn string) *SelectBuilder {
	return c.set(GreaterThan, fromTable, fromColumn)
}

// LessOrEquals joins on fromTable.fromColumn <= joined.column.
func (c *JoinCondition) LessOrEquals(fromTable, fromColumn string) *SelectBuilder {
	return c.set(LessOrEquals, fromTable, fromColumn)
}

// GreaterOrEquals joins on fromTable.fromColumn >= joined.column.
func (c *JoinCondition) GreaterOrEquals(fromTable, fromColumn string) *SelectBuilder {
	return c.set(GreaterOrEquals, fromTable, fromColumn)
}
