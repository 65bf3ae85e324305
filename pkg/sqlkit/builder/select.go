package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// OrderDirection is the sort direction of an ORDER BY entry.
type OrderDirection int

const (
	Ascending OrderDirection = iota
	Descending
)

type orderEntry struct {
	column    string
	direction OrderDirection
}

// Combinator joins two complete select statements.
type Combinator int

const (
	CombineUnion Combinator = iota
	CombineUnionAll
	CombineExcept
	CombineIntersect
)

func (c Combinator) String() string {
	switch c {
	case CombineUnionAll:
		return "UNION ALL"
	case CombineExcept:
		return "EXCEPT"
	case CombineIntersect:
		return "INTERSECT"
	default:
		return "UNION"
	}
}

// unionStatement is a combinator plus the nested select it applies to.
type unionStatement struct {
	combinator Combinator
	sel        *SelectBuilder
}

// SelectBuilder assembles a SELECT statement from a mutable model. Its
// configuration calls may run in any order; a single build pass walks the
// model once and produces the SQL text plus, for BuildCommand, the ordered
// parameter list. Builders are not safe for concurrent mutation.
type SelectBuilder struct {
	cfg     Config
	tables  []*TableRef
	current *TableRef
	joins   []*JoinClause
	where   *Statement
	having  *Statement
	groupBy []string
	orderBy []orderEntry
	skip    int
	take    int
	unions  []unionStatement
	err     error
}

// NewSelect returns an empty select builder rendering with cfg.
func NewSelect(cfg Config) *SelectBuilder {
	return &SelectBuilder{
		cfg:    cfg,
		where:  NewStatement(),
		having: NewStatement(),
	}
}

func (b *SelectBuilder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// From names the table the statement selects from. An optional alias may be
// given; otherwise one is assigned by position at build time. Column
// selection calls that follow apply to this table until a join adds another.
func (b *SelectBuilder) From(table string, alias ...string) *SelectBuilder {
	a := ""
	if len(alias) > 0 {
		a = alias[0]
	}

	t := newTableRef(table, a)
	if len(b.tables) == 0 {
		b.tables = append(b.tables, t)
	} else {
		b.tables[0] = t
	}
	b.current = t

	return b
}

// SelectAll clears the current table's column list so the projection falls
// back to alias.*.
func (b *SelectBuilder) SelectAll() *SelectBuilder {
	if b.current != nil {
		b.current.columns = nil
		b.current.index = map[string]int{}
	}

	return b
}

// Select adds the named columns to the current table's projection.
func (b *SelectBuilder) Select(columns ...string) *SelectBuilder {
	if b.current == nil {
		b.fail(ErrNoTable)
		return b
	}

	for _, name := range columns {
		b.current.addColumn(&ColumnRef{Name: name, escape: true})
	}

	return b
}

// SelectAggregate adds an aggregate-wrapped column. The wildcard "*" (or an
// empty column name) is only legal with AggregateCount.
func (b *SelectBuilder) SelectAggregate(column, alias string, fn Aggregate) *SelectBuilder {
	if b.current == nil {
		b.fail(ErrNoTable)
		return b
	}

	if column == "" {
		if fn != AggregateCount {
			b.fail(ErrAggregateColumn)
			return b
		}
		column = "*"
	}
	if column == "*" && fn != AggregateCount {
		b.fail(ErrWildcardAggregate)
		return b
	}

	b.current.addColumn(&ColumnRef{Name: column, Alias: alias, Aggregate: fn, escape: true})

	return b
}

// Alias sets the output alias of a selected column, referenced by name
// (string) or position (int).
func (b *SelectBuilder) Alias(column any, alias string) *SelectBuilder {
	if b.current == nil {
		b.fail(ErrNoTable)
		return b
	}

	c, err := b.current.column(column)
	if err != nil {
		b.fail(err)
		return b
	}
	c.Alias = alias

	return b
}

// NoEscape disables quoting on the referenced columns (by name or position),
// letting computed expressions pass through the projection untouched.
func (b *SelectBuilder) NoEscape(columns ...any) *SelectBuilder {
	if b.current == nil {
		b.fail(ErrNoTable)
		return b
	}

	for _, ref := range columns {
		c, err := b.current.column(ref)
		if err != nil {
			b.fail(err)
			return b
		}
		c.escape = false
	}

	return b
}

// Join adds a join of the given kind and makes the joined table the current
// target for column selection. Configure it through the returned clause:
// As, On(...).Equals(...), or Using.
func (b *SelectBuilder) Join(kind JoinKind, table string) *JoinClause {
	t := newTableRef(table, "")
	b.tables = append(b.tables, t)
	b.current = t

	j := &JoinClause{kind: kind, table: t, owner: b}
	b.joins = append(b.joins, j)

	return j
}

// Where starts a WHERE condition on the given field.
func (b *SelectBuilder) Where(field string) *Condition {
	return b.where.And(field)
}

// WhereStatement exposes the WHERE statement for direct chaining.
func (b *SelectBuilder) WhereStatement() *Statement {
	return b.where
}

// Having starts a HAVING condition on the given field.
func (b *SelectBuilder) Having(field string) *Condition {
	return b.having.And(field)
}

// HavingStatement exposes the HAVING statement for direct chaining.
func (b *SelectBuilder) HavingStatement() *Statement {
	return b.having
}

// GroupBy appends grouping columns.
func (b *SelectBuilder) GroupBy(columns ...string) *SelectBuilder {
	b.groupBy = append(b.groupBy, columns...)
	return b
}

// OrderBy appends an ordering entry.
func (b *SelectBuilder) OrderBy(column string, direction OrderDirection) *SelectBuilder {
	b.orderBy = append(b.orderBy, orderEntry{column: column, direction: direction})
	return b
}

// Skip sets the OFFSET row count; values <= 0 mean no offset.
func (b *SelectBuilder) Skip(n int) *SelectBuilder {
	b.skip = n
	return b
}

// Take sets the LIMIT row count; values <= 0 mean no limit.
func (b *SelectBuilder) Take(n int) *SelectBuilder {
	b.take = n
	return b
}

// Union combines with another select (or a bare table name, meaning all of
// its rows) using UNION. ORDER BY, LIMIT and OFFSET of this builder apply to
// the whole compound and render after the last arm; an arm carrying its own
// fails the build with ErrUnionOrdering.
func (b *SelectBuilder) Union(query any) *SelectBuilder {
	return b.combine(CombineUnion, query)
}

// UnionAll combines using UNION ALL.
func (b *SelectBuilder) UnionAll(query any) *SelectBuilder {
	return b.combine(CombineUnionAll, query)
}

// Except combines using EXCEPT.
func (b *SelectBuilder) Except(query any) *SelectBuilder {
	return b.combine(CombineExcept, query)
}

// Intersect combines using INTERSECT.
func (b *SelectBuilder) Intersect(query any) *SelectBuilder {
	return b.combine(CombineIntersect, query)
}

func (b *SelectBuilder) combine(c Combinator, query any) *SelectBuilder {
	switch q := query.(type) {
	case *SelectBuilder:
		b.unions = append(b.unions, unionStatement{combinator: c, sel: q})
	case string:
		b.unions = append(b.unions, unionStatement{combinator: c, sel: NewSelect(b.cfg).From(q)})
	default:
		b.fail(fmt.Errorf("%w: %T", ErrUnionOperand, query))
	}

	return b
}

// tableAlias resolves a table reference (name or alias) to its alias.
func (b *SelectBuilder) tableAlias(ref string) (string, error) {
	for _, t := range b.tables {
		if t.matches(ref) {
			return t.Alias, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownTable, ref)
}

// BuildQuery renders the statement with inline literal values. The result is
// for display and logging only; it is not safe to execute against untrusted
// input. Use BuildCommand for execution.
func (b *SelectBuilder) BuildQuery() (string, error) {
	return b.build(nil)
}

// BuildCommand renders the statement with @P<n> placeholders and returns it
// together with the ordered parameter list.
func (b *SelectBuilder) BuildCommand() (*Command, error) {
	sink := &Params{}
	query, err := b.build(sink)
	if err != nil {
		return nil, err
	}

	return &Command{SQL: query, Parameters: sink.List()}, nil
}

func (b *SelectBuilder) build(sink *Params) (string, error) {
	var sb strings.Builder
	if err := b.writeCore(&sb, sink); err != nil {
		return "", err
	}

	// In a compound select the ORDER BY / LIMIT / OFFSET tail belongs to the
	// whole statement, so it goes after the last arm.
	if err := b.writeArms(&sb, sink); err != nil {
		return "", err
	}
	b.writeTail(&sb)

	return sb.String(), nil
}

// writeCore renders everything up to and including HAVING.
func (b *SelectBuilder) writeCore(sb *strings.Builder, sink *Params) error {
	if err := b.validate(); err != nil {
		return err
	}

	b.assignAliases()

	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(b.projection(), ", "))

	primary := b.tables[0]
	sb.WriteString(" FROM ")
	sb.WriteString(b.cfg.Quote(primary.Name))
	sb.WriteString(" AS ")
	sb.WriteString(primary.Alias)

	for _, j := range b.joins {
		joinSQL, err := j.render(b.cfg)
		if err != nil {
			return err
		}
		sb.WriteString(" ")
		sb.WriteString(joinSQL)
	}

	if b.where.HasClause() {
		sb.WriteString(" WHERE ")
		sb.WriteString(b.where.render(b.cfg, primary.Alias, sink))
	}

	if len(b.groupBy) > 0 {
		quoted := make([]string, 0, len(b.groupBy))
		for _, c := range b.groupBy {
			quoted = append(quoted, b.cfg.Quote(c))
		}
		sb.WriteString(" GROUP BY ")
		sb.WriteString(strings.Join(quoted, ", "))
	}

	if b.having.HasClause() {
		// HAVING references grouped columns or projection aliases, so no
		// table qualifier is applied.
		sb.WriteString(" HAVING ")
		sb.WriteString(b.having.render(b.cfg, "", sink))
	}

	return nil
}

// writeArms renders the combinator arms. Arms carry no tail of their own:
// SQLite rejects ORDER BY / LIMIT on an inner select of a compound.
func (b *SelectBuilder) writeArms(sb *strings.Builder, sink *Params) error {
	for _, u := range b.unions {
		arm := u.sel
		if len(arm.orderBy) > 0 || arm.take > 0 || arm.skip > 0 {
			return ErrUnionOrdering
		}

		sb.WriteString(" " + u.combinator.String() + " ")
		if err := arm.writeCore(sb, sink); err != nil {
			return err
		}
		if err := arm.writeArms(sb, sink); err != nil {
			return err
		}
	}

	return nil
}

func (b *SelectBuilder) writeTail(sb *strings.Builder) {
	if len(b.orderBy) > 0 {
		entries := make([]string, 0, len(b.orderBy))
		for _, o := range b.orderBy {
			e := b.cfg.Quote(o.column)
			if o.direction == Descending {
				e += " DESC"
			}
			entries = append(entries, e)
		}
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(entries, ", "))
	}

	if b.take > 0 {
		sb.WriteString(" LIMIT " + strconv.Itoa(b.take))
	}
	if b.skip > 0 {
		sb.WriteString(" OFFSET " + strconv.Itoa(b.skip))
	}
}

func (b *SelectBuilder) validate() error {
	if b.err != nil {
		return b.err
	}
	if len(b.tables) == 0 {
		return ErrNoTable
	}
	if err := b.where.Err(); err != nil {
		return err
	}
	if err := b.having.Err(); err != nil {
		return err
	}
	if b.having.HasClause() && len(b.groupBy) == 0 {
		return ErrHavingWithoutGroupBy
	}

	return nil
}

// assignAliases fills missing table aliases by position: t1, t2, ...
// Assignment is idempotent so repeated builds stay byte-identical.
func (b *SelectBuilder) assignAliases() {
	for i, t := range b.tables {
		if t.Alias == "" {
			t.Alias = "t" + strconv.Itoa(i+1)
		}
	}
}

func (b *SelectBuilder) projection() []string {
	var cols []string
	for _, t := range b.tables {
		if len(t.columns) == 0 {
			cols = append(cols, t.Alias+".*")
			continue
		}
		for _, c := range t.columns {
			cols = append(cols, b.renderColumn(t, c))
		}
	}

	return cols
}

func (b *SelectBuilder) renderColumn(t *TableRef, c *ColumnRef) string {
	name := c.Name
	if c.escape {
		name = b.cfg.Quote(name)
	}

	if c.Aggregate != AggregateNone {
		target := name
		if c.Name != "*" {
			target = t.Alias + "." + name
		}
		if c.Aggregate == AggregateDistinctCount {
			target = "DISTINCT " + target
		}
		expr := c.Aggregate.String() + "(" + target + ")"
		if c.Alias != "" {
			expr += " AS " + b.cfg.Quote(c.Alias)
		}
		return expr
	}

	alias := c.Alias
	if alias == "" {
		alias = c.Name
	}

	// An unescaped name is a computed expression, not a column of the table,
	// so it takes no table-alias prefix.
	if !c.escape {
		return name + " AS " + b.cfg.Quote(alias)
	}

	return t.Alias + "." + name + " AS " + b.cfg.Quote(alias)
}
