// Package schema declares table descriptors and generates the matching
// CREATE/DROP TABLE statements. Descriptors are built explicitly through
// Define rather than scanned from struct fields at runtime, so the mapping
// between a type and its table is visible in one place.
package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sllt/sqlkit/pkg/sqlkit/builder"
)

var (
	ErrNoColumns        = errors.New("[schema] table has no columns")
	ErrNoColumnModifier = errors.New("[schema] column modifier before any column")
	ErrDuplicateColumn  = errors.New("[schema] duplicate column name")
	ErrAutoIncrement    = errors.New("[schema] AUTOINCREMENT requires a single integer primary key")
	ErrDefaultValue     = errors.New("[schema] unsupported default value")
)

// ColumnType is the declared SQLite type of a column.
type ColumnType int

const (
	Integer ColumnType = iota
	Real
	Text
	Blob
	Boolean
	Timestamp
)

func (t ColumnType) String() string {
	switch t {
	case Real:
		return "REAL"
	case Text:
		return "TEXT"
	case Blob:
		return "BLOB"
	case Boolean:
		return "BOOLEAN"
	case Timestamp:
		return "TIMESTAMP"
	default:
		return "INTEGER"
	}
}

// Column is one declared column of a table descriptor.
type Column struct {
	Name          string
	Type          ColumnType
	PrimaryKey    bool
	AutoIncrement bool
	NotNull       bool
	Unique        bool
	Default       *builder.Value
}

// Table is an immutable table descriptor: the table name and its ordered
// columns. Build one through Define.
type Table struct {
	name        string
	columns     []Column
	ifNotExists bool
}

// Name returns the table name.
func (t *Table) Name() string {
	return t.name
}

// Columns returns the declared columns in definition order.
func (t *Table) Columns() []Column {
	return t.columns
}

// ColumnNames returns the column names in definition order.
func (t *Table) ColumnNames() []string {
	names := make([]string, 0, len(t.columns))
	for _, c := range t.columns {
		names = append(names, c.Name)
	}

	return names
}

// PrimaryKey returns the primary key column names in definition order.
func (t *Table) PrimaryKey() []string {
	var keys []string
	for _, c := range t.columns {
		if c.PrimaryKey {
			keys = append(keys, c.Name)
		}
	}

	return keys
}

// CreateSQL renders the CREATE TABLE statement under the given quoting
// configuration.
func (t *Table) CreateSQL(cfg builder.Config) (string, error) {
	if len(t.columns) == 0 {
		return "", ErrNoColumns
	}

	pk := t.PrimaryKey()

	defs := make([]string, 0, len(t.columns)+1)
	for _, c := range t.columns {
		defs = append(defs, t.renderColumn(cfg, c, len(pk) == 1))
	}

	// a composite key becomes a table-level constraint
	if len(pk) > 1 {
		quoted := make([]string, 0, len(pk))
		for _, k := range pk {
			quoted = append(quoted, cfg.Quote(k))
		}
		defs = append(defs, "PRIMARY KEY ("+strings.Join(quoted, ", ")+")")
	}

	var sb strings.Builder
	sb.WriteString("CREATE TABLE ")
	if t.ifNotExists {
		sb.WriteString("IF NOT EXISTS ")
	}
	sb.WriteString(cfg.Quote(t.name))
	sb.WriteString(" (")
	sb.WriteString(strings.Join(defs, ", "))
	sb.WriteString(")")

	return sb.String(), nil
}

// DropSQL renders the DROP TABLE IF EXISTS statement.
func (t *Table) DropSQL(cfg builder.Config) string {
	return "DROP TABLE IF EXISTS " + cfg.Quote(t.name)
}

func (t *Table) renderColumn(cfg builder.Config, c Column, inlinePK bool) string {
	var sb strings.Builder
	sb.WriteString(cfg.Quote(c.Name))
	sb.WriteString(" ")
	sb.WriteString(c.Type.String())

	if c.PrimaryKey && inlinePK {
		sb.WriteString(" PRIMARY KEY")
		if c.AutoIncrement {
			sb.WriteString(" AUTOINCREMENT")
		}
	}
	if c.NotNull {
		sb.WriteString(" NOT NULL")
	}
	if c.Unique {
		sb.WriteString(" UNIQUE")
	}
	if c.Default != nil {
		sb.WriteString(" DEFAULT ")
		sb.WriteString(c.Default.Literal())
	}

	return sb.String()
}

// TableBuilder accumulates a table descriptor. Modifier calls (PrimaryKey,
// NotNull, ...) apply to the most recently added column.
type TableBuilder struct {
	table Table
	names map[string]struct{}
	err   error
}

// Define starts a descriptor for the named table.
func Define(name string) *TableBuilder {
	return &TableBuilder{
		table: Table{name: name},
		names: map[string]struct{}{},
	}
}

func (b *TableBuilder) fail(err error) *TableBuilder {
	if b.err == nil {
		b.err = err
	}

	return b
}

func (b *TableBuilder) last() *Column {
	if len(b.table.columns) == 0 {
		return nil
	}

	return &b.table.columns[len(b.table.columns)-1]
}

// Column appends a column of the given type.
func (b *TableBuilder) Column(name string, typ ColumnType) *TableBuilder {
	if _, ok := b.names[name]; ok {
		return b.fail(fmt.Errorf("%w: %q", ErrDuplicateColumn, name))
	}

	b.names[name] = struct{}{}
	b.table.columns = append(b.table.columns, Column{Name: name, Type: typ})

	return b
}

// PrimaryKey marks the last column as (part of) the primary key.
func (b *TableBuilder) PrimaryKey() *TableBuilder {
	c := b.last()
	if c == nil {
		return b.fail(ErrNoColumnModifier)
	}
	c.PrimaryKey = true

	return b
}

// AutoIncrement marks the last column AUTOINCREMENT. Only valid on a single
// integer primary key; validated at Build.
func (b *TableBuilder) AutoIncrement() *TableBuilder {
	c := b.last()
	if c == nil {
		return b.fail(ErrNoColumnModifier)
	}
	c.AutoIncrement = true

	return b
}

// NotNull marks the last column NOT NULL.
func (b *TableBuilder) NotNull() *TableBuilder {
	c := b.last()
	if c == nil {
		return b.fail(ErrNoColumnModifier)
	}
	c.NotNull = true

	return b
}

// Unique marks the last column UNIQUE.
func (b *TableBuilder) Unique() *TableBuilder {
	c := b.last()
	if c == nil {
		return b.fail(ErrNoColumnModifier)
	}
	c.Unique = true

	return b
}

// Default sets the last column's DEFAULT value. The value goes through the
// builder's literal rules, so only its supported Go types are accepted.
func (b *TableBuilder) Default(value any) *TableBuilder {
	c := b.last()
	if c == nil {
		return b.fail(ErrNoColumnModifier)
	}

	v, err := builder.NewValue(value)
	if err != nil {
		return b.fail(fmt.Errorf("%w: %v", ErrDefaultValue, err))
	}
	c.Default = &v

	return b
}

// IfNotExists makes CreateSQL emit CREATE TABLE IF NOT EXISTS.
func (b *TableBuilder) IfNotExists() *TableBuilder {
	b.table.ifNotExists = true
	return b
}

// Build finalizes and validates the descriptor.
func (b *TableBuilder) Build() (*Table, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.table.columns) == 0 {
		return nil, ErrNoColumns
	}

	pk := b.table.PrimaryKey()
	for _, c := range b.table.columns {
		if !c.AutoIncrement {
			continue
		}
		if !c.PrimaryKey || c.Type != Integer || len(pk) != 1 {
			return nil, fmt.Errorf("%w: %q", ErrAutoIncrement, c.Name)
		}
	}

	t := b.table
	return &t, nil
}

// MustBuild is Build for package-level descriptor variables; it panics on
// a malformed definition.
func (b *TableBuilder) MustBuild() *Table {
	t, err := b.Build()
	if err != nil {
		panic(err)
	}

	return t
}
