package builder

import "fmt"

// Aggregate is the function optionally applied to a selected column.
type Aggregate int

const (
	AggregateNone Aggregate = iota
	AggregateCount
	AggregateDistinctCount
	AggregateAvg
	AggregateMin
	AggregateMax
	AggregateSum
)

func (a Aggregate) String() string {
	switch a {
	case AggregateCount, AggregateDistinctCount:
		return "COUNT"
	case AggregateAvg:
		return "AVG"
	case AggregateMin:
		return "MIN"
	case AggregateMax:
		return "MAX"
	case AggregateSum:
		return "SUM"
	default:
		return ""
	}
}

// ColumnRef is one selected column: its name, optional output alias,
// optional aggregate function, and whether the name may be quoted at all.
type ColumnRef struct {
	Name      string
	Alias     string
	Aggregate Aggregate
	escape    bool
}

// Escape reports whether quoting applies to the column name.
func (c *ColumnRef) Escape() bool {
	return c.escape
}

// TableRef is one table taking part in a statement: its name, alias
// (auto-assigned t1, t2, ... at build time when unset) and the ordered list
// of selected columns. An empty column list means "select all columns".
type TableRef struct {
	Name    string
	Alias   string
	columns []*ColumnRef
	index   map[string]int
}

func newTableRef(name, alias string) *TableRef {
	return &TableRef{Name: name, Alias: alias, index: map[string]int{}}
}

// Columns returns the selected columns in declaration order.
func (t *TableRef) Columns() []*ColumnRef {
	return t.columns
}

// addColumn appends the column, or replaces an earlier selection of the same
// name in place so declaration order is stable.
func (t *TableRef) addColumn(c *ColumnRef) {
	if i, ok := t.index[c.Name]; ok && c.Aggregate == AggregateNone {
		t.columns[i] = c
		return
	}

	t.index[c.Name] = len(t.columns)
	t.columns = append(t.columns, c)
}

// column resolves a selected column by name (string) or position (int).
func (t *TableRef) column(ref any) (*ColumnRef, error) {
	switch r := ref.(type) {
	case string:
		if i, ok := t.index[r]; ok {
			return t.columns[i], nil
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, r)
	case int:
		if r < 0 || r >= len(t.columns) {
			return nil, fmt.Errorf("%w: %d of %d", ErrColumnIndex, r, len(t.columns))
		}
		return t.columns[r], nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownColumn, ref)
	}
}

// matches reports whether ref names this table by name or alias.
func (t *TableRef) matches(ref string) bool {
	return ref == t.Name || (t.Alias != "" && ref == t.Alias)
}
