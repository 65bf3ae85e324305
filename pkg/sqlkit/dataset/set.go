// Package dataset is a thin typed CRUD façade over the statement builders:
// a Set[T] resolves T's table descriptor once and turns entity values into
// executed INSERT/UPDATE/DELETE/SELECT commands.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/sllt/sqlkit/pkg/sqlkit/builder"
	"github.com/sllt/sqlkit/pkg/sqlkit/schema"
	"github.com/sllt/sqlkit/pkg/sqlkit/session"
)

var (
	ErrNoPrimaryKey = errors.New("[dataset] table has no primary key")
	ErrMissingField = errors.New("[dataset] entity has no field for column")
)

// Set is a typed view of one table. T must be a struct whose fields map to
// the table's columns by `db` tag or snake_case name.
type Set[T any] struct {
	exec  session.Executor
	table *schema.Table
	cfg   builder.Config
}

// Option configures a Set.
type Option func(*config)

type config struct {
	registry   *schema.Registry
	builderCfg builder.Config
}

// WithRegistry resolves the descriptor from a specific registry instead of
// the default one.
func WithRegistry(r *schema.Registry) Option {
	return func(c *config) { c.registry = r }
}

// WithConfig sets the quoting configuration statements render with.
func WithConfig(cfg builder.Config) Option {
	return func(c *config) { c.builderCfg = cfg }
}

// New resolves T's table descriptor and returns a Set running against exec.
func New[T any](exec session.Executor, opts ...Option) (*Set[T], error) {
	c := config{registry: schema.Default, builderCfg: builder.DefaultConfig()}
	for _, opt := range opts {
		opt(&c)
	}

	var zero T
	table, err := c.registry.Lookup(zero)
	if err != nil {
		return nil, err
	}
	if len(table.PrimaryKey()) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoPrimaryKey, table.Name())
	}

	return &Set[T]{exec: exec, table: table, cfg: c.builderCfg}, nil
}

// Table returns the resolved descriptor.
func (s *Set[T]) Table() *schema.Table {
	return s.table
}

// Init creates the backing table if needed.
func (s *Set[T]) Init(ctx context.Context) error {
	ddl, err := s.table.CreateSQL(s.cfg)
	if err != nil {
		return err
	}

	_, err = s.exec.ExecContext(ctx, ddl)

	return err
}

// Add inserts the entity. Autoincrement columns are left to the database.
func (s *Set[T]) Add(ctx context.Context, entity T) error {
	q := builder.NewInsert(s.cfg).Into(s.table.Name())

	for _, col := range s.table.Columns() {
		if col.AutoIncrement {
			continue
		}
		v, err := fieldValue(entity, col.Name)
		if err != nil {
			return err
		}
		q.Set(col.Name, v)
	}

	cmd, err := q.BuildCommand()
	if err != nil {
		return err
	}

	_, err = session.ExecCommand(ctx, s.exec, cmd)

	return err
}

// Update rewrites the entity's non-key columns, addressed by primary key.
func (s *Set[T]) Update(ctx context.Context, entity T) error {
	q := builder.NewUpdate(s.cfg).Table(s.table.Name())

	keys := map[string]struct{}{}
	for _, k := range s.table.PrimaryKey() {
		keys[k] = struct{}{}
	}

	for _, col := range s.table.Columns() {
		if _, ok := keys[col.Name]; ok {
			continue
		}
		v, err := fieldValue(entity, col.Name)
		if err != nil {
			return err
		}
		q.Set(col.Name, v)
	}

	if err := s.whereKey(q.WhereStatement(), entity); err != nil {
		return err
	}

	cmd, err := q.BuildCommand()
	if err != nil {
		return err
	}

	_, err = session.ExecCommand(ctx, s.exec, cmd)

	return err
}

// Remove deletes the entity's row by primary key.
func (s *Set[T]) Remove(ctx context.Context, entity T) error {
	q := builder.NewDelete(s.cfg).From(s.table.Name())

	if err := s.whereKey(q.WhereStatement(), entity); err != nil {
		return err
	}

	cmd, err := q.BuildCommand()
	if err != nil {
		return err
	}

	_, err = session.ExecCommand(ctx, s.exec, cmd)

	return err
}

// Contains reports whether a row with the entity's primary key exists.
func (s *Set[T]) Contains(ctx context.Context, entity T) (bool, error) {
	q := builder.NewSelect(s.cfg).From(s.table.Name())
	q.SelectAggregate("", "", builder.AggregateCount)

	if err := s.whereKey(q.WhereStatement(), entity); err != nil {
		return false, err
	}

	cmd, err := q.BuildCommand()
	if err != nil {
		return false, err
	}

	var count int64
	row := s.exec.QueryRowContext(ctx, cmd.SQL, cmd.Args()...)
	if err := row.Scan(&count); err != nil {
		return false, err
	}

	return count > 0, nil
}

// Find runs a SELECT over the table's columns, applies the given refinement
// to the query, and materializes all matching rows.
func (s *Set[T]) Find(ctx context.Context, refine ...func(*builder.SelectBuilder)) ([]T, error) {
	q := builder.NewSelect(s.cfg).From(s.table.Name())
	q.Select(s.table.ColumnNames()...)

	for _, fn := range refine {
		fn(q)
	}

	cmd, err := q.BuildCommand()
	if err != nil {
		return nil, err
	}

	var out []T
	if err := session.SelectCommand(ctx, s.exec, &out, cmd); err != nil {
		return nil, err
	}

	return out, nil
}

// whereKey appends one equality condition per primary key column.
func (s *Set[T]) whereKey(stmt *builder.Statement, entity T) error {
	for _, key := range s.table.PrimaryKey() {
		v, err := fieldValue(entity, key)
		if err != nil {
			return err
		}
		stmt.And(key).Equals(v)
	}

	return nil
}

// fieldValue resolves the struct field backing the named column, matching
// by db tag first and snake_case field name second.
func fieldValue(entity any, column string) (any, error) {
	v := reflect.ValueOf(entity)
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := f.Tag.Get("db")
		if name == "" {
			name = session.ToSnakeCase(f.Name)
		}
		if name == column {
			return v.Field(i).Interface(), nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrMissingField, column)
}
