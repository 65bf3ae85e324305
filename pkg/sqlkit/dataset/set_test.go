package dataset

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sllt/sqlkit/pkg/sqlkit/builder"
	"github.com/sllt/sqlkit/pkg/sqlkit/schema"
	"github.com/sllt/sqlkit/pkg/sqlkit/session"
)

type todo struct {
	ID    int64
	Title string
	Done  bool
}

func (todo) TableDefinition() *schema.Table {
	return schema.Define("todos").IfNotExists().
		Column("id", schema.Integer).PrimaryKey().AutoIncrement().
		Column("title", schema.Text).NotNull().
		Column("done", schema.Boolean).NotNull().Default(false).
		MustBuild()
}

type keyless struct{}

func (keyless) TableDefinition() *schema.Table {
	return schema.Define("keyless").Column("value", schema.Text).MustBuild()
}

func newMockSet[T any](t *testing.T) (*Set[T], sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db := session.New(sqlDB, session.Config{Path: ":memory:"})
	set, err := New[T](db, WithRegistry(&schema.Registry{}))
	require.NoError(t, err)

	return set, mock
}

func TestNew_RequiresPrimaryKey(t *testing.T) {
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db := session.New(sqlDB, session.Config{})
	_, err = New[keyless](db, WithRegistry(&schema.Registry{}))
	assert.ErrorIs(t, err, ErrNoPrimaryKey)
}

func TestNew_RequiresDefinition(t *testing.T) {
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db := session.New(sqlDB, session.Config{})
	_, err = New[struct{ ID int64 }](db, WithRegistry(&schema.Registry{}))
	assert.ErrorIs(t, err, schema.ErrNotRegistered)
}

func TestSet_Init(t *testing.T) {
	set, mock := newMockSet[todo](t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS todos (id INTEGER PRIMARY KEY AUTOINCREMENT, title TEXT NOT NULL, done BOOLEAN NOT NULL DEFAULT 0)").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, set.Init(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSet_Add_SkipsAutoIncrement(t *testing.T) {
	set, mock := newMockSet[todo](t)

	mock.ExpectExec("INSERT INTO todos (title, done) VALUES (@P0, @P1)").
		WithArgs(sql.Named("P0", "buy milk"), sql.Named("P1", false)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := set.Add(context.Background(), todo{Title: "buy milk"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSet_Update_AddressesByKey(t *testing.T) {
	set, mock := newMockSet[todo](t)

	mock.ExpectExec("UPDATE todos SET title = @P0, done = @P1 WHERE id = @P2").
		WithArgs(sql.Named("P0", "done now"), sql.Named("P1", true), sql.Named("P2", int64(7))).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := set.Update(context.Background(), todo{ID: 7, Title: "done now", Done: true})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSet_Remove(t *testing.T) {
	set, mock := newMockSet[todo](t)

	mock.ExpectExec("DELETE FROM todos WHERE id = @P0").
		WithArgs(sql.Named("P0", int64(7))).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := set.Remove(context.Background(), todo{ID: 7})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSet_Contains(t *testing.T) {
	set, mock := newMockSet[todo](t)

	mock.ExpectQuery("SELECT COUNT(*) FROM todos AS t1 WHERE t1.id = @P0").
		WithArgs(sql.Named("P0", int64(7))).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	ok, err := set.Contains(context.Background(), todo{ID: 7})
	require.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectQuery("SELECT COUNT(*) FROM todos AS t1 WHERE t1.id = @P0").
		WithArgs(sql.Named("P0", int64(8))).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	ok, err = set.Contains(context.Background(), todo{ID: 8})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSet_Find(t *testing.T) {
	set, mock := newMockSet[todo](t)

	mock.ExpectQuery("SELECT t1.id AS id, t1.title AS title, t1.done AS done FROM todos AS t1 WHERE t1.done = @P0").
		WithArgs(sql.Named("P0", false)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "done"}).
			AddRow(1, "buy milk", false).
			AddRow(2, "water plants", false))

	open, err := set.Find(context.Background(), func(q *builder.SelectBuilder) {
		q.Where("done").Equals(false)
	})
	require.NoError(t, err)

	assert.Equal(t, []todo{
		{ID: 1, Title: "buy milk"},
		{ID: 2, Title: "water plants"},
	}, open)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSet_FindAll(t *testing.T) {
	set, mock := newMockSet[todo](t)

	mock.ExpectQuery("SELECT t1.id AS id, t1.title AS title, t1.done AS done FROM todos AS t1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "done"}))

	all, err := set.Find(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}
