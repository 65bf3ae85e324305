package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sllt/sqlkit/pkg/sqlkit/builder"
)

func TestCreateSQL(t *testing.T) {
	table, err := Define("todos").
		Column("id", Integer).PrimaryKey().AutoIncrement().
		Column("title", Text).NotNull().
		Column("done", Boolean).NotNull().Default(false).
		Column("created_at", Timestamp).
		Build()
	require.NoError(t, err)

	sql, err := table.CreateSQL(builder.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, "CREATE TABLE todos (id INTEGER PRIMARY KEY AUTOINCREMENT, title TEXT NOT NULL, done BOOLEAN NOT NULL DEFAULT 0, created_at TIMESTAMP)", sql)
}

func TestCreateSQL_IfNotExists(t *testing.T) {
	table, err := Define("todos").IfNotExists().
		Column("id", Integer).PrimaryKey().
		Build()
	require.NoError(t, err)

	sql, err := table.CreateSQL(builder.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, "CREATE TABLE IF NOT EXISTS todos (id INTEGER PRIMARY KEY)", sql)
}

func TestCreateSQL_CompositeKey(t *testing.T) {
	table, err := Define("memberships").
		Column("user_id", Integer).PrimaryKey().
		Column("group_id", Integer).PrimaryKey().
		Column("role", Text).NotNull().Default("member").
		Build()
	require.NoError(t, err)

	sql, err := table.CreateSQL(builder.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, "CREATE TABLE memberships (user_id INTEGER, group_id INTEGER, role TEXT NOT NULL DEFAULT 'member', PRIMARY KEY (user_id, group_id))", sql)
}

func TestCreateSQL_QuotesKeywords(t *testing.T) {
	table, err := Define("order").
		Column("id", Integer).PrimaryKey().
		Column("group", Text).Unique().
		Build()
	require.NoError(t, err)

	sql, err := table.CreateSQL(builder.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, `CREATE TABLE "order" (id INTEGER PRIMARY KEY, "group" TEXT UNIQUE)`, sql)
}

func TestDropSQL(t *testing.T) {
	table, err := Define("todos").Column("id", Integer).Build()
	require.NoError(t, err)

	assert.Equal(t, "DROP TABLE IF EXISTS todos", table.DropSQL(builder.DefaultConfig()))
}

func TestDefine_Errors(t *testing.T) {
	_, err := Define("t").Build()
	assert.ErrorIs(t, err, ErrNoColumns)

	_, err = Define("t").NotNull().Build()
	assert.ErrorIs(t, err, ErrNoColumnModifier)

	_, err = Define("t").Column("a", Integer).Column("a", Text).Build()
	assert.ErrorIs(t, err, ErrDuplicateColumn)

	_, err = Define("t").Column("a", Text).AutoIncrement().Build()
	assert.ErrorIs(t, err, ErrAutoIncrement)

	_, err = Define("t").
		Column("a", Integer).PrimaryKey().AutoIncrement().
		Column("b", Integer).PrimaryKey().
		Build()
	assert.ErrorIs(t, err, ErrAutoIncrement)

	_, err = Define("t").Column("a", Text).Default(struct{}{}).Build()
	assert.ErrorIs(t, err, ErrDefaultValue)
}

func TestTable_Accessors(t *testing.T) {
	table, err := Define("todos").
		Column("id", Integer).PrimaryKey().
		Column("title", Text).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "todos", table.Name())
	assert.Equal(t, []string{"id", "title"}, table.ColumnNames())
	assert.Equal(t, []string{"id"}, table.PrimaryKey())
}

func TestMustBuild_PanicsOnError(t *testing.T) {
	assert.Panics(t, func() {
		Define("t").MustBuild()
	})
}
