package session

import (
	"context"
	"database/sql"

	"github.com/sllt/sqlkit/pkg/sqlkit/builder"
)

// Executor captures the query operations shared by DB and Tx.
// It is useful for transaction-aware repositories that can run against either.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	Select(ctx context.Context, data any, query string, args ...any) error
}

// ExecCommand executes a built command, binding its @P<n> parameters as
// named arguments.
func ExecCommand(ctx context.Context, exec Executor, cmd *builder.Command) (sql.Result, error) {
	return exec.ExecContext(ctx, cmd.SQL, cmd.Args()...)
}

// QueryCommand runs a built command and returns the rows.
func QueryCommand(ctx context.Context, exec Executor, cmd *builder.Command) (*sql.Rows, error) {
	return exec.QueryContext(ctx, cmd.SQL, cmd.Args()...)
}

// SelectCommand runs a built command and materializes the rows into data,
// which must be a pointer to a slice or struct.
func SelectCommand(ctx context.Context, exec Executor, data any, cmd *builder.Command) error {
	return exec.Select(ctx, data, cmd.SQL, cmd.Args()...)
}
