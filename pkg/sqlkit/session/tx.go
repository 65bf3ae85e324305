package session

import (
	"context"
	"database/sql"
	"time"

	"github.com/sllt/sqlkit/pkg/sqlkit/logging"
)

// Tx is a wrapper around sql.Tx with the same logging and metrics surface
// as DB.
type Tx struct {
	*sql.Tx
	config  Config
	logger  logging.Logger
	metrics Metrics
}

func (t *Tx) sendOperationStats(start time.Time, queryType, query string, args ...any) {
	sendStats(t.logger, t.metrics, t.config, start, queryType, query, args...)
}

func (t *Tx) Query(query string, args ...any) (*sql.Rows, error) {
	defer t.sendOperationStats(time.Now(), "TxQuery", query, args...)
	return t.Tx.QueryContext(context.Background(), query, args...)
}

func (t *Tx) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	defer t.sendOperationStats(time.Now(), "TxQueryContext", query, args...)
	return t.Tx.QueryContext(ctx, query, args...)
}

func (t *Tx) QueryRow(query string, args ...any) *sql.Row {
	defer t.sendOperationStats(time.Now(), "TxQueryRow", query, args...)
	return t.Tx.QueryRowContext(context.Background(), query, args...)
}

func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	defer t.sendOperationStats(time.Now(), "TxQueryRowContext", query, args...)
	return t.Tx.QueryRowContext(ctx, query, args...)
}

func (t *Tx) Exec(query string, args ...any) (sql.Result, error) {
	defer t.sendOperationStats(time.Now(), "TxExec", query, args...)
	return t.Tx.ExecContext(context.Background(), query, args...)
}

func (t *Tx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	defer t.sendOperationStats(time.Now(), "TxExecContext", query, args...)
	return t.Tx.ExecContext(ctx, query, args...)
}

func (t *Tx) Prepare(query string) (*sql.Stmt, error) {
	defer t.sendOperationStats(time.Now(), "TxPrepare", query)
	return t.Tx.PrepareContext(context.Background(), query)
}

func (t *Tx) Commit() error {
	defer t.sendOperationStats(time.Now(), "TxCommit", "COMMIT")
	return t.Tx.Commit()
}

func (t *Tx) Rollback() error {
	defer t.sendOperationStats(time.Now(), "TxRollback", "ROLLBACK")
	return t.Tx.Rollback()
}

// Select executes query using the active transaction and binds rows into data.
func (t *Tx) Select(ctx context.Context, data any, query string, args ...any) error {
	return selectData(ctx, t.logger, t.QueryContext, data, query, args...)
}
