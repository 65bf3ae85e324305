// Package session wraps database/sql with query logging, duration metrics
// and statement-builder integration for SQLite. DB and Tx mirror the
// standard library surface; the Command helpers bind the builder's @P<n>
// parameters with sql.Named.
package session

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/sllt/sqlkit/pkg/sqlkit/logging"
)

// Metrics records query durations. Implementations decide how the
// observation is exported.
type Metrics interface {
	RecordHistogram(ctx context.Context, name string, value float64, labels ...string)
}

// DB is a wrapper around sql.DB which provides some more features.
type DB struct {
	*sql.DB
	logger  logging.Logger
	config  Config
	metrics Metrics
}

// Log is one recorded query: its operation type, text, duration and
// arguments.
type Log struct {
	Type     string `json:"type"`
	Query    string `json:"query"`
	Duration int64  `json:"duration"`
	Args     []any  `json:"args,omitempty"`
}

// PrettyPrint writes the log entry in a fixed-width colored layout.
func (l *Log) PrettyPrint(writer io.Writer) {
	fmt.Fprintf(writer, "[38;5;8m%-32s [38;5;24m%-6s[0m %8d[38;5;8mµs[0m %s\n",
		l.Type, "SQL", l.Duration, clean(l.Query))
}

func clean(query string) string {
	query = regexp.MustCompile(`\s+`).ReplaceAllString(query, " ")
	query = strings.TrimSpace(query)

	return query
}

func sendStats(logger logging.Logger, metrics Metrics, config Config, start time.Time, queryType, query string, args ...any) {
	duration := time.Since(start).Milliseconds()

	if logger != nil {
		logger.Debug(&Log{
			Type:     queryType,
			Query:    query,
			Duration: duration,
			Args:     args,
		})
	}

	if metrics != nil {
		metrics.RecordHistogram(context.Background(), "sqlkit_query_duration", float64(duration),
			"database", config.Path, "type", getOperationType(query))
	}
}

func (d *DB) sendOperationStats(start time.Time, queryType, query string, args ...any) {
	sendStats(d.logger, d.metrics, d.config, start, queryType, query, args...)
}

func getOperationType(query string) string {
	query = strings.TrimSpace(query)
	words := strings.Split(query, " ")

	return strings.ToUpper(words[0])
}

func (d *DB) Query(query string, args ...any) (*sql.Rows, error) {
	defer d.sendOperationStats(time.Now(), "Query", query, args...)
	return d.DB.QueryContext(context.Background(), query, args...)
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	defer d.sendOperationStats(time.Now(), "QueryContext", query, args...)
	return d.DB.QueryContext(ctx, query, args...)
}

func (d *DB) QueryRow(query string, args ...any) *sql.Row {
	defer d.sendOperationStats(time.Now(), "QueryRow", query, args...)
	return d.DB.QueryRowContext(context.Background(), query, args...)
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	defer d.sendOperationStats(time.Now(), "QueryRowContext", query, args...)
	return d.DB.QueryRowContext(ctx, query, args...)
}

func (d *DB) Exec(query string, args ...any) (sql.Result, error) {
	defer d.sendOperationStats(time.Now(), "Exec", query, args...)
	return d.DB.ExecContext(context.Background(), query, args...)
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	defer d.sendOperationStats(time.Now(), "ExecContext", query, args...)
	return d.DB.ExecContext(ctx, query, args...)
}

func (d *DB) Prepare(query string) (*sql.Stmt, error) {
	defer d.sendOperationStats(time.Now(), "Prepare", query)
	return d.DB.PrepareContext(context.Background(), query)
}

func (d *DB) Begin() (*Tx, error) {
	return d.BeginTx(context.Background(), nil)
}

func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	tx, err := d.DB.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}

	return &Tx{Tx: tx, config: d.config, logger: d.logger, metrics: d.metrics}, nil
}

func (d *DB) Close() error {
	if d.DB != nil {
		return d.DB.Close()
	}

	return nil
}

// Select runs a query with args and binds the result of the query to data.
// data should be a pointer to a slice or struct. Struct fields map to
// columns through a `db` tag, falling back to the snake_case field name.
func (d *DB) Select(ctx context.Context, data any, query string, args ...any) error {
	return selectData(ctx, d.logger, d.QueryContext, data, query, args...)
}
