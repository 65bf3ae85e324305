package session

import (
	"database/sql"
	"os"

	"github.com/joho/godotenv"

	"github.com/sllt/sqlkit/pkg/sqlkit/logging"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// Config locates the SQLite database. Path is a file path or ":memory:".
type Config struct {
	Path string
}

// ConfigFromEnv loads a .env file when one is present and reads the
// database path from SQLKIT_DB_PATH, defaulting to an in-memory database.
func ConfigFromEnv() Config {
	_ = godotenv.Load()

	path := os.Getenv("SQLKIT_DB_PATH")
	if path == "" {
		path = ":memory:"
	}

	return Config{Path: path}
}

// Option configures a DB wrapper.
type Option func(*DB)

// WithLogger sets the query logger.
func WithLogger(l logging.Logger) Option {
	return func(d *DB) { d.logger = l }
}

// WithMetrics sets the duration metrics recorder.
func WithMetrics(m Metrics) Option {
	return func(d *DB) { d.metrics = m }
}

// Open opens the SQLite database at cfg.Path and wraps it.
func Open(cfg Config, opts ...Option) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, err
	}

	return New(sqlDB, cfg, opts...), nil
}

// New wraps an already opened sql.DB. Tests use it to wrap mock
// connections.
func New(sqlDB *sql.DB, cfg Config, opts ...Option) *DB {
	d := &DB{DB: sqlDB, config: cfg}
	for _, opt := range opts {
		opt(d)
	}

	return d
}
