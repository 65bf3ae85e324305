// Package logging defines the logger contract the session layer logs
// through, plus a small leveled implementation and a context-aware wrapper
// that stamps OpenTelemetry trace IDs onto output.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level is the severity of a log line.
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "INFO"
	}
}

// Logger is the logging surface injected into the session layer. Any
// implementation with these methods works; the package ships a standard
// one and a no-op.
type Logger interface {
	Debug(args ...any)
	Debugf(format string, args ...any)
	Info(args ...any)
	Infof(format string, args ...any)
	Warn(args ...any)
	Warnf(format string, args ...any)
	Error(args ...any)
	Errorf(format string, args ...any)
	ChangeLevel(level Level)
}

// StandardLogger writes leveled, timestamped lines to a writer. It is safe
// for concurrent use.
type StandardLogger struct {
	mu    sync.Mutex
	out   io.Writer
	level Level
}

// New returns a StandardLogger writing to out at the given minimum level.
func New(out io.Writer, level Level) *StandardLogger {
	return &StandardLogger{out: out, level: level}
}

// NewDefault returns a StandardLogger writing to stderr at INFO.
func NewDefault() *StandardLogger {
	return New(os.Stderr, INFO)
}

func (l *StandardLogger) logf(level Level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	msg := fmt.Sprint(args...)
	if format != "" {
		msg = fmt.Sprintf(format, args...)
	}
	fmt.Fprintf(l.out, "%s [%s] %s\n", time.Now().Format(time.RFC3339), level, msg)
}

func (l *StandardLogger) Debug(args ...any)                  { l.logf(DEBUG, "", args...) }
func (l *StandardLogger) Debugf(format string, args ...any)  { l.logf(DEBUG, format, args...) }
func (l *StandardLogger) Info(args ...any)                   { l.logf(INFO, "", args...) }
func (l *StandardLogger) Infof(format string, args ...any)   { l.logf(INFO, format, args...) }
func (l *StandardLogger) Warn(args ...any)                   { l.logf(WARN, "", args...) }
func (l *StandardLogger) Warnf(format string, args ...any)   { l.logf(WARN, format, args...) }
func (l *StandardLogger) Error(args ...any)                  { l.logf(ERROR, "", args...) }
func (l *StandardLogger) Errorf(format string, args ...any)  { l.logf(ERROR, format, args...) }

// ChangeLevel updates the minimum level at runtime.
func (l *StandardLogger) ChangeLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// NopLogger discards everything.
type NopLogger struct{}

func NewNop() NopLogger { return NopLogger{} }

func (NopLogger) Debug(args ...any)                 {}
func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Info(args ...any)                  {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warn(args ...any)                  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Error(args ...any)                 {}
func (NopLogger) Errorf(format string, args ...any) {}
func (NopLogger) ChangeLevel(level Level)           {}
