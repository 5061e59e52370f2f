package arctext

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/arctext/metrics"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger for arctext and its sub-packages.
// By default, arctext produces no log output. Call SetLogger to enable it.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by arctext:
//   - [slog.LevelDebug]: layout recomputation details
//   - [slog.LevelWarn]: rejected attribute values, unsupported input
//
// Example:
//
//	arctext.SetLogger(slog.Default())
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	// Share the logger with the metrics package, which cannot import
	// arctext without a cycle.
	metrics.SetLogger(l)
}

// Logger returns the current logger used by arctext.
// Logger is safe for concurrent use and never returns nil.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// logger is a convenience alias for internal call sites.
func logger() *slog.Logger { return loggerPtr.Load() }
