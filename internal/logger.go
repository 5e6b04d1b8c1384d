// Package internal holds state shared between celltxt and its
// subpackages that can't live in the root package without causing
// import cycles.
package internal

import "context"
import "log/slog"
import "sync/atomic"

// Discards everything. Enabled() returns false so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// Stores the logger used by celltxt and all its subpackages.
// A nil logger restores the default silent behavior.
func SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(nopHandler{})
	}
	loggerPtr.Store(logger)
}

// Returns the current logger. Never nil.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
