package celltxt

import "log/slog"

import "github.com/tinne26/celltxt/internal"

// Sets the logger used by celltxt and all its subpackages. By default,
// nothing is logged. Passing nil restores the default silent behavior.
//
// Levels in use:
//  - [slog.LevelDebug]: cache build diagnostics (glyphs, bytes, time).
//  - [slog.LevelWarn]: repertoire runes missing from a font.
//
// Safe for concurrent use.
func SetLogger(logger *slog.Logger) {
	internal.SetLogger(logger)
}

// Returns the current logger. Never nil.
func Logger() *slog.Logger {
	return internal.Logger()
}
