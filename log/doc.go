// Package log provides leveled structured logging on top of [log/slog].
//
// A [Logger] is made with [Make] and configured with functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatJSON),
//		log.WithCaller(true))
//
//	logger.Debug("loaded", slog.String("path", path))
//
// Options never mutate an existing Logger. [Logger.Wrap] derives a Logger
// with changed options and [Logger.With] one with extra attributes.
//
// The package-level functions write through a default Logger that logs
// warnings and errors as text to [os.Stderr]. [Config] reconfigures it.
//
// # Levels
//
// [LevelTrace] sits below [LevelDebug] and is written as "TRACE".
//
// # Pretty output
//
// When [WithPretty] is enabled (the default) text records are written as a
// single aligned line and colorized through lipgloss if the output is a
// terminal. JSON output is never colorized.
package log
