// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// It carries diagnostics of the calltrace tool itself: attachment files that
// fail to load, trace lines that could not be written, rules skipped at
// evaluation time. Trace lines are never written through this package.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("attachments loaded", slog.Int("types", 2))
//	logger.Error("load failed", slog.Any("error", err))
//
// # Configuration
//
// Configure the logger using functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// The package-level functions ([Debug], [Info], [Warn], [Error], and their
// Context variants) use a default logger writing to [os.Stderr], which is
// reconfigured with [Config].
//
// # Levels
//
// Five levels are supported: [LevelTrace], [LevelDebug], [LevelInfo],
// [LevelWarn], and [LevelError]. Messages below the configured level are
// discarded.
//
// # Output Formats
//
// [FormatText] (default) writes one key=value line per message, colorized by
// [lipgloss] when [WithPretty] is enabled and the writer is a terminal.
// [FormatJSON] writes one JSON object per line.
//
// [lipgloss]: https://github.com/charmbracelet/lipgloss
package log
