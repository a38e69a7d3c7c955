// Package log wraps [log/slog] with a small set of options and a
// process-wide default logger.
//
// Loggers are values. A zero [Logger] discards everything, so libraries can
// accept one as an option and log unconditionally:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithTimeLayout("RFC3339"),
//		log.WithCaller(true))
//	logger.Info("compiled", slog.String("source", "gear.oden"))
//
// Attributes are always [slog.Attr]. [Logger.With] returns a logger that
// adds them to every record.
//
// # Default Logger
//
// [Config] replaces the options of the default logger, which the
// package-level functions ([Info], [WarnContext], and so on) write to.
// The command line applies its --log-* flags this way before any command
// runs.
//
// # Levels
//
// [LevelTrace] sits below [LevelDebug] and is used for per-statement
// tracing of the interpreter. [Levels] and [ParseLevel] convert to and
// from the lower-case names. The default is [DefaultLevel].
//
// # Output Formats
//
// [FormatText] (default) and [FormatJSON]. Text output is colorized with
// lipgloss when pretty printing is enabled and the output is a terminal.
package log
