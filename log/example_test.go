package log_test

import (
	"log/slog"
	"os"

	"github.com/ardnew/oden/log"
)

func Example_textFormat() {
	logger := log.Make(os.Stdout,
		log.WithFormat(log.FormatText),
		log.WithTimeLayout("none"),
		log.WithPretty(false))

	logger.Warn("unit suffix ignored", slog.String("unit", "in"))
	// Output: level=WARN msg="unit suffix ignored" unit=in
}

func Example_levels() {
	logger := log.Make(os.Stdout,
		log.WithLevel(log.LevelWarn),
		log.WithTimeLayout("none"),
		log.WithPretty(false))

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Error("compile failed", slog.Int("statements", 3))
	// Output: level=ERROR msg="compile failed" statements=3
}

func Example_withAttributes() {
	logger := log.Make(os.Stdout,
		log.WithFormat(log.FormatJSON),
		log.WithTimeLayout("none"),
		log.WithPretty(false)).
		With(slog.String("source", "bracket.oden"))

	logger.Warn("statement discarded")
	// Output: {"level":"WARN","msg":"statement discarded","source":"bracket.oden"}
}
