package cli

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/oden/log"
)

// logFormat applies the log format as soon as kong decodes the flag, so
// that messages emitted while parsing use it.
type logFormat string

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *logFormat) UnmarshalText(text []byte) error {
	*f = logFormat(text)
	log.Config(log.WithFormat(log.ParseFormat(string(*f))))

	return nil
}

// logLevel applies the log level as soon as kong decodes the flag.
type logLevel string

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)
	log.Config(log.WithLevel(log.ParseLevel(string(*l))))

	return nil
}

type logConfig struct {
	Level      logLevel  `default:"${logLevelDefault}"  enum:"${logLevelEnum}"  help:"Set log level."`
	Format     logFormat `default:"${logFormatDefault}" enum:"${logFormatEnum}" help:"Set log format."`
	TimeLayout string    `default:"Kitchen"                                     help:"Set timestamp layout (Go layout or time constant name)."`
	Caller     bool      `default:"false"                                       help:"Include caller information."                            negatable:""`
	Pretty     bool      `default:"true"                                        help:"Enable colorized pretty printing."                      negatable:""`
}

func (*logConfig) vars() kong.Vars {
	return kong.Vars{
		"logLevelDefault":  log.DefaultLevel.String(),
		"logLevelEnum":     strings.Join(slices.Collect(log.Levels()), ","),
		"logFormatDefault": log.DefaultFormat.String(),
		"logFormatEnum":    strings.Join(slices.Collect(log.Formats()), ","),
	}
}

func (*logConfig) group() kong.Group {
	return kong.Group{Key: "log", Title: "Logging options"}
}

// start applies every parsed log flag to the default logger. The returned
// function is deferred by [Run] for symmetry with profiling.
func (f *logConfig) start(ctx context.Context) (stop func()) {
	log.Config(
		log.WithLevel(log.ParseLevel(string(f.Level))),
		log.WithFormat(log.ParseFormat(string(f.Format))),
		log.WithTimeLayout(f.TimeLayout),
		log.WithCaller(f.Caller),
		log.WithPretty(f.Pretty),
	)

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", string(f.Level)),
		slog.String("format", string(f.Format)),
		slog.String("time", f.TimeLayout),
		slog.Bool("caller", f.Caller),
		slog.Bool("pretty", f.Pretty),
	)

	return func() {}
}

// scan applies log flags found in args before kong parses them, so the
// logger is configured regardless of where the flags appear. Boolean flags
// do not pass through UnmarshalText, which is why this pass exists at all.
func (f *logConfig) scan(args []string) {
	boolean := func(dst *bool, apply func(bool) log.Option) func(string, bool, bool) {
		return func(value string, assigned, negated bool) {
			v := true
			if assigned {
				b, err := strconv.ParseBool(value)
				if err != nil {
					return
				}

				v = b
			}

			if negated {
				v = !v
			}

			*dst = v
			log.Config(apply(v))
		}
	}

	valued := map[string]func(string){
		"level":       func(s string) { _ = f.Level.UnmarshalText([]byte(s)) },
		"format":      func(s string) { _ = f.Format.UnmarshalText([]byte(s)) },
		"time-layout": func(s string) { f.TimeLayout = s; log.Config(log.WithTimeLayout(s)) },
	}

	toggles := map[string]func(string, bool, bool){
		"caller": boolean(&f.Caller, log.WithCaller),
		"pretty": boolean(&f.Pretty, log.WithPretty),
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return
		}

		var negated bool

		name, ok := strings.CutPrefix(arg, "--log-")
		if !ok {
			if name, ok = strings.CutPrefix(arg, "--no-log-"); !ok {
				continue
			}

			negated = true
		}

		name, value, assigned := strings.Cut(name, "=")

		if fn, ok := toggles[name]; ok {
			fn(value, assigned, negated)

			continue
		}

		fn, ok := valued[name]
		if !ok || negated {
			continue
		}

		if !assigned {
			if i+1 >= len(args) || strings.HasPrefix(args[i+1], "-") {
				continue
			}

			i++
			value = args[i]
		}

		fn(value)
	}
}
