package lang

import (
	"context"
	"log/slog"
	"time"

	"github.com/ardnew/oden/geom"
	"github.com/ardnew/oden/log"
)

type options struct {
	logger  log.Logger
	env     *Environment
	defines map[string]Value
}

// Option configures parsing and compilation.
type Option func(*options)

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithEnvironment compiles against env instead of a new [Environment].
// The statements mutate env.
func WithEnvironment(env *Environment) Option {
	return func(o *options) {
		o.env = env
	}
}

// WithDefines binds each name to its value before the first statement runs.
func WithDefines(defines map[string]Value) Option {
	return func(o *options) {
		if o.defines == nil {
			o.defines = make(map[string]Value, len(defines))
		}

		for k, v := range defines {
			o.defines[k] = v
		}
	}
}

func makeOptions(opts ...Option) options {
	var o options

	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Compile parses and executes src and returns the final value of the
// accumulator.
func Compile(ctx context.Context, src *Source, opts ...Option) (geom.Part, error) {
	o := makeOptions(opts...)
	start := time.Now()

	stmts, err := Parse(ctx, src, opts...)
	if err != nil {
		return geom.Part{}, err
	}

	env := o.env
	if env == nil {
		env = NewEnvironment()
	}

	for _, name := range sortedKeys(o.defines) {
		v := o.defines[name]
		if name == Accumulator && v.kind != KindPart {
			return geom.Part{}, errArgs([]Kind{KindPart}, []Kind{v.kind}, Span{}).
				With(slog.String("define", name))
		}

		env.Set(name, v)
	}

	if err := env.Run(ctx, stmts, opts...); err != nil {
		return geom.Part{}, err
	}

	part := env.Part()

	o.logger.DebugContext(ctx, "compiled",
		slog.String("source", src.Name()),
		slog.Int("statements", len(stmts)),
		slog.String("part", part.String()),
		slog.Duration("elapsed", time.Since(start)),
	)

	return part, nil
}

// CompileString compiles text that has no file of its own.
func CompileString(ctx context.Context, text string, opts ...Option) (geom.Part, error) {
	return Compile(ctx, NewSource("", text), opts...)
}

// Export writes part to path as STL. Failure is reported as a StlWrite
// error.
func Export(path string, part geom.Part, format geom.Format) error {
	if err := geom.ExportFile(path, part, format); err != nil {
		return errPath(StlWrite, path, err)
	}

	return nil
}
