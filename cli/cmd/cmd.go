package cmd

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/oden/lang"
	"github.com/ardnew/oden/pkg"
)

type (
	contextKey    struct{}
	searchPathKey struct{}
	outputKey     struct{}
)

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// kongVar returns the kong variable named key, or "" when there is none.
func kongVar(ctx context.Context, key string) string {
	ktx := kongContextFrom(ctx)
	if ktx == nil {
		return ""
	}

	return ktx.Model.Vars()[key]
}

// WithSearchPath returns a new context.Context holding the directories in
// which source files are looked up.
func WithSearchPath(ctx context.Context, dirs []string) context.Context {
	return context.WithValue(ctx, searchPathKey{}, dirs)
}

func searchPathFrom(ctx context.Context) []string {
	dirs, _ := ctx.Value(searchPathKey{}).([]string)

	return dirs
}

// WithOutput returns a new context.Context directing command output to w.
// Commands write to os.Stdout when no output is set.
func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey{}, w)
}

func outputFrom(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(outputKey{}).(io.Writer); ok && w != nil {
		return w
	}

	return os.Stdout
}

// readSource reads the named source file, trying the search path when
// name does not exist as given. "-" reads standard input.
func readSource(ctx context.Context, name string) (*lang.Source, error) {
	path, err := pkg.Resolve(name, searchPathFrom(ctx)...)
	if err != nil {
		path = name
	}

	return lang.ReadSource(path)
}
