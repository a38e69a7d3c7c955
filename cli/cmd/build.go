package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/ardnew/oden/geom"
	"github.com/ardnew/oden/lang"
	"github.com/ardnew/oden/log"
	"github.com/ardnew/oden/pkg"
)

// stdinSource names standard input as a source.
const stdinSource = "-"

// Build compiles a source file and exports the final part as STL.
type Build struct {
	Source string   `help:"Source file or '-' for stdin. Missing files are searched in --include and ODEN_PATH." placeholder:"SOURCE" required:"" short:"s"`
	Target string   `help:"Output STL file. Defaults to SOURCE with extension .stl."                                 placeholder:"TARGET"               short:"t"`
	Define []string `help:"Bind NAME to the value of EXPR before the first statement."                              placeholder:"NAME=EXPR" sep:"none" short:"D"`
	ASCII  bool     `help:"Write ASCII instead of binary STL."                                                      name:"ascii"`
	Quiet  bool     `help:"Do not print diagnostics."                                                               short:"q"`
}

// Run executes the build command.
func (b *Build) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	src, err := readSource(ctx, b.Source)
	if err == nil {
		err = b.export(ctx, src)
	}

	if err != nil {
		b.report(ctx, err)

		return ErrBuild.
			With(slog.String("source", b.Source)).
			Wrap(err)
	}

	return nil
}

// export compiles src and writes the result to the target file.
func (b *Build) export(ctx context.Context, src *lang.Source) error {
	defines, err := parseDefines(b.Define)
	if err != nil {
		return err
	}

	part, err := lang.Compile(ctx, src,
		lang.WithLogger(log.Default()),
		lang.WithDefines(defines),
	)
	if err != nil {
		return err
	}

	target := b.target()

	if err := lang.Export(target, part, b.format()); err != nil {
		return err
	}

	log.InfoContext(ctx, "exported",
		slog.String("source", src.Name()),
		slog.String("target", target),
		slog.String("format", b.format().String()),
	)

	return nil
}

// report prints the diagnostic for err unless quiet.
func (b *Build) report(ctx context.Context, err error) {
	if b.Quiet {
		return
	}

	fmt.Fprint(outputFrom(ctx), lang.WrapError(err).Render())
}

func (b *Build) format() geom.Format {
	if b.ASCII {
		return geom.FormatASCII
	}

	return geom.FormatBinary
}

// target returns the output path, derived from the source name when no
// target was given.
func (b *Build) target() string {
	if b.Target != "" {
		return b.Target
	}

	if b.Source == "" || b.Source == stdinSource {
		return pkg.Name + ".stl"
	}

	return strings.TrimSuffix(b.Source, filepath.Ext(b.Source)) + ".stl"
}

// parseDefines evaluates each NAME=EXPR definition.
func parseDefines(defs []string) (map[string]lang.Value, error) {
	if len(defs) == 0 {
		return nil, nil
	}

	out := make(map[string]lang.Value, len(defs))

	for _, def := range defs {
		name, v, err := lang.ParseDefine(def)
		if err != nil {
			return nil, ErrDefine.
				With(slog.String("define", def)).
				Wrap(err)
		}

		out[name] = v
	}

	return out, nil
}
