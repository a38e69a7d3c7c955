package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/oden/lang"
	"github.com/ardnew/oden/log"
)

// Fmt prints a source file in one of several parsed forms.
type Fmt struct {
	Statements Statements `cmd:"" default:"withargs" help:"Print statements as indented trees (default)."`
	Tokens     Tokens     `cmd:""                    help:"Print the lexer tokens."`
	JSON       JSON       `cmd:""                    help:"Print statements as JSON."`
	YAML       YAML       `cmd:""                    help:"Print statements as YAML."`
}

// Tokens prints one token per line.
type Tokens struct {
	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the tokens command.
func (f *Tokens) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	src, err := readSource(ctx, f.Source)
	if err != nil {
		return lang.WrapError(err).With(slog.String("format", "tokens"))
	}

	toks, err := lang.Tokenize(src)
	if err != nil {
		return lang.WrapError(err).With(slog.String("format", "tokens"))
	}

	return lang.FormatTokens(outputFrom(ctx), toks)
}

// Statements prints each statement as an indented tree.
type Statements struct {
	Indent int `default:"2" help:"Indent width for nested expressions" short:"i"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the statements command.
func (f *Statements) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	stmts, err := parseSource(ctx, f.Source)
	if err != nil {
		return lang.WrapError(err).With(slog.String("format", "statements"))
	}

	return lang.FormatStatements(outputFrom(ctx), stmts, f.Indent)
}

// JSON prints the statements as a JSON array.
type JSON struct {
	Indent int `default:"2" help:"Indent width for JSON output" short:"i"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the json command.
func (f *JSON) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	stmts, err := parseSource(ctx, f.Source)
	if err != nil {
		return lang.WrapError(err).With(slog.String("format", "json"))
	}

	return lang.FormatJSON(ctx, outputFrom(ctx), stmts, f.Indent)
}

// YAML prints the statements as a YAML sequence.
type YAML struct {
	Indent int `default:"2" help:"Indent width for YAML output (0 for flow style)" short:"i"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the yaml command.
func (f *YAML) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	stmts, err := parseSource(ctx, f.Source)
	if err != nil {
		return lang.WrapError(err).With(slog.String("format", "yaml"))
	}

	return lang.FormatYAML(ctx, outputFrom(ctx), stmts, f.Indent)
}

func parseSource(ctx context.Context, name string) ([]*lang.Statement, error) {
	src, err := readSource(ctx, name)
	if err != nil {
		return nil, err
	}

	return lang.Parse(ctx, src, lang.WithLogger(log.Default()))
}
