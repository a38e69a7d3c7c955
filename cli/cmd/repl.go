package cmd

import (
	"context"

	"github.com/ardnew/oden/cli/cmd/repl"
	"github.com/ardnew/oden/lang"
	"github.com/ardnew/oden/log"
)

// Repl starts an interactive session.
type Repl struct {
	Source string `arg:"" help:"Source file executed before the first prompt." name:"source" optional:""`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	var src *lang.Source

	if r.Source != "" {
		if src, err = readSource(ctx, r.Source); err != nil {
			return lang.WrapError(err)
		}
	}

	return repl.Run(ctx, src, kongVar(ctx, CacheIdentifier), log.Default())
}
