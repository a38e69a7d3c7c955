package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/ardnew/oden/lang"
	"github.com/ardnew/oden/log"
	"github.com/ardnew/oden/pkg"
)

const defaultEditor = "vi"

// editCommand implements [tea.ExecCommand]. It opens the session source in
// the user's editor and executes the result in a new environment. When
// that fails, the diagnostic is shown and the user may edit again;
// declining ends the session.
type editCommand struct {
	source  string
	ctxFunc func() context.Context
	logger  log.Logger
	env     *lang.Environment
	text    string
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

// SetStdin sets the stdin reader for the command.
func (c *editCommand) SetStdin(r io.Reader) { c.stdin = r }

// SetStdout sets the stdout writer for the command.
func (c *editCommand) SetStdout(w io.Writer) { c.stdout = w }

// SetStderr sets the stderr writer for the command.
func (c *editCommand) SetStderr(w io.Writer) { c.stderr = w }

// Run executes the edit loop. An emptied file cancels the edit and leaves
// c.env nil.
func (c *editCommand) Run() error {
	ctx := c.ctxFunc()

	f, err := os.CreateTemp("", pkg.Name+"-repl-*"+pkg.Extension)
	if err != nil {
		return err
	}

	path := f.Name()
	f.Close()

	defer os.Remove(path)

	content := c.source

	for {
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			return err
		}

		if err := runEditor(ctx, c.stdin, c.stdout, c.stderr, path); err != nil {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		content = string(data)
		if strings.TrimSpace(content) == "" {
			return nil
		}

		env, err := load(ctx, lang.NewSource("", content), c.logger)

		c.logger.TraceContext(ctx, "editor execute attempt",
			slog.Int("content_length", len(content)),
			slog.Bool("success", err == nil),
		)

		if err == nil {
			c.env, c.text = env, content

			return nil
		}

		fmt.Fprint(c.stderr, "\n"+lang.WrapError(err).Render())
		fmt.Fprint(c.stdout, "Re-edit? [Y/n] ")

		scanner := bufio.NewScanner(c.stdin)
		if !scanner.Scan() {
			return ErrEditDeclined
		}

		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "n", "no":
			return ErrEditDeclined
		}
	}
}

// load executes src in a new environment.
func load(ctx context.Context, src *lang.Source, logger log.Logger) (*lang.Environment, error) {
	stmts, err := lang.Parse(ctx, src, lang.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	env := lang.NewEnvironment()

	if err := env.Run(ctx, stmts, lang.WithLogger(logger)); err != nil {
		return nil, err
	}

	return env, nil
}

// runEditor opens path in $EDITOR and waits for it to exit.
func runEditor(
	ctx context.Context,
	stdin io.Reader,
	stdout io.Writer,
	stderr io.Writer,
	path string,
) error {
	args := strings.Fields(os.Getenv("EDITOR"))
	if len(args) == 0 {
		args = []string{defaultEditor}
	}

	cmd := exec.CommandContext(ctx, args[0], append(args[1:], path)...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	return cmd.Run()
}
