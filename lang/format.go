package lang

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// node is the serialized form of statements and expressions.
type node struct {
	Kind     string  `json:"kind"               yaml:"kind"`
	Name     string  `json:"name,omitempty"     yaml:"name,omitempty"`
	Receiver *node   `json:"receiver,omitempty" yaml:"receiver,omitempty"`
	Args     []*node `json:"args,omitempty"     yaml:"args,omitempty"`
	Expr     *node   `json:"expr,omitempty"     yaml:"expr,omitempty"`
	Span     [2]int  `json:"span"               yaml:"span,flow"`
}

func exprNode(e *Expr) *node {
	if e == nil {
		return nil
	}

	n := &node{
		Kind:     e.Kind.String(),
		Name:     e.Name,
		Receiver: exprNode(e.Receiver),
		Span:     [2]int{e.Span.Start, e.Span.End},
	}

	for _, a := range e.Args {
		n.Args = append(n.Args, exprNode(a))
	}

	return n
}

func statementNodes(stmts []*Statement) []*node {
	out := make([]*node, 0, len(stmts))

	for _, s := range stmts {
		out = append(out, &node{
			Kind: s.Kind.String(),
			Name: s.Name,
			Expr: exprNode(s.Expr),
			Span: [2]int{s.Span.Start, s.Span.End},
		})
	}

	return out
}

// FormatTokens writes one token per line with its location.
func FormatTokens(w io.Writer, toks []Token) error {
	for _, t := range toks {
		line, col := t.Span.Position()
		if _, err := fmt.Fprintf(w, "%d:%d\t%s\n", line, col, t); err != nil {
			return err
		}
	}

	return nil
}

// FormatStatements writes each statement as an indented tree.
func FormatStatements(w io.Writer, stmts []*Statement, indent int) error {
	pad := func(depth int) string { return strings.Repeat(" ", depth*indent) }

	var writeExpr func(e *Expr, depth int) error

	writeExpr = func(e *Expr, depth int) error {
		if _, err := fmt.Fprintf(w, "%s%s %s\n", pad(depth), e.Kind, e.Name); err != nil {
			return err
		}

		if e.Receiver != nil {
			if err := writeExpr(e.Receiver, depth+1); err != nil {
				return err
			}
		}

		for _, a := range e.Args {
			if err := writeExpr(a, depth+1); err != nil {
				return err
			}
		}

		return nil
	}

	for _, s := range stmts {
		header := s.Kind.String()
		if s.Name != "" {
			header += " " + s.Name
		}

		if _, err := fmt.Fprintf(w, "%s\t%s\n", header, s.Span); err != nil {
			return err
		}

		if s.Expr != nil {
			if err := writeExpr(s.Expr, 1); err != nil {
				return err
			}
		}
	}

	return nil
}

// FormatJSON writes the statements as a JSON array.
func FormatJSON(_ context.Context, w io.Writer, stmts []*Statement, indent int) error {
	var (
		jsonData []byte
		err      error
	)

	if indent > 0 {
		jsonData, err = json.MarshalIndent(statementNodes(stmts), "", strings.Repeat(" ", indent))
	} else {
		jsonData, err = json.Marshal(statementNodes(stmts))
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(jsonData))

	return err
}

// FormatYAML writes the statements as a YAML sequence.
func FormatYAML(ctx context.Context, w io.Writer, stmts []*Statement, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	yamlData, err := yaml.MarshalContext(ctx, statementNodes(stmts), opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(yamlData))

	return err
}
