package lang

import (
	"context"
	"log/slog"
)

//go:generate go tool stringer --type StatementKind --trimprefix Statement --output statementkind_string.go

// StatementKind identifies the shape of a [Statement].
type StatementKind uint8

const (
	StatementEmpty StatementKind = iota
	StatementDeclaration
	StatementAssignment
	StatementExpr
)

// Statement is one parsed line of a program. Name is the declared part or
// the assigned variable. Expr is set for assignments and expression
// statements.
type Statement struct {
	Expr *Expr
	Name string
	Span Span
	Kind StatementKind
}

func (s *Statement) String() string {
	switch s.Kind {
	case StatementDeclaration:
		return "part " + s.Name + ":"
	case StatementAssignment:
		return s.Name + " = " + s.Expr.String()
	case StatementExpr:
		return s.Expr.String()
	default:
		return ""
	}
}

// ParseStatement classifies one group of tokens produced by
// [SplitStatements]. The statement's span covers every token of the group,
// comments included.
func ParseStatement(group []Token) (*Statement, error) {
	span := spanOf(group)

	toks := make([]Token, 0, len(group))
	for _, tok := range group {
		if tok.Kind != TokenDoubleSlash {
			toks = append(toks, tok)
		}
	}

	is := func(kinds ...TokenKind) bool {
		if len(toks) < len(kinds) {
			return false
		}

		for i, k := range kinds {
			if toks[i].Kind != k {
				return false
			}
		}

		return true
	}

	switch {
	case len(toks) == 0:
		return &Statement{Kind: StatementEmpty, Span: span}, nil

	case is(TokenIdent, TokenIdent, TokenColon):
		return &Statement{Kind: StatementDeclaration, Name: toks[1].Text, Span: span}, nil

	case is(TokenIdent, TokenEqual):
		if len(toks) == 2 {
			return nil, errSpan(ExpectedExpression, span)
		}

		expr, err := ParseExpr(toks[2:])
		if err != nil {
			return nil, err
		}

		return &Statement{
			Kind: StatementAssignment,
			Name: toks[0].Text,
			Expr: expr,
			Span: span,
		}, nil

	case is(TokenIdent, TokenColon), is(TokenEqual):
		return nil, errSpan(ExpectedIdentifyer, span)

	default:
		expr, err := ParseExpr(toks)
		if err != nil {
			return nil, err
		}

		return &Statement{Kind: StatementExpr, Expr: expr, Span: span}, nil
	}
}

// Parse tokenizes src and parses every statement in it. Parsing stops at
// the first error.
func Parse(ctx context.Context, src *Source, opts ...Option) ([]*Statement, error) {
	o := makeOptions(opts...)

	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}

	groups := SplitStatements(toks)

	o.logger.TraceContext(ctx, "tokenized",
		slog.String("source", src.Name()),
		slog.Int("tokens", len(toks)),
		slog.Int("statements", len(groups)),
	)

	stmts := make([]*Statement, 0, len(groups))

	for _, group := range groups {
		stmt, err := ParseStatement(group)
		if err != nil {
			return nil, err
		}

		stmts = append(stmts, stmt)
	}

	return stmts, nil
}
