package lang

import "strings"

//go:generate go tool stringer --type ExprKind --trimprefix Expr --output exprkind_string.go

// ExprKind identifies the shape of an [Expr].
type ExprKind uint8

const (
	ExprLiteral ExprKind = iota
	ExprIdent
	ExprCall
	ExprMethod
)

// Expr is a node of an expression tree.
//
// Name is the literal text, the identifier, the called constructor or the
// method name, depending on Kind. Receiver is only set for methods.
// Arithmetic is parsed into methods named add, subtract, multiply and
// divide.
type Expr struct {
	Receiver *Expr
	Name     string
	Args     []*Expr
	Span     Span
	Kind     ExprKind
}

// Root returns the innermost receiver of a method chain, or e itself.
func (e *Expr) Root() *Expr {
	for e.Kind == ExprMethod && e.Receiver != nil {
		e = e.Receiver
	}

	return e
}

func (e *Expr) String() string {
	var sb strings.Builder

	e.write(&sb)

	return sb.String()
}

func (e *Expr) write(sb *strings.Builder) {
	args := func() {
		sb.WriteByte('(')

		for i, arg := range e.Args {
			if i > 0 {
				sb.WriteString(", ")
			}

			arg.write(sb)
		}

		sb.WriteByte(')')
	}

	switch e.Kind {
	case ExprLiteral, ExprIdent:
		sb.WriteString(e.Name)
	case ExprCall:
		sb.WriteString(e.Name)
		args()
	case ExprMethod:
		e.Receiver.write(sb)
		sb.WriteString("." + e.Name)
		args()
	}
}

var mathMethods = map[TokenKind]string{
	TokenPlus:     "add",
	TokenMinus:    "subtract",
	TokenAsterisk: "multiply",
	TokenSlash:    "divide",
}

// ParseExpr parses a token slice without comments or line breaks into one
// expression covering all of it.
func ParseExpr(toks []Token) (*Expr, error) {
	span := spanOf(toks)

	switch {
	case len(toks) == 0:
		return nil, errSpan(ExpectedExpression, span)

	case lastDot(toks) >= 0 && (callShape(toks[lastDot(toks)+1:]) || !splitsMath(toks)):
		return parseMethod(toks, lastDot(toks))

	case len(toks) == 1 && toks[0].Kind == TokenLiteral:
		return &Expr{Kind: ExprLiteral, Name: toks[0].Text, Span: span}, nil

	case len(toks) == 1 && toks[0].Kind == TokenIdent:
		return &Expr{Kind: ExprIdent, Name: toks[0].Text, Span: span}, nil

	case len(toks) > 1 && toks[0].Kind == TokenIdent && toks[1].Kind == TokenLParen &&
		(callShape(toks) || !splitsMath(toks)):
		args, err := parseArgs(toks[1:], span)
		if err != nil {
			return nil, err
		}

		return &Expr{Kind: ExprCall, Name: toks[0].Text, Args: args, Span: span}, nil

	case hasMath(toks):
		return parseArithmetic(toks)

	default:
		return nil, errSpan(ExpectedExpression, span)
	}
}

// lastDot returns the index of the last Dot outside any parentheses, or -1.
func lastDot(toks []Token) int {
	at, depth := -1, 0

	for i, tok := range toks {
		switch tok.Kind {
		case TokenLParen:
			depth++
		case TokenRParen:
			depth--
		case TokenDot:
			if depth == 0 {
				at = i
			}
		}
	}

	return at
}

func hasMath(toks []Token) bool {
	for _, tok := range toks {
		if tok.Kind.isMath() {
			return true
		}
	}

	return false
}

// callShape reports whether toks is exactly name(...), with the paren after
// the name closing on the last token.
func callShape(toks []Token) bool {
	return len(toks) > 2 && toks[0].Kind == TokenIdent && enclosed(toks[1:])
}

// splitsMath reports whether toks has an arithmetic operator outside any
// parentheses.
func splitsMath(toks []Token) bool {
	depth := 0

	for _, tok := range toks {
		switch {
		case tok.Kind == TokenLParen:
			depth++
		case tok.Kind == TokenRParen:
			depth--
		case depth == 0 && tok.Kind.isMath():
			return true
		}
	}

	return false
}

// parseMethod splits toks at the Dot with index dot into a receiver and a
// call of the form name(args).
func parseMethod(toks []Token, dot int) (*Expr, error) {
	span := spanOf(toks)
	recv, call := toks[:dot], toks[dot+1:]

	if len(recv) == 0 || len(call) == 0 || call[0].Kind != TokenIdent {
		return nil, errSpan(ExpectedExpression, span)
	}

	receiver, err := ParseExpr(recv)
	if err != nil {
		return nil, err
	}

	args, err := parseArgs(call[1:], span)
	if err != nil {
		return nil, err
	}

	return &Expr{
		Kind:     ExprMethod,
		Name:     call[0].Text,
		Receiver: receiver,
		Args:     args,
		Span:     span,
	}, nil
}

// parseArgs parses toks as one parenthesized, comma-separated argument list.
// A missing or unclosed list fails at span; anything after the closing paren
// fails at the trailing tokens.
func parseArgs(toks []Token, span Span) ([]*Expr, error) {
	if len(toks) == 0 || toks[0].Kind != TokenLParen {
		return nil, errSpan(ExpectedExpression, span)
	}

	var (
		args  []*Expr
		cur   []Token
		depth = 1
	)

	push := func() error {
		if len(cur) == 0 {
			return nil
		}

		arg, err := ParseExpr(cur)
		if err != nil {
			return err
		}

		args = append(args, arg)
		cur = nil

		return nil
	}

	for i, tok := range toks[1:] {
		switch {
		case depth == 1 && tok.Kind == TokenComma:
			if err := push(); err != nil {
				return nil, err
			}

		case depth == 1 && tok.Kind == TokenRParen:
			if rest := toks[i+2:]; len(rest) > 0 {
				return nil, errSpan(ExpectedExpression, spanOf(rest))
			}

			if err := push(); err != nil {
				return nil, err
			}

			return args, nil

		default:
			switch tok.Kind {
			case TokenLParen:
				depth++
			case TokenRParen:
				depth--
			}

			cur = append(cur, tok)
		}
	}

	return nil, errSpan(ExpectedExpression, span)
}

// parseArithmetic rewrites an infix expression into a method call. The last
// additive operator at depth zero splits the slice; without one, the last
// multiplicative operator does. This yields left associativity with
// multiplication binding tighter than addition.
func parseArithmetic(toks []Token) (*Expr, error) {
	span := spanOf(toks)

	inner := toks
	if enclosed(inner) {
		inner = inner[1 : len(inner)-1]
	}

	split, additive, depth := -1, false, 0

	for i, tok := range inner {
		switch tok.Kind {
		case TokenLParen:
			depth++
		case TokenRParen:
			depth--
		case TokenPlus, TokenMinus:
			if depth == 0 {
				split, additive = i, true
			}
		case TokenAsterisk, TokenSlash:
			if depth != 0 || additive {
				continue
			}

			split = i
		}
	}

	if split < 0 {
		if len(inner) < len(toks) {
			return ParseExpr(inner)
		}

		return nil, errSpan(ExpectedExpression, span)
	}

	left, right := inner[:split], inner[split+1:]
	if len(left) == 0 || len(right) == 0 {
		return nil, errSpan(ExpectedExpression, span)
	}

	receiver, err := ParseExpr(left)
	if err != nil {
		return nil, err
	}

	arg, err := ParseExpr(right)
	if err != nil {
		return nil, err
	}

	return &Expr{
		Kind:     ExprMethod,
		Name:     mathMethods[inner[split].Kind],
		Receiver: receiver,
		Args:     []*Expr{arg},
		Span:     span,
	}, nil
}

// enclosed reports whether the first token of toks opens a parenthesis that
// the last token closes.
func enclosed(toks []Token) bool {
	if len(toks) < 2 || toks[0].Kind != TokenLParen || toks[len(toks)-1].Kind != TokenRParen {
		return false
	}

	depth := 0

	for i, tok := range toks {
		switch tok.Kind {
		case TokenLParen:
			depth++
		case TokenRParen:
			depth--
			if depth == 0 {
				return i == len(toks)-1
			}
		}
	}

	return false
}
