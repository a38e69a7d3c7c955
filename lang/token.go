package lang

//go:generate go tool stringer --type TokenKind --trimprefix Token --output tokenkind_string.go

// TokenKind identifies the lexical class of a [Token].
type TokenKind uint8

const (
	TokenIdent TokenKind = iota
	TokenLiteral
	TokenDot
	TokenComma
	TokenLParen
	TokenRParen
	TokenEqual
	TokenColon
	TokenPlus
	TokenMinus
	TokenAsterisk
	TokenSlash
	TokenDoubleSlash
	TokenLineBreak
)

// Token is a lexeme with its location. Text holds the name of an identifier
// or the text of a literal and is empty otherwise.
type Token struct {
	Text string
	Span Span
	Kind TokenKind
}

func (t Token) String() string {
	switch t.Kind {
	case TokenIdent, TokenLiteral:
		return t.Kind.String() + "(" + t.Text + ")"
	default:
		return t.Kind.String()
	}
}

// isMath reports whether k is a binary arithmetic operator.
func (k TokenKind) isMath() bool {
	switch k {
	case TokenPlus, TokenMinus, TokenAsterisk, TokenSlash:
		return true
	default:
		return false
	}
}
