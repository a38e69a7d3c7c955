package lang

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var punctuation = map[byte]TokenKind{
	'.': TokenDot,
	',': TokenComma,
	'(': TokenLParen,
	')': TokenRParen,
	'=': TokenEqual,
	':': TokenColon,
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenAsterisk,
	'/': TokenSlash,
}

// Tokenize splits the text of src into tokens. It fails with
// UnexpectedSymbol at the first character that starts no token.
//
// A "//" comment produces one DoubleSlash token covering the comment up to,
// but not including, the end of the line.
func Tokenize(src *Source) ([]Token, error) {
	text := src.Text
	toks := make([]Token, 0, len(text)/3)

	emit := func(kind TokenKind, start, end int) {
		tok := Token{Kind: kind, Span: NewSpan(start, end, src)}
		if kind == TokenIdent || kind == TokenLiteral {
			tok.Text = text[start:end]
		}

		toks = append(toks, tok)
	}

	for i := 0; i < len(text); {
		c := text[i]

		switch {
		case c == '\n':
			emit(TokenLineBreak, i, i+1)
			i++

		case c == '/' && i+1 < len(text) && text[i+1] == '/':
			end := strings.IndexByte(text[i:], '\n')
			if end < 0 {
				end = len(text)
			} else {
				end += i
			}

			emit(TokenDoubleSlash, i, end)
			i = end

		case isLetter(c):
			j := i + 1
			for j < len(text) && (isLetter(text[j]) || isDigit(text[j]) || text[j] == '_') {
				j++
			}

			emit(TokenIdent, i, j)
			i = j

		case isDigit(c) || (c == '-' && i+1 < len(text) && isDigit(text[i+1])):
			j := i + 1
			for j < len(text) && (isLetter(text[j]) || isDigit(text[j]) || text[j] == '.') {
				j++
			}

			emit(TokenLiteral, i, j)
			i = j

		default:
			if kind, ok := punctuation[c]; ok {
				emit(kind, i, i+1)
				i++

				continue
			}

			r, size := utf8.DecodeRuneInString(text[i:])
			if !unicode.IsSpace(r) {
				return nil, errSpan(UnexpectedSymbol, NewSpan(i, i+size, src))
			}

			i += size
		}
	}

	return toks, nil
}

func isLetter(c byte) bool { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' }
func isDigit(c byte) bool  { return '0' <= c && c <= '9' }
