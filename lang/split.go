package lang

// SplitStatements groups toks into statements. A line break at parenthesis
// depth zero ends a statement unless the next token that is not a line break
// is a Dot, which continues a method chain. Comments between the lines of
// a chain do not interrupt it. Line breaks are dropped and
// empty groups are omitted.
func SplitStatements(toks []Token) [][]Token {
	var (
		groups [][]Token
		cur    []Token
		depth  int
	)

	flush := func() {
		if len(cur) > 0 {
			groups = append(groups, cur)
			cur = nil
		}
	}

	for i, tok := range toks {
		switch tok.Kind {
		case TokenLParen:
			depth++
		case TokenRParen:
			if depth > 0 {
				depth--
			}
		case TokenLineBreak:
			if depth == 0 && !continues(toks[i+1:]) {
				flush()
			}

			continue
		}

		cur = append(cur, tok)
	}

	flush()

	return groups
}

// continues reports whether the first token of rest that is neither a line
// break nor a comment is a Dot.
func continues(rest []Token) bool {
	for _, tok := range rest {
		if tok.Kind != TokenLineBreak && tok.Kind != TokenDoubleSlash {
			return tok.Kind == TokenDot
		}
	}

	return false
}
