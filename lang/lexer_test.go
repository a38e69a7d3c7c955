package lang

import (
	"errors"
	"slices"
	"testing"
)

func kinds(toks []Token) []TokenKind {
	out := make([]TokenKind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}

	return out
}

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []TokenKind
		texts []string
	}{
		{
			name:  "method call",
			input: "part.add(Cube(4mm))",
			want: []TokenKind{
				TokenIdent, TokenDot, TokenIdent, TokenLParen, TokenIdent,
				TokenLParen, TokenLiteral, TokenRParen, TokenRParen,
			},
			texts: []string{"part", "add", "Cube", "4mm"},
		},
		{
			name:  "declaration",
			input: "part Box:\n",
			want:  []TokenKind{TokenIdent, TokenIdent, TokenColon, TokenLineBreak},
			texts: []string{"part", "Box"},
		},
		{
			name:  "negative literal",
			input: "x = -2.5mm",
			want:  []TokenKind{TokenIdent, TokenEqual, TokenLiteral},
			texts: []string{"x", "-2.5mm"},
		},
		{
			name:  "minus operator",
			input: "a - b",
			want:  []TokenKind{TokenIdent, TokenMinus, TokenIdent},
			texts: []string{"a", "b"},
		},
		{
			name:  "operators",
			input: "1+2*3/4",
			want: []TokenKind{
				TokenLiteral, TokenPlus, TokenLiteral, TokenAsterisk,
				TokenLiteral, TokenSlash, TokenLiteral,
			},
			texts: []string{"1", "2", "3", "4"},
		},
		{
			name:  "comment",
			input: "a = 1 // any text: (even & this)\nb",
			want: []TokenKind{
				TokenIdent, TokenEqual, TokenLiteral, TokenDoubleSlash,
				TokenLineBreak, TokenIdent,
			},
			texts: []string{"a", "1", "b"},
		},
		{
			name:  "underscore identifier",
			input: "move_to",
			want:  []TokenKind{TokenIdent},
			texts: []string{"move_to"},
		},
		{
			name:  "malformed literal",
			input: "1.2.3mm",
			want:  []TokenKind{TokenLiteral},
			texts: []string{"1.2.3mm"},
		},
		{
			name:  "whitespace",
			input: " \t\r\v",
			want:  []TokenKind{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			toks, err := Tokenize(NewSource("", tt.input))
			if err != nil {
				t.Fatalf("Tokenize() error = %v", err)
			}

			if got := kinds(toks); !slices.Equal(got, tt.want) {
				t.Fatalf("kinds = %v, want %v", got, tt.want)
			}

			var texts []string

			for _, tok := range toks {
				if tok.Text != "" {
					texts = append(texts, tok.Text)
				}
			}

			if !slices.Equal(texts, tt.texts) {
				t.Errorf("texts = %q, want %q", texts, tt.texts)
			}
		})
	}
}

func TestTokenizeSpans(t *testing.T) {
	t.Parallel()

	src := NewSource("", "ab.c(12mm) // x\n")

	toks, err := Tokenize(src)
	if err != nil {
		t.Fatal(err)
	}

	want := [][2]int{{0, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 9}, {9, 10}, {11, 15}, {15, 16}}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}

	for i, tok := range toks {
		if got := [2]int{tok.Span.Start, tok.Span.End}; got != want[i] {
			t.Errorf("token %d (%v) span = %v, want %v", i, tok, got, want[i])
		}

		if tok.Span.Source != src {
			t.Errorf("token %d does not reference its source", i)
		}
	}
}

func TestTokenizeUnexpectedSymbol(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		start, end int
	}{
		{"ampersand", "size = &5mm", 7, 8},
		{"brace", "{", 0, 1},
		{"multibyte", "x = é", 4, 6},
		{"underscore start", "_x", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Tokenize(NewSource("", tt.input))

			var e *Error
			if !errors.As(err, &e) || e.Kind != UnexpectedSymbol {
				t.Fatalf("Tokenize() error = %v, want UnexpectedSymbol", err)
			}

			if e.Span.Start != tt.start || e.Span.End != tt.end {
				t.Errorf("span = (%d, %d), want (%d, %d)", e.Span.Start, e.Span.End, tt.start, tt.end)
			}
		})
	}
}

func TestSplitStatements(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "lines",
			input: "a = 1\nb = 2\n",
			want:  []string{"a = 1", "b = 2"},
		},
		{
			name:  "blank lines",
			input: "\n\n a = 1\n\n\n",
			want:  []string{"a = 1"},
		},
		{
			name:  "open parenthesis",
			input: "part.add(\n  Cube(\n    1mm))\nx = 1",
			want:  []string{"part.add(\n  Cube(\n    1mm))", "x = 1"},
		},
		{
			name:  "dot continuation",
			input: "part.add(a)\n\n    .add(b)\nx = 1",
			want:  []string{"part.add(a)\n\n    .add(b)", "x = 1"},
		},
		{
			name:  "comment inside chain",
			input: "part.add(a)\n// next\n.add(b)",
			want:  []string{"part.add(a)\n// next\n.add(b)"},
		},
		{
			name:  "comment line",
			input: "// only\nx = 1",
			want:  []string{"// only", "x = 1"},
		},
		{
			name:  "stray close",
			input: ")\nx = 1",
			want:  []string{")", "x = 1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			toks, err := Tokenize(NewSource("", tt.input))
			if err != nil {
				t.Fatal(err)
			}

			groups := SplitStatements(toks)

			got := make([]string, len(groups))
			for i, g := range groups {
				for _, tok := range g {
					if tok.Kind == TokenLineBreak {
						t.Errorf("group %d contains a line break", i)
					}
				}

				got[i] = spanOf(g).Text()
			}

			if !slices.Equal(got, tt.want) {
				t.Errorf("groups = %q, want %q", got, tt.want)
			}
		})
	}
}

func FuzzTokenize(f *testing.F) {
	for _, seed := range []string{
		"part Box:\n    part.add(Cube(4mm))",
		"x = -1.5mm * (2 + 3) // note",
		"a.b.c(d, e(f))\n.g()",
		"&",
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		toks, err := Tokenize(NewSource("", input))
		if err != nil {
			return
		}

		prev := 0

		for _, tok := range toks {
			if tok.Span.Start < prev || tok.Span.End <= tok.Span.Start || tok.Span.End > len(input) {
				t.Fatalf("token %v has span (%d, %d) after %d in %q",
					tok, tok.Span.Start, tok.Span.End, prev, input)
			}

			prev = tok.Span.End
		}

		for _, g := range SplitStatements(toks) {
			if len(g) == 0 {
				t.Fatal("empty statement group")
			}

			// Parsing may fail but must not panic.
			_, _ = ParseStatement(g)
		}
	})
}
