package lang

import (
	"errors"
	"fmt"
	"testing"
)

func parseExprString(t *testing.T, input string) (*Expr, error) {
	t.Helper()

	toks, err := Tokenize(NewSource("", input))
	if err != nil {
		t.Fatalf("Tokenize(%q) error = %v", input, err)
	}

	return ParseExpr(toks)
}

func TestParseExpr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"5mm", "5mm"},
		{"part", "part"},
		{"Cube(4mm)", "Cube(4mm)"},
		{"Plane.XY()", "Plane.XY()"},
		{"part.add(Cube(1mm)).move_to(1mm, 2mm, 3mm)", "part.add(Cube(1mm)).move_to(1mm, 2mm, 3mm)"},
		{"Cuboid(a, f(b, c), d)", "Cuboid(a, f(b, c), d)"},
		{"1 + 2", "1.add(2)"},
		{"1 + 2 + 3", "1.add(2).add(3)"},
		{"2 + 3 * 4", "2.add(3.multiply(4))"},
		{"2 * 3 + 4", "2.multiply(3).add(4)"},
		{"8 / 4 / 2", "8.divide(4).divide(2)"},
		{"(1 + 2) * 3", "1.add(2).multiply(3)"},
		{"(1 + 2) * (3 - 4)", "1.add(2).multiply(3.subtract(4))"},
		{"a - b * c / d", "a.subtract(b.multiply(c).divide(d))"},
		{"Cube(1mm * 2)", "Cube(1mm.multiply(2))"},
		{"path.close()", "path.close()"},
		{"Cube(1mm) + Cube(2mm)", "Cube(1mm).add(Cube(2mm))"},
		{"part.add(Cube(1mm)) + 2", "part.add(Cube(1mm)).add(2)"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			e, err := parseExprString(t, tt.input)
			if err != nil {
				t.Fatalf("ParseExpr() error = %v", err)
			}

			if got := e.String(); got != tt.want {
				t.Errorf("ParseExpr() = %s, want %s", got, tt.want)
			}

			if e.Span.Start != 0 || e.Span.End != len(tt.input) {
				t.Errorf("span = (%d, %d), want (0, %d)", e.Span.Start, e.Span.End, len(tt.input))
			}
		})
	}
}

func TestParseExprErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input      string
		start, end int
	}{
		{".add(x)", 0, 7},
		{"part.", 0, 5},
		{"part.(x)", 0, 8},
		{"1 +", 0, 3},
		{"* 2", 0, 3},
		{"(x)", 0, 3},
		{"1 2", 0, 3},
		{"Cube(1 +)", 5, 8},
		{"Cube(1mm) 2", 10, 11},
		{"part.add(Cube(1mm)) x", 20, 21},
		{"f(1)(2)", 4, 7},
		{"part.add", 0, 8},
		{"Cube(1mm", 0, 8},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			_, err := parseExprString(t, tt.input)
			if !errors.Is(err, ErrExpectedExpression) {
				t.Fatalf("ParseExpr() error = %v, want ExpectedExpression", err)
			}

			var e *Error
			errors.As(err, &e)

			if e.Span.Start != tt.start || e.Span.End != tt.end {
				t.Errorf("span = (%d, %d), want (%d, %d)", e.Span.Start, e.Span.End, tt.start, tt.end)
			}
		})
	}
}

func TestParseStatement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		kind  StatementKind
		name  string
		expr  string
	}{
		{"part Box:", StatementDeclaration, "Box", ""},
		{"size = 5mm", StatementAssignment, "size", "5mm"},
		{"size = 5mm // five", StatementAssignment, "size", "5mm"},
		{"part.add(Cube(size))", StatementExpr, "", "part.add(Cube(size))"},
		{"// just a comment", StatementEmpty, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			toks, err := Tokenize(NewSource("", tt.input))
			if err != nil {
				t.Fatal(err)
			}

			s, err := ParseStatement(toks)
			if err != nil {
				t.Fatalf("ParseStatement() error = %v", err)
			}

			if s.Kind != tt.kind || s.Name != tt.name {
				t.Errorf("got %v %q, want %v %q", s.Kind, s.Name, tt.kind, tt.name)
			}

			if s.Expr != nil && s.Expr.String() != tt.expr {
				t.Errorf("expr = %s, want %s", s.Expr, tt.expr)
			}

			if s.Span.End != len(tt.input) {
				t.Errorf("span ends at %d, want %d", s.Span.End, len(tt.input))
			}
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	src := NewSource("box.oden", "part Box:\n    w = 2mm\n\n    part.add(Cube(w))\n        .move_to(w, w, w)\n")

	stmts, err := Parse(t.Context(), src)
	if err != nil {
		t.Fatal(err)
	}

	want := []StatementKind{StatementDeclaration, StatementAssignment, StatementExpr}
	if len(stmts) != len(want) {
		t.Fatalf("got %d statements, want %d", len(stmts), len(want))
	}

	for i, s := range stmts {
		if s.Kind != want[i] {
			t.Errorf("statement %d kind = %v, want %v", i, s.Kind, want[i])
		}
	}

	if got := stmts[2].Expr.Root().Name; got != "part" {
		t.Errorf("root = %q, want part", got)
	}
}

func TestKindStrings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind fmt.Stringer
		want string
	}{
		{KindNumber, "Number"},
		{KindType, "Type"},
		{Kind(42), "Kind(42)"},
		{Failure, "Failure"},
		{ExpectedIdentifyer, "ExpectedIdentifyer"},
		{StlWrite, "StlWrite"},
		{ErrorKind(99), "ErrorKind(99)"},
		{ExprLiteral, "Literal"},
		{ExprMethod, "Method"},
		{ExprKind(7), "ExprKind(7)"},
		{StatementEmpty, "Empty"},
		{StatementExpr, "Expr"},
		{StatementKind(9), "StatementKind(9)"},
		{TokenDoubleSlash, "DoubleSlash"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
