package lang

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
)

func parseString(t *testing.T, text string) ([]Token, []*Statement) {
	t.Helper()

	src := NewSource("", text)

	toks, err := Tokenize(src)
	if err != nil {
		t.Fatal(err)
	}

	stmts, err := Parse(t.Context(), src)
	if err != nil {
		t.Fatal(err)
	}

	return toks, stmts
}

const formatInput = "part Box:\n  s = 2mm\n  part.add(Cube(s))"

func TestFormatTokens(t *testing.T) {
	t.Parallel()

	toks, _ := parseString(t, "x = 1\ny")

	var buf bytes.Buffer
	if err := FormatTokens(&buf, toks); err != nil {
		t.Fatal(err)
	}

	want := "1:1\tIdent(x)\n1:3\tEqual\n1:5\tLiteral(1)\n1:6\tLineBreak\n2:1\tIdent(y)\n"
	if got := buf.String(); got != want {
		t.Errorf("FormatTokens() =\n%s\nwant\n%s", got, want)
	}
}

func TestFormatStatements(t *testing.T) {
	t.Parallel()

	_, stmts := parseString(t, formatInput)

	var buf bytes.Buffer
	if err := FormatStatements(&buf, stmts, 2); err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		"Declaration Box\t<input>:1:1",
		"Assignment s\t<input>:2:3",
		"  Literal 2mm",
		"Expr\t<input>:3:3",
		"  Method add",
		"    Ident part",
		"    Call Cube",
		"      Ident s",
		"",
	}, "\n")

	if got := buf.String(); got != want {
		t.Errorf("FormatStatements() =\n%s\nwant\n%s", got, want)
	}
}

func TestFormatJSON(t *testing.T) {
	t.Parallel()

	_, stmts := parseString(t, formatInput)

	var buf bytes.Buffer
	if err := FormatJSON(t.Context(), &buf, stmts, 2); err != nil {
		t.Fatal(err)
	}

	var got []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}

	if len(got) != 3 || got[1]["kind"] != "Assignment" || got[1]["name"] != "s" {
		t.Errorf("FormatJSON() = %v", got)
	}

	expr, _ := got[2]["expr"].(map[string]any)
	if expr["kind"] != "Method" || expr["name"] != "add" {
		t.Errorf("expression = %v", expr)
	}
}

func TestFormatYAML(t *testing.T) {
	t.Parallel()

	_, stmts := parseString(t, formatInput)

	for _, indent := range []int{0, 2} {
		var buf bytes.Buffer
		if err := FormatYAML(t.Context(), &buf, stmts, indent); err != nil {
			t.Fatal(err)
		}

		var got []map[string]any
		if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("invalid YAML: %v\n%s", err, buf.String())
		}

		if len(got) != 3 || got[0]["kind"] != "Declaration" || got[0]["name"] != "Box" {
			t.Errorf("FormatYAML(%d) = %v", indent, got)
		}
	}
}
