package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/oden/lang"
)

const fmtInput = "part Box:\n  s = 2mm\n  part.add(Cube(s))\n"

func TestFmtRun(t *testing.T) {
	t.Parallel()

	src := writeSource(t, t.TempDir(), "box.oden", fmtInput)

	tests := []struct {
		name  string
		run   func(*testing.T, *bytes.Buffer) error
		check func(*testing.T, string)
	}{
		{
			name: "statements",
			run: func(t *testing.T, out *bytes.Buffer) error {
				return (&Statements{Indent: 2, Source: src}).Run(WithOutput(t.Context(), out))
			},
			check: func(t *testing.T, got string) {
				if !strings.HasPrefix(got, "Declaration Box\t"+src+":1:1\n") {
					t.Errorf("output = %q", got)
				}

				if !strings.Contains(got, "\n    Call Cube\n") {
					t.Errorf("output missing nested call: %q", got)
				}
			},
		},
		{
			name: "tokens",
			run: func(t *testing.T, out *bytes.Buffer) error {
				return (&Tokens{Source: src}).Run(WithOutput(t.Context(), out))
			},
			check: func(t *testing.T, got string) {
				if !strings.HasPrefix(got, "1:1\tIdent(part)\n1:6\tIdent(Box)\n1:9\tColon\n") {
					t.Errorf("output = %q", got)
				}
			},
		},
		{
			name: "json",
			run: func(t *testing.T, out *bytes.Buffer) error {
				return (&JSON{Indent: 2, Source: src}).Run(WithOutput(t.Context(), out))
			},
			check: func(t *testing.T, got string) {
				var v []map[string]any
				if err := json.Unmarshal([]byte(got), &v); err != nil {
					t.Fatal(err)
				}

				if len(v) != 3 || v[0]["kind"] != "Declaration" {
					t.Errorf("output = %v", v)
				}
			},
		},
		{
			name: "yaml",
			run: func(t *testing.T, out *bytes.Buffer) error {
				return (&YAML{Indent: 2, Source: src}).Run(WithOutput(t.Context(), out))
			},
			check: func(t *testing.T, got string) {
				var v []map[string]any
				if err := yaml.Unmarshal([]byte(got), &v); err != nil {
					t.Fatal(err)
				}

				if len(v) != 3 || v[1]["kind"] != "Assignment" || v[1]["name"] != "s" {
					t.Errorf("output = %v", v)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			if err := tt.run(t, &out); err != nil {
				t.Fatal(err)
			}

			tt.check(t, out.String())
		})
	}
}

func TestFmtRunFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	bad := writeSource(t, dir, "bad.oden", "x = 1 +\n")
	missing := filepath.Join(dir, "missing.oden")

	tests := []struct {
		name    string
		run     func(*testing.T) error
		wantErr error
	}{
		{
			name: "missing source",
			run: func(t *testing.T) error {
				return (&Statements{Source: missing}).Run(WithOutput(t.Context(), &bytes.Buffer{}))
			},
			wantErr: lang.ErrFileNotFound,
		},
		{
			name: "missing tokens source",
			run: func(t *testing.T) error {
				return (&Tokens{Source: missing}).Run(WithOutput(t.Context(), &bytes.Buffer{}))
			},
			wantErr: lang.ErrFileNotFound,
		},
		{
			name: "syntax error",
			run: func(t *testing.T) error {
				return (&JSON{Source: bad}).Run(WithOutput(t.Context(), &bytes.Buffer{}))
			},
			wantErr: lang.ErrExpectedExpression,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := tt.run(t); !errors.Is(err, tt.wantErr) {
				t.Errorf("Run() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
