package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/oden/pkg"
)

func TestInitRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		force   bool
		exists  bool
		wantErr error
	}{
		{name: "create"},
		{name: "overwrite with force", force: true, exists: true},
		{name: "exists", exists: true, wantErr: ErrFileExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			confPath := filepath.Join(t.TempDir(), "config")

			if tt.exists {
				if err := os.WriteFile(confPath, []byte("old: true\n"), 0o600); err != nil {
					t.Fatal(err)
				}
			}

			var cli struct {
				Include []string `short:"I"`
				Quiet   bool
				Width   int
				Name    string
			}

			parser, err := kong.New(&cli, kong.Vars{ConfigIdentifier: confPath})
			if err != nil {
				t.Fatal(err)
			}

			ktx, err := parser.Parse([]string{"-I", "a", "-I", "b", "--quiet", "--width=5"})
			if err != nil {
				t.Fatal(err)
			}

			err = (&Init{Force: tt.force}).Run(WithContext(t.Context(), ktx))
			if tt.wantErr != nil {
				if !errors.Is(err, ErrWriteConfig) || !errors.Is(err, tt.wantErr) {
					t.Fatalf("Run() error = %v, want %v", err, tt.wantErr)
				}

				return
			}

			if err != nil {
				t.Fatal(err)
			}

			data, err := os.ReadFile(confPath)
			if err != nil {
				t.Fatal(err)
			}

			if !strings.HasPrefix(string(data), "version: "+pkg.Version()+"\n") {
				t.Errorf("config does not start with version:\n%s", data)
			}

			var got map[string]any
			if err := yaml.Unmarshal(data, &got); err != nil {
				t.Fatal(err)
			}

			if _, ok := got["help"]; ok {
				t.Error("config contains help flag")
			}

			if _, ok := got["name"]; ok {
				t.Error("config contains empty flag")
			}

			if _, ok := got["old"]; ok {
				t.Error("config was not overwritten")
			}

			if got["quiet"] != true || fmt.Sprint(got["width"]) != "5" {
				t.Errorf("config = %v", got)
			}

			include, _ := got["include"].([]any)
			if len(include) != 2 || include[0] != "a" || include[1] != "b" {
				t.Errorf("include = %v", got["include"])
			}
		})
	}
}

func TestFlagValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   any
		want any
	}{
		{nil, nil},
		{true, true},
		{false, false},
		{3, 3},
		{"", nil},
		{"x", "x"},
		{[]string{}, nil},
		{2.5, 2.5},
	}

	for _, tt := range tests {
		if got := flagValue(tt.in); got != tt.want {
			t.Errorf("flagValue(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if got, ok := flagValue([]string{"a"}).([]string); !ok || len(got) != 1 {
		t.Errorf("flagValue([a]) = %v", got)
	}
}
