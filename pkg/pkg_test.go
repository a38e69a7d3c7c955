package pkg

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/Masterminds/semver/v3"
)

func TestName(t *testing.T) {
	expected := "oden"
	if Name != expected {
		t.Errorf("Expected Name to be %q, got %q", expected, Name)
	}
}

func TestVersion(t *testing.T) {
	buf, err := os.ReadFile("VERSION")
	if err != nil {
		t.Fatalf("Failed to read VERSION file: %v", err)
	}

	if Version() == "" || Version() != string(buf[:len(Version())]) {
		t.Errorf("Expected Version to match VERSION file, got %q", Version())
	}

	if _, err := semver.NewVersion(Version()); err != nil {
		t.Errorf("Version %q is not a semantic version: %v", Version(), err)
	}
}

func TestAuthor(t *testing.T) {
	if !slices.ContainsFunc(Author, func(a AuthorInfo) bool {
		return a.Name == "ardnew" && a.Email == "andrew@ardnew.com"
	}) {
		t.Errorf("Expected Author to contain ardnew")
	}

	for i, author := range Author {
		if author.Name == "" && author.Email == "" {
			t.Errorf("Author[%d] must define at least Name or Email", i)
		}
	}
}

func TestSearchPath(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()
	t.Setenv(SearchPathEnv, b+string(os.PathListSeparator)+a)

	got := SearchPath(a)
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("SearchPath() = %v, want [%s %s]", got, a, b)
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bracket"+Extension)

	if err := os.WriteFile(src, []byte("part.add(Cube(1mm))\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		input   string
		dirs    []string
		want    string
		wantErr error
	}{
		{name: "direct", input: src, want: src},
		{name: "stdin", input: "-", want: "-"},
		{name: "search dir", input: "bracket.oden", dirs: []string{dir}, want: src},
		{name: "implied extension", input: "bracket", dirs: []string{dir}, want: src},
		{
			name:    "missing",
			input:   "missing.oden",
			dirs:    []string{dir},
			want:    "missing.oden",
			wantErr: fs.ErrNotExist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.input, tt.dirs...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Resolve() error = %v, want %v", err, tt.wantErr)
			}

			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}
