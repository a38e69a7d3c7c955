package geom

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteSTLBinary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		part Part
		tris int
	}{
		{"cube", Cuboid(0.004, 0.004, 0.004), 12},
		{"empty", Part{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := WriteSTL(&buf, "box", tt.part.Mesh(), FormatBinary); err != nil {
				t.Fatal(err)
			}

			b := buf.Bytes()
			if len(b) != 84+50*tt.tris {
				t.Fatalf("len = %d, want %d", len(b), 84+50*tt.tris)
			}

			if !bytes.HasPrefix(b, []byte("oden box")) {
				t.Errorf("header = %q", b[:16])
			}

			if n := binary.LittleEndian.Uint32(b[80:]); int(n) != tt.tris {
				t.Errorf("count = %d, want %d", n, tt.tris)
			}
		})
	}
}

func TestWriteSTLASCII(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteSTL(&buf, "box", Cuboid(0.004, 0.004, 0.004).Mesh(), FormatASCII); err != nil {
		t.Fatal(err)
	}

	s := buf.String()

	if !strings.HasPrefix(s, "solid box\n") || !strings.HasSuffix(s, "endsolid box\n") {
		t.Errorf("unexpected framing:\n%s", s)
	}

	if n := strings.Count(s, "facet normal"); n != 12 {
		t.Errorf("facets = %d, want 12", n)
	}

	// Vertices are written in millimeters.
	if !strings.Contains(s, "vertex 2.000000e+00") && !strings.Contains(s, "vertex -2.000000e+00") {
		t.Errorf("vertices not scaled to millimeters:\n%s", s)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteSTLError(t *testing.T) {
	t.Parallel()

	err := WriteSTL(failWriter{}, "x", Cuboid(1, 1, 1).Mesh(), FormatBinary)
	if !errors.Is(err, ErrExport) {
		t.Errorf("WriteSTL() error = %v, want %v", err, ErrExport)
	}
}

func TestExportFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "part.stl")

	if err := ExportFile(path, Cuboid(1, 1, 1), FormatASCII); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.HasPrefix(b, []byte("solid part\n")) {
		t.Errorf("unexpected file contents: %q", b[:min(len(b), 32)])
	}

	err = ExportFile(filepath.Join(dir, "missing", "part.stl"), Cuboid(1, 1, 1), FormatBinary)
	if !errors.Is(err, ErrExport) {
		t.Errorf("ExportFile() error = %v, want %v", err, ErrExport)
	}
}
