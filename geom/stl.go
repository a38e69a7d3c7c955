package geom

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
)

// Format selects the STL encoding.
type Format uint8

const (
	FormatBinary Format = iota
	FormatASCII
)

func (f Format) String() string {
	if f == FormatASCII {
		return "ascii"
	}

	return "binary"
}

// millimeters per meter
const stlScale = 1000

// WriteSTL serializes m to w. name is used as the ASCII solid name and is
// embedded in the binary header.
func WriteSTL(w io.Writer, name string, m Mesh, format Format) error {
	bw := bufio.NewWriter(w)

	var err error
	if format == FormatASCII {
		err = writeASCII(bw, name, m)
	} else {
		err = writeBinary(bw, name, m)
	}

	if err == nil {
		err = bw.Flush()
	}

	if err != nil {
		return fmt.Errorf("%w: %w", ErrExport, err)
	}

	return nil
}

// ExportFile tessellates p and writes it to path, creating or truncating
// the file.
func ExportFile(path string, p Part, format Format) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExport, err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrExport, cerr)
		}
	}()

	name := strings.TrimSuffix(path[strings.LastIndexAny(path, `/\`)+1:], ".stl")

	return WriteSTL(f, name, p.Mesh(), format)
}

func writeBinary(w io.Writer, name string, m Mesh) error {
	var header [80]byte
	copy(header[:], "oden "+name)

	if _, err := w.Write(header[:]); err != nil {
		return err
	}

	if len(m.Triangles) > math.MaxUint32 {
		return fmt.Errorf("too many triangles: %d", len(m.Triangles))
	}

	if err := binary.Write(w, binary.LittleEndian, uint32(len(m.Triangles))); err != nil {
		return err
	}

	var rec [50]byte

	for _, t := range m.Triangles {
		put := func(off int, v Vec3) {
			binary.LittleEndian.PutUint32(rec[off:], math.Float32bits(float32(v.X)))
			binary.LittleEndian.PutUint32(rec[off+4:], math.Float32bits(float32(v.Y)))
			binary.LittleEndian.PutUint32(rec[off+8:], math.Float32bits(float32(v.Z)))
		}

		put(0, t.Normal())

		for i, v := range t {
			put(12+12*i, v.Scale(stlScale))
		}

		if _, err := w.Write(rec[:]); err != nil {
			return err
		}
	}

	return nil
}

func writeASCII(w io.Writer, name string, m Mesh) error {
	vec := func(v Vec3) string {
		return fmt.Sprintf("%e %e %e", v.X, v.Y, v.Z)
	}

	if _, err := fmt.Fprintf(w, "solid %s\n", name); err != nil {
		return err
	}

	for _, t := range m.Triangles {
		_, err := fmt.Fprintf(w,
			"  facet normal %s\n    outer loop\n"+
				"      vertex %s\n      vertex %s\n      vertex %s\n"+
				"    endloop\n  endfacet\n",
			vec(t.Normal()),
			vec(t[0].Scale(stlScale)),
			vec(t[1].Scale(stlScale)),
			vec(t[2].Scale(stlScale)))
		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "endsolid %s\n", name)

	return err
}
