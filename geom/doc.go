// Package geom is the solid modeling kernel behind oden.
//
// Values are immutable. [Part] and [Sketch] are constructive trees whose
// leaves are primitives centered at the origin and whose inner nodes are
// boolean combinations or rigid transforms. Trees compare structurally with
// [Part.Equal] and [Sketch.Equal], which is what the language uses to decide
// whether two models are the same.
//
// A tree is only turned into triangles when it is exported: [Part.Mesh]
// tessellates every leaf and evaluates the booleans with BSP-tree CSG, and
// [WriteSTL] serializes the result.
//
// All lengths are meters and all angles are radians. STL output is scaled
// to millimeters, the unit slicers assume.
package geom

import "errors"

var (
	// ErrDegenerate is returned when an operation would produce a solid
	// without volume, such as extruding a sketch without area.
	ErrDegenerate = errors.New("degenerate geometry")
	// ErrExport is returned when a part cannot be written.
	ErrExport = errors.New("export failed")
)

// Epsilon is the tolerance used when comparing magnitudes.
const Epsilon = 1e-9

func near(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}

	return d <= Epsilon
}
