package geom

import (
	"math"
	"strings"
)

type solidOp uint8

const (
	solidCuboid solidOp = iota
	solidCylinder
	solidSphere
	solidPrism
	solidUnion
	solidDifference
	solidIntersection
	solidTransform
)

type solid struct {
	op        solidOp
	size      Vec3 // cuboid edges, or cylinder radius and height in X and Z
	radius    float64
	sketch    *shape
	plane     Plane
	thickness float64
	a, b      *solid
	xf        Affine
}

// Part is a solid body. The zero Part is empty and is the identity of
// [Part.Add].
type Part struct{ root *solid }

// Cuboid returns an x by y by z box centered at the origin.
func Cuboid(x, y, z float64) Part {
	x, y, z = math.Abs(x), math.Abs(y), math.Abs(z)
	if x <= Epsilon || y <= Epsilon || z <= Epsilon {
		return Part{}
	}

	return Part{&solid{op: solidCuboid, size: Vec3{x, y, z}}}
}

// Cylinder returns a cylinder of radius r and height h whose axis is Z and
// whose center is the origin.
func Cylinder(r, h float64) Part {
	r, h = math.Abs(r), math.Abs(h)
	if r <= Epsilon || h <= Epsilon {
		return Part{}
	}

	return Part{&solid{op: solidCylinder, size: Vec3{X: r, Z: h}}}
}

// Sphere returns a ball of radius r centered at the origin.
func Sphere(r float64) Part {
	r = math.Abs(r)
	if r <= Epsilon {
		return Part{}
	}

	return Part{&solid{op: solidSphere, radius: r}}
}

// Extrude sweeps s along the normal of p by thickness. A negative thickness
// sweeps the other way. It returns [ErrDegenerate] when the result would
// have no volume.
func Extrude(s Sketch, p Plane, thickness float64) (Part, error) {
	if math.Abs(thickness) < 1e-12 || s.IsDegenerate() {
		return Part{}, ErrDegenerate
	}

	return Part{&solid{
		op:        solidPrism,
		sketch:    s.root,
		plane:     p,
		thickness: thickness,
	}}, nil
}

// IsEmpty reports whether p holds no solid.
func (p Part) IsEmpty() bool { return p.root == nil }

// Add returns the union of p and q.
func (p Part) Add(q Part) Part {
	switch {
	case p.root == nil:
		return q
	case q.root == nil:
		return p
	}

	return Part{&solid{op: solidUnion, a: p.root, b: q.root}}
}

// Subtract returns p with q cut away.
func (p Part) Subtract(q Part) Part {
	if p.root == nil || q.root == nil {
		return p
	}

	return Part{&solid{op: solidDifference, a: p.root, b: q.root}}
}

// Intersect returns the volume common to p and q.
func (p Part) Intersect(q Part) Part {
	if p.root == nil || q.root == nil {
		return Part{}
	}

	return Part{&solid{op: solidIntersection, a: p.root, b: q.root}}
}

// MoveTo returns p translated by d.
func (p Part) MoveTo(d Vec3) Part { return p.transform(Translation(d)) }

// RotateAround returns p rotated by angle radians about axis through the
// origin, following the right-hand rule.
func (p Part) RotateAround(axis Axis, angle float64) Part {
	return p.transform(Rotation(axis.Dir, angle))
}

// CircularPattern returns the union of n copies of p evenly rotated about
// axis. The first copy is p itself. n is truncated toward zero, and a count
// below one yields an empty part.
func (p Part) CircularPattern(axis Axis, n float64) Part {
	count := int(n)
	if count < 1 || p.root == nil {
		return Part{}
	}

	out := p
	for i := 1; i < count; i++ {
		out = out.Add(p.RotateAround(axis, 2*math.Pi*float64(i)/float64(count)))
	}

	return out
}

func (p Part) transform(m Affine) Part {
	if p.root == nil {
		return p
	}

	if p.root.op == solidTransform {
		return Part{&solid{op: solidTransform, a: p.root.a, xf: p.root.xf.Then(m)}}
	}

	return Part{&solid{op: solidTransform, a: p.root, xf: m}}
}

// Equal reports whether p and q are built from the same tree of solids.
func (p Part) Equal(q Part) bool { return p.root.equal(q.root) }

func (p Part) String() string {
	var sb strings.Builder

	p.root.write(&sb)

	return sb.String()
}

func (n *solid) equal(m *solid) bool {
	if n == nil || m == nil {
		return n == m
	}

	if n.op != m.op {
		return false
	}

	switch n.op {
	case solidCuboid, solidCylinder:
		return n.size.Equal(m.size)
	case solidSphere:
		return near(n.radius, m.radius)
	case solidPrism:
		return near(n.thickness, m.thickness) &&
			n.plane.Equal(m.plane) && n.sketch.equal(m.sketch)
	case solidTransform:
		return n.xf.Equal(m.xf) && n.a.equal(m.a)
	default:
		return n.a.equal(m.a) && n.b.equal(m.b)
	}
}

func (n *solid) write(sb *strings.Builder) {
	if n == nil {
		sb.WriteString("empty")

		return
	}

	switch n.op {
	case solidCuboid:
		sb.WriteString("cuboid(" + ftoa(n.size.X) + " " + ftoa(n.size.Y) + " " + ftoa(n.size.Z) + ")")
	case solidCylinder:
		sb.WriteString("cylinder(" + ftoa(n.size.X) + " " + ftoa(n.size.Z) + ")")
	case solidSphere:
		sb.WriteString("sphere(" + ftoa(n.radius) + ")")
	case solidPrism:
		sb.WriteString("extrude(")
		n.sketch.write(sb)
		sb.WriteString(" " + n.plane.String() + " " + ftoa(n.thickness) + ")")
	case solidTransform:
		sb.WriteString("transform(")
		n.a.write(sb)
		sb.WriteString(")")
	default:
		sb.WriteString([...]string{
			solidUnion:        "union(",
			solidDifference:   "difference(",
			solidIntersection: "intersection(",
		}[n.op])
		n.a.write(sb)
		sb.WriteString(" ")
		n.b.write(sb)
		sb.WriteString(")")
	}
}
