package geom

import (
	"math"
	"strings"
)

type shapeOp uint8

const (
	shapeCircle shapeOp = iota
	shapeRect
	shapePolygon
	shapeUnion
	shapeDifference
	shapeIntersection
	shapeTransform
)

type shape struct {
	op     shapeOp
	radius float64
	size   Vec2
	points []Vec2
	a, b   *shape
	xf     Affine2
}

// Sketch is a closed planar region. The zero Sketch is empty.
type Sketch struct{ root *shape }

// Circle returns a disk of radius r centered at the origin.
func Circle(r float64) Sketch {
	return Sketch{&shape{op: shapeCircle, radius: math.Abs(r)}}
}

// Rectangle returns an x by y rectangle centered at the origin.
func Rectangle(x, y float64) Sketch {
	return Sketch{&shape{op: shapeRect, size: Vec2{math.Abs(x), math.Abs(y)}}}
}

// Polygon returns the region bounded by the closed loop through pts.
func Polygon(pts ...Vec2) Sketch {
	return Sketch{&shape{op: shapePolygon, points: append([]Vec2(nil), pts...)}}
}

// IsEmpty reports whether s holds no shape at all.
func (s Sketch) IsEmpty() bool { return s.root == nil }

// Add returns the union of s and t.
func (s Sketch) Add(t Sketch) Sketch {
	switch {
	case s.root == nil:
		return t
	case t.root == nil:
		return s
	}

	return Sketch{&shape{op: shapeUnion, a: s.root, b: t.root}}
}

// Subtract returns the part of s outside t.
func (s Sketch) Subtract(t Sketch) Sketch {
	if s.root == nil || t.root == nil {
		return s
	}

	return Sketch{&shape{op: shapeDifference, a: s.root, b: t.root}}
}

// Intersect returns the region common to s and t.
func (s Sketch) Intersect(t Sketch) Sketch {
	if s.root == nil || t.root == nil {
		return Sketch{}
	}

	return Sketch{&shape{op: shapeIntersection, a: s.root, b: t.root}}
}

// MoveTo returns s translated so that its origin lies at p.
func (s Sketch) MoveTo(p Vec2) Sketch { return s.transform(Translation2(p)) }

// Rotate returns s turned counterclockwise by angle radians about the origin.
func (s Sketch) Rotate(angle float64) Sketch { return s.transform(Rotation2(angle)) }

func (s Sketch) transform(m Affine2) Sketch {
	if s.root == nil {
		return s
	}

	if s.root.op == shapeTransform {
		return Sketch{&shape{op: shapeTransform, a: s.root.a, xf: s.root.xf.Then(m)}}
	}

	return Sketch{&shape{op: shapeTransform, a: s.root, xf: m}}
}

// Equal reports whether s and t are built from the same tree of shapes.
func (s Sketch) Equal(t Sketch) bool { return s.root.equal(t.root) }

// IsDegenerate reports whether s encloses no area.
func (s Sketch) IsDegenerate() bool { return s.root.degenerate() }

func (s Sketch) String() string {
	var sb strings.Builder

	s.root.write(&sb)

	return sb.String()
}

func (n *shape) equal(m *shape) bool {
	if n == nil || m == nil {
		return n == m
	}

	if n.op != m.op {
		return false
	}

	switch n.op {
	case shapeCircle:
		return near(n.radius, m.radius)
	case shapeRect:
		return n.size.Equal(m.size)
	case shapePolygon:
		if len(n.points) != len(m.points) {
			return false
		}

		for i := range n.points {
			if !n.points[i].Equal(m.points[i]) {
				return false
			}
		}

		return true
	case shapeTransform:
		return n.xf.Equal(m.xf) && n.a.equal(m.a)
	default:
		return n.a.equal(m.a) && n.b.equal(m.b)
	}
}

func (n *shape) degenerate() bool {
	if n == nil {
		return true
	}

	switch n.op {
	case shapeCircle:
		return n.radius <= Epsilon
	case shapeRect:
		return n.size.X*n.size.Y <= Epsilon*Epsilon
	case shapePolygon:
		return math.Abs(loopArea(n.points)) <= Epsilon*Epsilon
	case shapeUnion:
		return n.a.degenerate() && n.b.degenerate()
	case shapeDifference:
		return n.a.degenerate()
	case shapeIntersection:
		return n.a.degenerate() || n.b.degenerate()
	default:
		return n.a.degenerate()
	}
}

func (n *shape) write(sb *strings.Builder) {
	if n == nil {
		sb.WriteString("empty")

		return
	}

	switch n.op {
	case shapeCircle:
		sb.WriteString("circle(" + ftoa(n.radius) + ")")
	case shapeRect:
		sb.WriteString("rectangle(" + ftoa(n.size.X) + " " + ftoa(n.size.Y) + ")")
	case shapePolygon:
		sb.WriteString("polygon(")

		for i, p := range n.points {
			if i > 0 {
				sb.WriteString(" ")
			}

			sb.WriteString(p.String())
		}

		sb.WriteString(")")
	case shapeTransform:
		sb.WriteString("transform(")
		n.a.write(sb)
		sb.WriteString(")")
	default:
		sb.WriteString([...]string{
			shapeUnion:        "union(",
			shapeDifference:   "difference(",
			shapeIntersection: "intersection(",
		}[n.op])
		n.a.write(sb)
		sb.WriteString(" ")
		n.b.write(sb)
		sb.WriteString(")")
	}
}

// outline returns the counterclockwise boundary of a primitive leaf.
func (n *shape) outline(segments int) []Vec2 {
	switch n.op {
	case shapeCircle:
		pts := make([]Vec2, segments)
		for i := range pts {
			s, c := math.Sincos(2 * math.Pi * float64(i) / float64(segments))
			pts[i] = Vec2{n.radius * c, n.radius * s}
		}

		return pts
	case shapeRect:
		hx, hy := n.size.X/2, n.size.Y/2

		return []Vec2{{-hx, -hy}, {hx, -hy}, {hx, hy}, {-hx, hy}}
	default:
		pts := dedupe(n.points)
		if loopArea(pts) < 0 {
			for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
				pts[i], pts[j] = pts[j], pts[i]
			}
		}

		return pts
	}
}

// loopArea returns the signed area of a closed loop, positive when the loop
// runs counterclockwise.
func loopArea(pts []Vec2) float64 {
	var a float64

	for i := range pts {
		a += pts[i].Cross(pts[(i+1)%len(pts)])
	}

	return a / 2
}

// dedupe copies pts dropping consecutive repeats, including a closing point
// equal to the first.
func dedupe(pts []Vec2) []Vec2 {
	out := make([]Vec2, 0, len(pts))

	for _, p := range pts {
		if len(out) == 0 || !out[len(out)-1].Equal(p) {
			out = append(out, p)
		}
	}

	if len(out) > 1 && out[0].Equal(out[len(out)-1]) {
		out = out[:len(out)-1]
	}

	return out
}

// Path is an open polyline under construction.
type Path struct{ points []Vec2 }

// PathAt starts a polyline at p.
func PathAt(p Vec2) Path { return Path{[]Vec2{p}} }

// LineTo returns a copy of p extended by a straight segment to q.
func (p Path) LineTo(q Vec2) Path {
	pts := make([]Vec2, len(p.points), len(p.points)+1)
	copy(pts, p.points)

	return Path{append(pts, q)}
}

// Close returns the sketch bounded by p and the segment joining its ends.
func (p Path) Close() Sketch { return Polygon(p.points...) }

// Points returns a copy of the vertices of p.
func (p Path) Points() []Vec2 { return append([]Vec2(nil), p.points...) }

func (p Path) Equal(q Path) bool {
	if len(p.points) != len(q.points) {
		return false
	}

	for i := range p.points {
		if !p.points[i].Equal(q.points[i]) {
			return false
		}
	}

	return true
}

func (p Path) String() string {
	var sb strings.Builder

	sb.WriteString("path(")

	for i, q := range p.points {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(q.String())
	}

	sb.WriteString(")")

	return sb.String()
}
