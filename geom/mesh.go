package geom

import "math"

// DefaultSegments is the number of edges used to approximate a full circle.
const DefaultSegments = 64

// Triangle is a facet of a [Mesh], wound counterclockwise when seen from
// outside the solid.
type Triangle [3]Vec3

// Normal returns the outward unit normal of t.
func (t Triangle) Normal() Vec3 {
	return t[1].Sub(t[0]).Cross(t[2].Sub(t[0])).Unit()
}

// Mesh is a closed triangulated surface.
type Mesh struct {
	Triangles []Triangle
}

// Mesh tessellates p with [DefaultSegments].
func (p Part) Mesh() Mesh { return p.Tessellate(DefaultSegments) }

// Tessellate converts p into triangles, approximating curved surfaces with
// the given number of segments per full turn.
func (p Part) Tessellate(segments int) Mesh {
	if segments < 3 {
		segments = 3
	}

	var m Mesh

	for _, poly := range p.root.polygons(Identity(), segments) {
		for i := 2; i < len(poly.verts); i++ {
			m.Triangles = append(m.Triangles,
				Triangle{poly.verts[0], poly.verts[i-1], poly.verts[i]})
		}
	}

	return m
}

// Volume returns the signed volume enclosed by m.
func (m Mesh) Volume() float64 {
	var v float64

	for _, t := range m.Triangles {
		v += t[0].Dot(t[1].Cross(t[2]))
	}

	return v / 6
}

// Bounds returns the corners of the axis-aligned box enclosing m. Both are
// zero for an empty mesh.
func (m Mesh) Bounds() (lo, hi Vec3) {
	if len(m.Triangles) == 0 {
		return lo, hi
	}

	lo = Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi = Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}

	for _, t := range m.Triangles {
		for _, v := range t {
			lo = Vec3{min(lo.X, v.X), min(lo.Y, v.Y), min(lo.Z, v.Z)}
			hi = Vec3{max(hi.X, v.X), max(hi.Y, v.Y), max(hi.Z, v.Z)}
		}
	}

	return lo, hi
}

func (n *solid) polygons(xf Affine, segments int) []polygon {
	if n == nil {
		return nil
	}

	switch n.op {
	case solidCuboid:
		return prism(Rectangle(n.size.X, n.size.Y).root.outline(segments),
			PlaneXY, -n.size.Z/2, n.size.Z/2, Identity2(), xf)
	case solidCylinder:
		return prism(Circle(n.size.X).root.outline(segments),
			PlaneXY, -n.size.Z/2, n.size.Z/2, Identity2(), xf)
	case solidSphere:
		return sphere(n.radius, segments, xf)
	case solidPrism:
		lo, hi := 0.0, n.thickness
		if hi < lo {
			lo, hi = hi, lo
		}

		return n.sketch.polygons(Identity2(), n.plane, lo, hi, xf, segments)
	case solidTransform:
		return n.a.polygons(n.xf.Then(xf), segments)
	case solidUnion:
		return union(n.a.polygons(xf, segments), n.b.polygons(xf, segments))
	case solidDifference:
		return difference(n.a.polygons(xf, segments), n.b.polygons(xf, segments))
	default:
		return intersection(n.a.polygons(xf, segments), n.b.polygons(xf, segments))
	}
}

// polygons extrudes every leaf of a sketch between heights lo and hi and
// combines the resulting prisms with the sketch's own booleans.
func (n *shape) polygons(
	xf2 Affine2, p Plane, lo, hi float64, xf Affine, segments int,
) []polygon {
	if n == nil {
		return nil
	}

	switch n.op {
	case shapeTransform:
		return n.a.polygons(n.xf.Then(xf2), p, lo, hi, xf, segments)
	case shapeUnion:
		return union(
			n.a.polygons(xf2, p, lo, hi, xf, segments),
			n.b.polygons(xf2, p, lo, hi, xf, segments))
	case shapeDifference:
		return difference(
			n.a.polygons(xf2, p, lo, hi, xf, segments),
			n.b.polygons(xf2, p, lo, hi, xf, segments))
	case shapeIntersection:
		return intersection(
			n.a.polygons(xf2, p, lo, hi, xf, segments),
			n.b.polygons(xf2, p, lo, hi, xf, segments))
	default:
		return prism(n.outline(segments), p, lo, hi, xf2, xf)
	}
}

// prism builds the closed surface swept by a counterclockwise loop between
// heights lo and hi along the normal of p.
func prism(loop []Vec2, p Plane, lo, hi float64, xf2 Affine2, xf Affine) []polygon {
	pts := make([]Vec2, len(loop))
	for i, q := range loop {
		pts[i] = xf2.Apply(q)
	}

	if len(pts) < 3 {
		return nil
	}

	at := func(q Vec2, t float64) Vec3 { return xf.Apply(q.lift(p, t)) }

	var out []polygon

	add := func(verts ...Vec3) {
		if poly, ok := newPolygon(verts); ok {
			out = append(out, poly)
		}
	}

	for _, tri := range triangulate(pts) {
		top := make([]Vec3, len(tri))
		bot := make([]Vec3, len(tri))

		for i, q := range tri {
			top[i] = at(q, hi)
			bot[len(tri)-1-i] = at(q, lo)
		}

		add(top...)
		add(bot...)
	}

	for i, a := range pts {
		b := pts[(i+1)%len(pts)]
		add(at(a, lo), at(b, lo), at(b, hi), at(a, hi))
	}

	return out
}

// triangulate returns pts unchanged when it is convex and otherwise splits
// it into triangles by ear clipping. pts must be counterclockwise.
func triangulate(pts []Vec2) [][]Vec2 {
	if convex(pts) {
		return [][]Vec2{pts}
	}

	idx := make([]int, len(pts))
	for i := range idx {
		idx[i] = i
	}

	var out [][]Vec2

	for len(idx) > 3 {
		clipped := false

		for i := range idx {
			a := pts[idx[(i+len(idx)-1)%len(idx)]]
			b := pts[idx[i]]
			c := pts[idx[(i+1)%len(idx)]]

			if b.Sub(a).Cross(c.Sub(b)) <= 0 {
				continue
			}

			ear := true

			for _, j := range idx {
				q := pts[j]
				if q == a || q == b || q == c {
					continue
				}

				if inTriangle(q, a, b, c) {
					ear = false

					break
				}
			}

			if !ear {
				continue
			}

			out = append(out, []Vec2{a, b, c})
			idx = append(idx[:i], idx[i+1:]...)
			clipped = true

			break
		}

		// Self-intersecting loops have no ear left; fall back to a fan.
		if !clipped {
			for i := 2; i < len(idx); i++ {
				out = append(out, []Vec2{pts[idx[0]], pts[idx[i-1]], pts[idx[i]]})
			}

			return out
		}
	}

	return append(out, []Vec2{pts[idx[0]], pts[idx[1]], pts[idx[2]]})
}

func convex(pts []Vec2) bool {
	for i := range pts {
		a, b, c := pts[i], pts[(i+1)%len(pts)], pts[(i+2)%len(pts)]
		if b.Sub(a).Cross(c.Sub(b)) < 0 {
			return false
		}
	}

	return true
}

func inTriangle(q, a, b, c Vec2) bool {
	return b.Sub(a).Cross(q.Sub(a)) >= 0 &&
		c.Sub(b).Cross(q.Sub(b)) >= 0 &&
		a.Sub(c).Cross(q.Sub(c)) >= 0
}

// sphere approximates a ball with latitude and longitude bands, using only
// triangles so every facet is planar.
func sphere(r float64, segments int, xf Affine) []polygon {
	stacks := max(segments/2, 2)

	at := func(i, j int) Vec3 {
		theta := math.Pi * float64(i) / float64(stacks)
		phi := 2 * math.Pi * float64(j) / float64(segments)
		st, ct := math.Sincos(theta)
		sp, cp := math.Sincos(phi)

		return xf.Apply(Vec3{r * st * cp, r * st * sp, r * ct})
	}

	var out []polygon

	add := func(verts ...Vec3) {
		if poly, ok := newPolygon(verts); ok {
			out = append(out, poly)
		}
	}

	for i := range stacks {
		for j := range segments {
			a, b := at(i, j), at(i, j+1)
			c, d := at(i+1, j+1), at(i+1, j)
			add(a, d, c)
			add(a, c, b)
		}
	}

	return out
}
