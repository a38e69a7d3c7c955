package geom

// splitEpsilon is the thickness of a splitting plane. Vertices closer than
// this to a plane are treated as lying on it.
const splitEpsilon = 1e-5

type polygon struct {
	verts []Vec3
	plane hyperplane
}

type hyperplane struct {
	n Vec3
	w float64
}

func newPolygon(verts []Vec3) (polygon, bool) {
	if len(verts) < 3 {
		return polygon{}, false
	}

	n := verts[1].Sub(verts[0]).Cross(verts[2].Sub(verts[0]))
	// Pick the largest cross product from the first vertex so that nearly
	// collinear leading vertices do not produce a noisy normal.
	for i := 3; i < len(verts); i++ {
		m := verts[i-1].Sub(verts[0]).Cross(verts[i].Sub(verts[0]))
		if m.Length() > n.Length() {
			n = m
		}
	}

	if n.Length() < Epsilon*Epsilon {
		return polygon{}, false
	}

	n = n.Unit()

	return polygon{verts: verts, plane: hyperplane{n: n, w: n.Dot(verts[0])}}, true
}

func (p polygon) flip() polygon {
	v := make([]Vec3, len(p.verts))
	for i, q := range p.verts {
		v[len(v)-1-i] = q
	}

	return polygon{verts: v, plane: hyperplane{n: p.plane.n.Negate(), w: -p.plane.w}}
}

const (
	coplanar = 0
	front    = 1
	back     = 2
	spanning = 3
)

// split sorts p into the four lists relative to h, cutting it in two when it
// straddles the plane.
func (h hyperplane) split(p polygon, cf, cb, f, b *[]polygon) {
	kind := 0
	kinds := make([]int, len(p.verts))

	for i, v := range p.verts {
		t := h.n.Dot(v) - h.w

		k := coplanar
		if t < -splitEpsilon {
			k = back
		} else if t > splitEpsilon {
			k = front
		}

		kind |= k
		kinds[i] = k
	}

	switch kind {
	case coplanar:
		if h.n.Dot(p.plane.n) > 0 {
			*cf = append(*cf, p)
		} else {
			*cb = append(*cb, p)
		}
	case front:
		*f = append(*f, p)
	case back:
		*b = append(*b, p)
	default:
		var fv, bv []Vec3

		for i, vi := range p.verts {
			j := (i + 1) % len(p.verts)
			ti, tj := kinds[i], kinds[j]
			vj := p.verts[j]

			if ti != back {
				fv = append(fv, vi)
			}

			if ti != front {
				bv = append(bv, vi)
			}

			if ti|tj == spanning {
				t := (h.w - h.n.Dot(vi)) / h.n.Dot(vj.Sub(vi))
				v := vi.Lerp(vj, t)
				fv = append(fv, v)
				bv = append(bv, v)
			}
		}

		if len(fv) >= 3 {
			*f = append(*f, polygon{verts: fv, plane: p.plane})
		}

		if len(bv) >= 3 {
			*b = append(*b, polygon{verts: bv, plane: p.plane})
		}
	}
}

type bspNode struct {
	plane       *hyperplane
	front, back *bspNode
	polygons    []polygon
}

func newBSP(polys []polygon) *bspNode {
	n := &bspNode{}
	n.build(polys)

	return n
}

func (n *bspNode) invert() {
	for i := range n.polygons {
		n.polygons[i] = n.polygons[i].flip()
	}

	if n.plane != nil {
		n.plane = &hyperplane{n: n.plane.n.Negate(), w: -n.plane.w}
	}

	if n.front != nil {
		n.front.invert()
	}

	if n.back != nil {
		n.back.invert()
	}

	n.front, n.back = n.back, n.front
}

// clipPolygons removes the parts of polys that lie inside the solid n.
func (n *bspNode) clipPolygons(polys []polygon) []polygon {
	if n.plane == nil {
		return append([]polygon(nil), polys...)
	}

	var f, b []polygon

	for _, p := range polys {
		n.plane.split(p, &f, &b, &f, &b)
	}

	if n.front != nil {
		f = n.front.clipPolygons(f)
	}

	if n.back != nil {
		b = n.back.clipPolygons(b)
	} else {
		b = nil
	}

	return append(f, b...)
}

// clipTo removes the parts of n's polygons that lie inside m.
func (n *bspNode) clipTo(m *bspNode) {
	n.polygons = m.clipPolygons(n.polygons)

	if n.front != nil {
		n.front.clipTo(m)
	}

	if n.back != nil {
		n.back.clipTo(m)
	}
}

func (n *bspNode) allPolygons() []polygon {
	out := append([]polygon(nil), n.polygons...)

	if n.front != nil {
		out = append(out, n.front.allPolygons()...)
	}

	if n.back != nil {
		out = append(out, n.back.allPolygons()...)
	}

	return out
}

func (n *bspNode) build(polys []polygon) {
	if len(polys) == 0 {
		return
	}

	if n.plane == nil {
		h := polys[0].plane
		n.plane = &h
	}

	var f, b []polygon

	for _, p := range polys {
		n.plane.split(p, &n.polygons, &n.polygons, &f, &b)
	}

	if len(f) > 0 {
		if n.front == nil {
			n.front = &bspNode{}
		}

		n.front.build(f)
	}

	if len(b) > 0 {
		if n.back == nil {
			n.back = &bspNode{}
		}

		n.back.build(b)
	}
}

func union(a, b []polygon) []polygon {
	switch {
	case len(a) == 0:
		return b
	case len(b) == 0:
		return a
	}

	na, nb := newBSP(a), newBSP(b)
	na.clipTo(nb)
	nb.clipTo(na)
	nb.invert()
	nb.clipTo(na)
	nb.invert()
	na.build(nb.allPolygons())

	return na.allPolygons()
}

func difference(a, b []polygon) []polygon {
	if len(a) == 0 || len(b) == 0 {
		return a
	}

	na, nb := newBSP(a), newBSP(b)
	na.invert()
	na.clipTo(nb)
	nb.clipTo(na)
	nb.invert()
	nb.clipTo(na)
	nb.invert()
	na.build(nb.allPolygons())
	na.invert()

	return na.allPolygons()
}

func intersection(a, b []polygon) []polygon {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	na, nb := newBSP(a), newBSP(b)
	na.invert()
	nb.clipTo(na)
	nb.invert()
	na.clipTo(nb)
	nb.clipTo(na)
	na.build(nb.allPolygons())
	na.invert()

	return na.allPolygons()
}
