package geom

import (
	"math"
	"testing"
)

func TestMeshVolume(t *testing.T) {
	t.Parallel()

	a := Cuboid(2, 2, 2)
	b := Cuboid(2, 2, 2).MoveTo(Vec3{1, 0.5, 0.25})
	hole := Cuboid(4, 4, 1).Subtract(Cylinder(1, 2))

	ring := Rectangle(1, 1).MoveTo(Vec2{-2, 0}).Add(Rectangle(1, 1).MoveTo(Vec2{2, 0}))
	slab, err := Extrude(ring, PlaneXZ, 3)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		part Part
		want float64
		tol  float64
	}{
		{"box", a, 8, 1e-9},
		{"moved box", b, 8, 1e-9},
		{"rotated box", a.RotateAround(AxisX, 0.3), 8, 1e-9},
		{"union", a.Add(b), 13.375, 1e-6},
		{"difference", a.Subtract(b), 5.375, 1e-6},
		{"intersection", a.Intersect(b), 2.625, 1e-6},
		{"disjoint sketch union", slab, 6, 1e-9},
		{"sphere", Sphere(1), 4 * math.Pi / 3, 0.02 * 4 * math.Pi / 3},
		{"cylinder", Cylinder(1, 2), 2 * math.Pi, 0.01 * 2 * math.Pi},
		{"drilled plate", hole, 16 - math.Pi, 0.01 * 16},
		{"empty", Part{}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.part.Mesh().Volume(); math.Abs(got-tt.want) > tt.tol {
				t.Errorf("Volume() = %g, want %g ± %g", got, tt.want, tt.tol)
			}
		})
	}
}

func TestMeshBounds(t *testing.T) {
	t.Parallel()

	p := Cuboid(2, 4, 6).MoveTo(Vec3{1, 0, 0})
	lo, hi := p.Mesh().Bounds()

	if want := (Vec3{0, -2, -3}); !lo.Equal(want) {
		t.Errorf("lo = %v, want %v", lo, want)
	}

	if want := (Vec3{2, 2, 3}); !hi.Equal(want) {
		t.Errorf("hi = %v, want %v", hi, want)
	}

	lo, hi = Mesh{}.Bounds()
	if lo != (Vec3{}) || hi != (Vec3{}) {
		t.Errorf("empty bounds = %v %v", lo, hi)
	}
}

func TestExtrudePlane(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		plane     Plane
		thickness float64
		lo, hi    Vec3
	}{
		{"XY", PlaneXY, 3, Vec3{-0.5, -1, 0}, Vec3{0.5, 1, 3}},
		{"XY negative", PlaneXY, -3, Vec3{-0.5, -1, -3}, Vec3{0.5, 1, 0}},
		{"XZ", PlaneXZ, 3, Vec3{-0.5, -3, -1}, Vec3{0.5, 0, 1}},
		{"YZ", PlaneYZ, 3, Vec3{0, -0.5, -1}, Vec3{3, 0.5, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := Extrude(Rectangle(1, 2), tt.plane, tt.thickness)
			if err != nil {
				t.Fatal(err)
			}

			m := p.Mesh()
			if v := m.Volume(); math.Abs(v-6) > 1e-9 {
				t.Errorf("Volume() = %g, want 6", v)
			}

			lo, hi := m.Bounds()
			if !lo.Equal(tt.lo) || !hi.Equal(tt.hi) {
				t.Errorf("Bounds() = %v %v, want %v %v", lo, hi, tt.lo, tt.hi)
			}
		})
	}
}

func TestTriangulateConcave(t *testing.T) {
	t.Parallel()

	// An L shape with area 3.
	l := PathAt(Vec2{0, 0}).
		LineTo(Vec2{2, 0}).
		LineTo(Vec2{2, 1}).
		LineTo(Vec2{1, 1}).
		LineTo(Vec2{1, 2}).
		LineTo(Vec2{0, 2}).
		Close()

	p, err := Extrude(l, PlaneXY, 1)
	if err != nil {
		t.Fatal(err)
	}

	if v := p.Mesh().Volume(); math.Abs(v-3) > 1e-9 {
		t.Errorf("Volume() = %g, want 3", v)
	}

	// Clockwise input is reoriented.
	cw := PathAt(Vec2{0, 0}).LineTo(Vec2{0, 1}).LineTo(Vec2{1, 0}).Close()

	q, err := Extrude(cw, PlaneXY, 2)
	if err != nil {
		t.Fatal(err)
	}

	if v := q.Mesh().Volume(); math.Abs(v-1) > 1e-9 {
		t.Errorf("clockwise Volume() = %g, want 1", v)
	}
}
