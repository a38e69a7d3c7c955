package geom

import "math"

// Affine is a rigid transform of model space: a 3x3 rotation followed by a
// translation, stored row-major as [R | t].
type Affine [3][4]float64

// Identity returns the transform that leaves every point in place.
func Identity() Affine {
	return Affine{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
	}
}

// Translation returns the transform moving every point by d.
func Translation(d Vec3) Affine {
	m := Identity()
	m[0][3], m[1][3], m[2][3] = d.X, d.Y, d.Z

	return m
}

// Rotation returns the transform turning space by angle radians about the
// line through the origin with direction axis, following the right-hand rule.
func Rotation(axis Vec3, angle float64) Affine {
	k := axis.Unit()
	s, c := math.Sincos(angle)
	t := 1 - c

	return Affine{
		{t*k.X*k.X + c, t*k.X*k.Y - s*k.Z, t*k.X*k.Z + s*k.Y, 0},
		{t*k.X*k.Y + s*k.Z, t*k.Y*k.Y + c, t*k.Y*k.Z - s*k.X, 0},
		{t*k.X*k.Z - s*k.Y, t*k.Y*k.Z + s*k.X, t*k.Z*k.Z + c, 0},
	}
}

// Then returns the transform applying m first and n second.
func (m Affine) Then(n Affine) Affine {
	var r Affine

	for i := range 3 {
		for j := range 4 {
			var sum float64
			for k := range 3 {
				sum += n[i][k] * m[k][j]
			}

			if j == 3 {
				sum += n[i][3]
			}

			r[i][j] = sum
		}
	}

	return r
}

// Apply transforms the point p.
func (m Affine) Apply(p Vec3) Vec3 {
	return Vec3{
		m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z + m[0][3],
		m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z + m[1][3],
		m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z + m[2][3],
	}
}

// Equal reports whether every coefficient of m and n agrees within
// [Epsilon].
func (m Affine) Equal(n Affine) bool {
	for i := range 3 {
		for j := range 4 {
			if !near(m[i][j], n[i][j]) {
				return false
			}
		}
	}

	return true
}

// IsIdentity reports whether m leaves every point in place.
func (m Affine) IsIdentity() bool { return m.Equal(Identity()) }

// Affine2 is a rigid transform of a sketch plane, stored row-major as
// [R | t].
type Affine2 [2][3]float64

// Identity2 returns the planar transform that leaves every point in place.
func Identity2() Affine2 {
	return Affine2{
		{1, 0, 0},
		{0, 1, 0},
	}
}

// Translation2 returns the planar transform moving every point by d.
func Translation2(d Vec2) Affine2 {
	m := Identity2()
	m[0][2], m[1][2] = d.X, d.Y

	return m
}

// Rotation2 returns the planar transform turning counterclockwise by angle
// radians about the origin.
func Rotation2(angle float64) Affine2 {
	s, c := math.Sincos(angle)

	return Affine2{
		{c, -s, 0},
		{s, c, 0},
	}
}

// Then returns the transform applying m first and n second.
func (m Affine2) Then(n Affine2) Affine2 {
	var r Affine2

	for i := range 2 {
		for j := range 3 {
			var sum float64
			for k := range 2 {
				sum += n[i][k] * m[k][j]
			}

			if j == 2 {
				sum += n[i][2]
			}

			r[i][j] = sum
		}
	}

	return r
}

// Apply transforms the point p.
func (m Affine2) Apply(p Vec2) Vec2 {
	return Vec2{
		m[0][0]*p.X + m[0][1]*p.Y + m[0][2],
		m[1][0]*p.X + m[1][1]*p.Y + m[1][2],
	}
}

// Equal reports whether every coefficient of m and n agrees within
// [Epsilon].
func (m Affine2) Equal(n Affine2) bool {
	for i := range 2 {
		for j := range 3 {
			if !near(m[i][j], n[i][j]) {
				return false
			}
		}
	}

	return true
}
