package geom

import (
	"math"
	"strconv"
)

// Vec2 is a point or direction in a sketch plane.
type Vec2 struct{ X, Y float64 }

func (a Vec2) Add(b Vec2) Vec2      { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Sub(b Vec2) Vec2      { return Vec2{a.X - b.X, a.Y - b.Y} }
func (a Vec2) Scale(s float64) Vec2 { return Vec2{a.X * s, a.Y * s} }
func (a Vec2) Cross(b Vec2) float64 { return a.X*b.Y - a.Y*b.X }
func (a Vec2) Equal(b Vec2) bool    { return near(a.X, b.X) && near(a.Y, b.Y) }
func (a Vec2) String() string       { return "(" + ftoa(a.X) + ", " + ftoa(a.Y) + ")" }
func (a Vec2) lift(p Plane, t float64) Vec3 {
	return p.Origin.Add(p.U.Scale(a.X)).Add(p.V.Scale(a.Y)).Add(p.N.Scale(t))
}

// Vec3 is a point or direction in model space.
type Vec3 struct{ X, Y, Z float64 }

func (a Vec3) Add(b Vec3) Vec3      { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vec3) Sub(b Vec3) Vec3      { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (a Vec3) Scale(s float64) Vec3 { return Vec3{a.X * s, a.Y * s, a.Z * s} }
func (a Vec3) Negate() Vec3         { return Vec3{-a.X, -a.Y, -a.Z} }
func (a Vec3) Dot(b Vec3) float64   { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }
func (a Vec3) Length() float64      { return math.Sqrt(a.Dot(a)) }
func (a Vec3) Equal(b Vec3) bool    { return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z) }

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Unit returns a scaled to length one. The zero vector is returned as is.
func (a Vec3) Unit() Vec3 {
	l := a.Length()
	if l == 0 {
		return a
	}

	return a.Scale(1 / l)
}

// Lerp interpolates linearly between a and b.
func (a Vec3) Lerp(b Vec3, t float64) Vec3 { return a.Add(b.Sub(a).Scale(t)) }

func (a Vec3) String() string {
	return "(" + ftoa(a.X) + ", " + ftoa(a.Y) + ", " + ftoa(a.Z) + ")"
}

func ftoa(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
