package geom

// Axis is a directed line through the origin.
type Axis struct {
	Name string
	Dir  Vec3
}

// The coordinate axes.
var (
	AxisX = Axis{"X", Vec3{1, 0, 0}}
	AxisY = Axis{"Y", Vec3{0, 1, 0}}
	AxisZ = Axis{"Z", Vec3{0, 0, 1}}
)

func (a Axis) Equal(b Axis) bool { return a.Dir.Equal(b.Dir) }
func (a Axis) String() string    { return "Axis." + a.Name }

// Plane is an oriented plane with an orthonormal frame. Sketch coordinates
// (x, y) map to Origin + x*U + y*V, and extrusion proceeds along N = U × V.
type Plane struct {
	Name    string
	Origin  Vec3
	U, V, N Vec3
}

// The coordinate planes.
var (
	PlaneXY = makePlane("XY", Vec3{1, 0, 0}, Vec3{0, 1, 0})
	PlaneXZ = makePlane("XZ", Vec3{1, 0, 0}, Vec3{0, 0, 1})
	PlaneYZ = makePlane("YZ", Vec3{0, 1, 0}, Vec3{0, 0, 1})
)

func makePlane(name string, u, v Vec3) Plane {
	return Plane{Name: name, U: u, V: v, N: u.Cross(v)}
}

func (p Plane) Equal(q Plane) bool {
	return p.Origin.Equal(q.Origin) && p.U.Equal(q.U) && p.V.Equal(q.V)
}

func (p Plane) String() string { return "Plane." + p.Name }
