package lang

import (
	"math"
	"regexp"
	"strconv"

	"github.com/ardnew/oden/geom"
)

//go:generate go tool stringer --type Kind --trimprefix Kind --output kind_string.go

// Kind identifies the variant of a [Value].
type Kind uint8

const (
	KindNumber Kind = iota
	KindLength
	KindAngle
	KindAxis
	KindPlane
	KindPath
	KindSketch
	KindPart
	KindType
)

// Value is an immutable runtime value. Scalars hold their magnitude in base
// units: meters for lengths and radians for angles.
type Value struct {
	part    geom.Part
	sketch  geom.Sketch
	path    geom.Path
	builtin *Builtin
	plane   geom.Plane
	axis    geom.Axis
	scalar  float64
	kind    Kind
}

func NewNumber(f float64) Value     { return Value{kind: KindNumber, scalar: f} }
func NewLength(m float64) Value     { return Value{kind: KindLength, scalar: m} }
func NewAngle(rad float64) Value    { return Value{kind: KindAngle, scalar: rad} }
func NewAxis(a geom.Axis) Value     { return Value{kind: KindAxis, axis: a} }
func NewPlane(p geom.Plane) Value   { return Value{kind: KindPlane, plane: p} }
func NewPath(p geom.Path) Value     { return Value{kind: KindPath, path: p} }
func NewSketch(s geom.Sketch) Value { return Value{kind: KindSketch, sketch: s} }
func NewPart(p geom.Part) Value     { return Value{kind: KindPart, part: p} }
func newType(b *Builtin) Value      { return Value{kind: KindType, builtin: b} }

func (v Value) Kind() Kind          { return v.kind }
func (v Value) Float() float64      { return v.scalar }
func (v Value) Axis() geom.Axis     { return v.axis }
func (v Value) Plane() geom.Plane   { return v.plane }
func (v Value) Path() geom.Path     { return v.path }
func (v Value) Sketch() geom.Sketch { return v.sketch }
func (v Value) Part() geom.Part     { return v.part }
func (v Value) Builtin() *Builtin   { return v.builtin }

// Equal reports whether v and w are of the same kind and hold equal
// contents. Magnitudes are compared with the tolerance of [geom.Epsilon].
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}

	switch v.kind {
	case KindNumber, KindLength, KindAngle:
		return math.Abs(v.scalar-w.scalar) <= geom.Epsilon
	case KindAxis:
		return v.axis.Equal(w.axis)
	case KindPlane:
		return v.plane.Equal(w.plane)
	case KindPath:
		return v.path.Equal(w.path)
	case KindSketch:
		return v.sketch.Equal(w.sketch)
	case KindPart:
		return v.part.Equal(w.part)
	case KindType:
		return v.builtin == w.builtin
	default:
		return false
	}
}

// String returns the display form used by the REPL and in logs.
func (v Value) String() string {
	f := func(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }

	switch v.kind {
	case KindNumber:
		return f(v.scalar)
	case KindLength:
		return f(v.scalar) + "m"
	case KindAngle:
		return f(v.scalar) + "rad"
	case KindAxis:
		return v.axis.String()
	case KindPlane:
		return v.plane.String()
	case KindPath:
		return "Path(" + v.path.String() + ")"
	case KindSketch:
		return "Sketch(" + v.sketch.String() + ")"
	case KindPart:
		return "Part(" + v.part.String() + ")"
	case KindType:
		return "Type(" + v.builtin.Name + ")"
	default:
		return v.kind.String()
	}
}

var literalPattern = regexp.MustCompile(`^(-?[0-9]*\.?[0-9]+)([a-zA-Z]+)?$`)

// units maps a literal suffix to the kind it produces and the factor that
// converts it to base units.
var units = map[string]struct {
	kind   Kind
	factor float64
}{
	"":    {KindNumber, 1},
	"m":   {KindLength, 1},
	"cm":  {KindLength, 0.01},
	"mm":  {KindLength, 0.001},
	"deg": {KindAngle, math.Pi / 180},
	"rad": {KindAngle, 1},
}

// Units returns the recognized literal suffixes.
func Units() []string { return sortedKeys(units) }

// ParseLiteral converts the text of a numeric literal into a value. An
// unrecognized suffix fails with UnknownUnit naming the suffix. Text that is
// not a number at all fails with UnknownUnit naming the whole text.
func ParseLiteral(text string, span Span) (Value, error) {
	m := literalPattern.FindStringSubmatch(text)
	if m == nil {
		return Value{}, errName(UnknownUnit, text, span)
	}

	unit, ok := units[m[2]]
	if !ok {
		return Value{}, errName(UnknownUnit, m[2], span)
	}

	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Value{}, errName(UnknownUnit, text, span)
	}

	return Value{kind: unit.kind, scalar: f * unit.factor}, nil
}
