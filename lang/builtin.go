package lang

import (
	"slices"
	"strings"

	"github.com/ardnew/oden/geom"
)

// Builtin is a constructor bound in every new [Environment]. A Builtin
// without a constructor, such as Axis, only offers attributes that are
// reached with method syntax (Axis.X()).
type Builtin struct {
	construct func(args []Value) Value
	attrs     map[string]Value
	Name      string
	Params    []Kind
	Result    Kind
}

// Callable reports whether b can be invoked as a function.
func (b *Builtin) Callable() bool { return b.construct != nil }

// Attributes returns the names of the values b offers through method syntax.
func (b *Builtin) Attributes() []string { return sortedKeys(b.attrs) }

// Signature returns a one-line description of how b is used.
func (b *Builtin) Signature() string {
	if !b.Callable() {
		names := b.Attributes()
		for i, n := range names {
			names[i] = b.Name + "." + n + "()"
		}

		return strings.Join(names, " | ") + " " + b.Result.String()
	}

	return b.Name + paramList(b.Params) + " " + b.Result.String()
}

// call constructs a value from args that have already been evaluated.
func (b *Builtin) call(args []Value, span Span) (Value, error) {
	if !b.Callable() {
		return Value{}, errName(NotCallable, b.Name, span)
	}

	if !matches(b.Params, args) {
		return Value{}, errArgs(b.Params, kindsOf(args), span)
	}

	return b.construct(args), nil
}

// attribute returns the value of b named name, reached as b.name(args).
func (b *Builtin) attribute(name string, args []Value, span Span) (Value, error) {
	if b.attrs == nil {
		return Value{}, errSpan(FunctionIsNotMethod, span)
	}

	v, ok := b.attrs[name]
	if !ok {
		return Value{}, errName(UnknownMethod, name, span)
	}

	if len(args) > 0 {
		return Value{}, errArgs(nil, kindsOf(args), span)
	}

	return v, nil
}

var builtins = []*Builtin{
	{
		Name:   "Axis",
		Result: KindAxis,
		attrs: map[string]Value{
			"X": NewAxis(geom.AxisX),
			"Y": NewAxis(geom.AxisY),
			"Z": NewAxis(geom.AxisZ),
		},
	},
	{
		Name:   "Plane",
		Result: KindPlane,
		attrs: map[string]Value{
			"XY": NewPlane(geom.PlaneXY),
			"XZ": NewPlane(geom.PlaneXZ),
			"YZ": NewPlane(geom.PlaneYZ),
		},
	},
	{
		Name:   "Circle",
		Params: []Kind{KindLength},
		Result: KindSketch,
		construct: func(a []Value) Value {
			return NewSketch(geom.Circle(a[0].scalar))
		},
	},
	{
		Name:   "Rectangle",
		Params: []Kind{KindLength, KindLength},
		Result: KindSketch,
		construct: func(a []Value) Value {
			return NewSketch(geom.Rectangle(a[0].scalar, a[1].scalar))
		},
	},
	{
		Name:   "Path",
		Params: []Kind{KindLength, KindLength},
		Result: KindPath,
		construct: func(a []Value) Value {
			return NewPath(geom.PathAt(geom.Vec2{X: a[0].scalar, Y: a[1].scalar}))
		},
	},
	{
		Name:   "Cube",
		Params: []Kind{KindLength},
		Result: KindPart,
		construct: func(a []Value) Value {
			return NewPart(geom.Cuboid(a[0].scalar, a[0].scalar, a[0].scalar))
		},
	},
	{
		Name:   "Cuboid",
		Params: []Kind{KindLength, KindLength, KindLength},
		Result: KindPart,
		construct: func(a []Value) Value {
			return NewPart(geom.Cuboid(a[0].scalar, a[1].scalar, a[2].scalar))
		},
	},
	{
		Name:   "Cylinder",
		Params: []Kind{KindLength, KindLength},
		Result: KindPart,
		construct: func(a []Value) Value {
			return NewPart(geom.Cylinder(a[0].scalar, a[1].scalar))
		},
	},
	{
		Name:   "Sphere",
		Params: []Kind{KindLength},
		Result: KindPart,
		construct: func(a []Value) Value {
			return NewPart(geom.Sphere(a[0].scalar))
		},
	},
}

// Builtins returns the constructors bound in every new [Environment],
// ordered by name.
func Builtins() []*Builtin {
	out := slices.Clone(builtins)
	slices.SortFunc(out, func(a, b *Builtin) int { return strings.Compare(a.Name, b.Name) })

	return out
}

func matches(params []Kind, args []Value) bool {
	if len(params) != len(args) {
		return false
	}

	for i, p := range params {
		if args[i].kind != p {
			return false
		}
	}

	return true
}

func kindsOf(args []Value) []Kind {
	kinds := make([]Kind, len(args))
	for i, a := range args {
		kinds[i] = a.kind
	}

	return kinds
}
