package lang

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ardnew/oden/geom"
)

// signature is one overload of a method. Overloads of the same name are
// tried in registration order.
type signature struct {
	call   func(recv Value, args []Value) (Value, error)
	params []Kind
	result Kind
}

type methodTable map[Kind]map[string][]signature

// methods holds the instance methods of every kind.
var methods = buildMethods()

// define registers the overloads of name on kind. Defining a name twice
// for the same kind is a programming error.
func (t methodTable) define(kind Kind, name string, sigs ...signature) {
	if t[kind] == nil {
		t[kind] = make(map[string][]signature)
	}

	if _, dup := t[kind][name]; dup {
		panic(fmt.Sprintf("lang: method %s.%s defined twice", kind, name))
	}

	t[kind][name] = sigs
}

func scalar(result Kind, param Kind, op func(a, b float64) float64) signature {
	return signature{
		params: []Kind{param},
		result: result,
		call: func(recv Value, args []Value) (Value, error) {
			return Value{kind: result, scalar: op(recv.scalar, args[0].scalar)}, nil
		},
	}
}

func sig(result Kind, params []Kind, call func(recv Value, args []Value) (Value, error)) signature {
	return signature{params: params, result: result, call: call}
}

func buildMethods() methodTable {
	t := make(methodTable)

	add := func(a, b float64) float64 { return a + b }
	sub := func(a, b float64) float64 { return a - b }
	mul := func(a, b float64) float64 { return a * b }
	div := func(a, b float64) float64 { return a / b }

	t.define(KindNumber, "add", scalar(KindNumber, KindNumber, add))
	t.define(KindNumber, "subtract", scalar(KindNumber, KindNumber, sub))
	t.define(KindNumber, "multiply",
		scalar(KindNumber, KindNumber, mul),
		scalar(KindLength, KindLength, mul),
		scalar(KindAngle, KindAngle, mul))
	t.define(KindNumber, "divide", scalar(KindNumber, KindNumber, div))

	for _, k := range []Kind{KindLength, KindAngle} {
		t.define(k, "add", scalar(k, k, add))
		t.define(k, "subtract", scalar(k, k, sub))
		t.define(k, "multiply", scalar(k, KindNumber, mul))
		t.define(k, "divide", scalar(k, KindNumber, div))
	}

	part := []Kind{KindPart}
	t.define(KindPart, "add", sig(KindPart, part, func(r Value, a []Value) (Value, error) {
		return NewPart(r.part.Add(a[0].part)), nil
	}))
	t.define(KindPart, "subtract", sig(KindPart, part, func(r Value, a []Value) (Value, error) {
		return NewPart(r.part.Subtract(a[0].part)), nil
	}))
	t.define(KindPart, "intersect", sig(KindPart, part, func(r Value, a []Value) (Value, error) {
		return NewPart(r.part.Intersect(a[0].part)), nil
	}))
	t.define(KindPart, "move_to", sig(KindPart,
		[]Kind{KindLength, KindLength, KindLength},
		func(r Value, a []Value) (Value, error) {
			return NewPart(r.part.MoveTo(geom.Vec3{X: a[0].scalar, Y: a[1].scalar, Z: a[2].scalar})), nil
		}))
	t.define(KindPart, "rotate_around", sig(KindPart,
		[]Kind{KindAxis, KindAngle},
		func(r Value, a []Value) (Value, error) {
			return NewPart(r.part.RotateAround(a[0].axis, a[1].scalar)), nil
		}))
	t.define(KindPart, "circular_pattern", sig(KindPart,
		[]Kind{KindAxis, KindNumber},
		func(r Value, a []Value) (Value, error) {
			return NewPart(r.part.CircularPattern(a[0].axis, a[1].scalar)), nil
		}))

	sketch := []Kind{KindSketch}
	t.define(KindSketch, "add", sig(KindSketch, sketch, func(r Value, a []Value) (Value, error) {
		return NewSketch(r.sketch.Add(a[0].sketch)), nil
	}))
	t.define(KindSketch, "subtract", sig(KindSketch, sketch, func(r Value, a []Value) (Value, error) {
		return NewSketch(r.sketch.Subtract(a[0].sketch)), nil
	}))
	t.define(KindSketch, "intersect", sig(KindSketch, sketch, func(r Value, a []Value) (Value, error) {
		return NewSketch(r.sketch.Intersect(a[0].sketch)), nil
	}))
	t.define(KindSketch, "move_to", sig(KindSketch,
		[]Kind{KindLength, KindLength},
		func(r Value, a []Value) (Value, error) {
			return NewSketch(r.sketch.MoveTo(geom.Vec2{X: a[0].scalar, Y: a[1].scalar})), nil
		}))
	t.define(KindSketch, "rotate", sig(KindSketch,
		[]Kind{KindAngle},
		func(r Value, a []Value) (Value, error) {
			return NewSketch(r.sketch.Rotate(a[0].scalar)), nil
		}))
	t.define(KindSketch, "extrude", sig(KindPart,
		[]Kind{KindPlane, KindLength},
		func(r Value, a []Value) (Value, error) {
			p, err := geom.Extrude(r.sketch, a[0].plane, a[1].scalar)
			if err != nil {
				return Value{}, err
			}

			return NewPart(p), nil
		}))

	t.define(KindPath, "line_to", sig(KindPath,
		[]Kind{KindLength, KindLength},
		func(r Value, a []Value) (Value, error) {
			return NewPath(r.path.LineTo(geom.Vec2{X: a[0].scalar, Y: a[1].scalar})), nil
		}))
	t.define(KindPath, "close", sig(KindSketch, nil, func(r Value, _ []Value) (Value, error) {
		return NewSketch(r.path.Close()), nil
	}))

	return t
}

// callMethod dispatches name on the kind of recv. Type values resolve
// attributes instead of instance methods.
func callMethod(recv Value, name string, args []Value, span Span) (Value, error) {
	if recv.kind == KindType {
		return recv.builtin.attribute(name, args, span)
	}

	sigs, ok := methods[recv.kind][name]
	if !ok {
		return Value{}, errName(UnknownMethod, name, span)
	}

	for _, s := range sigs {
		if !matches(s.params, args) {
			continue
		}

		v, err := s.call(recv, args)
		if errors.Is(err, geom.ErrDegenerate) {
			return Value{}, errSpan(EmptyPart, span).Wrap(err)
		}

		return v, err
	}

	return Value{}, errArgs(sigs[0].params, kindsOf(args), span)
}

// MethodInfo describes one overload of an instance method.
type MethodInfo struct {
	Name   string
	Params []Kind
	Result Kind
}

func (m MethodInfo) String() string {
	return m.Name + paramList(m.Params) + " " + m.Result.String()
}

// Methods returns every overload callable on values of kind k, ordered by
// name. For a Type value, use [Builtin.Attributes] instead.
func Methods(k Kind) []MethodInfo {
	names := sortedKeys(methods[k])
	out := make([]MethodInfo, 0, len(names))

	for _, name := range names {
		for _, s := range methods[k][name] {
			out = append(out, MethodInfo{Name: name, Params: s.params, Result: s.result})
		}
	}

	return out
}

func paramList(kinds []Kind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}

	return "(" + strings.Join(names, ", ") + ")"
}

func sortedKeys[T any](m map[string]T) []string {
	if len(m) == 0 {
		return nil
	}

	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
