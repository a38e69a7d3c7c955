package lang

import (
	"maps"
	"slices"

	"github.com/ardnew/oden/geom"
)

// Accumulator is the name of the binding whose final value is the result of
// a compilation.
const Accumulator = "part"

// Environment maps names to values. A new Environment binds every builtin
// by name and binds [Accumulator] to an empty part.
type Environment struct {
	vars map[string]Value
}

// NewEnvironment returns an Environment holding only the initial bindings.
func NewEnvironment() *Environment {
	env := &Environment{vars: make(map[string]Value, len(builtins)+1)}

	for _, b := range builtins {
		env.vars[b.Name] = newType(b)
	}

	env.vars[Accumulator] = NewPart(geom.Part{})

	return env
}

// Get returns the value bound to name.
func (env *Environment) Get(name string) (Value, bool) {
	v, ok := env.vars[name]

	return v, ok
}

// Set binds name to v, replacing any previous binding.
func (env *Environment) Set(name string, v Value) {
	env.vars[name] = v
}

// Part returns the current value of the accumulator.
func (env *Environment) Part() geom.Part {
	return env.vars[Accumulator].part
}

// Names returns every bound name in sorted order.
func (env *Environment) Names() []string {
	return slices.Sorted(maps.Keys(env.vars))
}

// Clone returns an independent copy of env.
func (env *Environment) Clone() *Environment {
	return &Environment{vars: maps.Clone(env.vars)}
}
