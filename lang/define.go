package lang

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/expr-lang/expr"
)

// defineConstants are the variables visible to [EvalDefine].
var defineConstants = map[string]any{"pi": math.Pi}

// defineOptions configures expr for [EvalDefine]. Unit functions wrap a
// plain number into a measurement.
func defineOptions() []expr.Option {
	unit := func(name string, kind Kind, factor float64) expr.Option {
		return expr.Function(name, func(params ...any) (any, error) {
			if len(params) != 1 {
				return nil, fmt.Errorf("%s expects 1 argument, got %d", name, len(params))
			}

			f, ok := toFloat(params[0])
			if !ok {
				return nil, fmt.Errorf("%s expects a number, got %T", name, params[0])
			}

			return Value{kind: kind, scalar: f * factor}, nil
		})
	}

	opts := []expr.Option{expr.Env(defineConstants)}

	for _, name := range Units() {
		if name != "" {
			opts = append(opts, unit(name, units[name].kind, units[name].factor))
		}
	}

	return opts
}

// EvalDefine evaluates src as an expr-lang expression and returns the
// resulting value. A numeric result is a Number. The unit suffixes are
// available as functions, so "mm(4 * 2)" is a Length of 8mm.
func EvalDefine(src string) (Value, error) {
	program, err := expr.Compile(src, defineOptions()...)
	if err != nil {
		return Value{}, ErrInvalidDefine.Wrap(err).With(slog.String("source", src))
	}

	out, err := expr.Run(program, defineConstants)
	if err != nil {
		return Value{}, ErrInvalidDefine.Wrap(err).With(slog.String("source", src))
	}

	if v, ok := out.(Value); ok {
		return v, nil
	}

	if f, ok := toFloat(out); ok {
		return NewNumber(f), nil
	}

	return Value{}, ErrInvalidDefine.
		Wrap(fmt.Errorf("result %v of type %T is not a number", out, out)).
		With(slog.String("source", src))
}

// ParseDefine splits a "name=expression" argument and evaluates the
// expression with [EvalDefine].
func ParseDefine(def string) (string, Value, error) {
	name, src, ok := strings.Cut(def, "=")
	name = strings.TrimSpace(name)

	if !ok || !isIdentifier(name) {
		return "", Value{}, ErrInvalidDefine.With(slog.String("define", def))
	}

	v, err := EvalDefine(src)
	if err != nil {
		return "", Value{}, err
	}

	return name, v, nil
}

func isIdentifier(s string) bool {
	if s == "" || !isLetter(s[0]) {
		return false
	}

	for i := 1; i < len(s); i++ {
		if !isLetter(s[i]) && !isDigit(s[i]) && s[i] != '_' {
			return false
		}
	}

	return true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
