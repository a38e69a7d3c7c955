package lang

import (
	"context"
	"log/slog"
)

// Evaluate computes the value of e without modifying env.
func (env *Environment) Evaluate(e *Expr) (Value, error) {
	switch e.Kind {
	case ExprLiteral:
		return ParseLiteral(e.Name, e.Span)

	case ExprIdent:
		v, ok := env.Get(e.Name)
		if !ok {
			return Value{}, errName(UnknownVariable, e.Name, e.Span)
		}

		return v, nil

	case ExprCall:
		fn, ok := env.Get(e.Name)
		if !ok || fn.kind != KindType {
			return Value{}, errName(UnknownFunction, e.Name, e.Span)
		}

		args, err := env.evaluateAll(e.Args)
		if err != nil {
			return Value{}, err
		}

		return fn.builtin.call(args, e.Span)

	case ExprMethod:
		recv, err := env.Evaluate(e.Receiver)
		if err != nil {
			return Value{}, err
		}

		args, err := env.evaluateAll(e.Args)
		if err != nil {
			return Value{}, err
		}

		return callMethod(recv, e.Name, args, e.Span)

	default:
		return Value{}, errSpan(ExpectedExpression, e.Span)
	}
}

// evaluateAll evaluates exprs from left to right, stopping at the first
// failure.
func (env *Environment) evaluateAll(exprs []*Expr) ([]Value, error) {
	vals := make([]Value, len(exprs))

	for i, e := range exprs {
		v, err := env.Evaluate(e)
		if err != nil {
			return nil, err
		}

		vals[i] = v
	}

	return vals, nil
}

// Execute applies s to env.
//
// An assignment binds its name. An expression statement must be a method
// call on a chain rooted at a variable, which is rebound to the result, so
// that part.add(a).add(b) updates part. Declarations and empty statements
// do nothing.
func (env *Environment) Execute(s *Statement) (err error) {
	var (
		name string
		v    Value
	)

	switch s.Kind {
	case StatementAssignment:
		name = s.Name

		if v, err = env.Evaluate(s.Expr); err != nil {
			return err
		}

	case StatementExpr:
		root := s.Expr.Root()
		if s.Expr.Kind != ExprMethod || root.Kind != ExprIdent {
			return errSpan(ExpectedExpression, s.Span)
		}

		name = root.Name

		if v, err = env.Evaluate(s.Expr); err != nil {
			return err
		}

	default:
		return nil
	}

	if name == Accumulator && v.kind != KindPart {
		return errArgs([]Kind{KindPart}, []Kind{v.kind}, s.Span)
	}

	env.Set(name, v)

	return nil
}

// Run executes stmts in order against env, stopping at the first error or
// when ctx is done.
func (env *Environment) Run(ctx context.Context, stmts []*Statement, opts ...Option) error {
	o := makeOptions(opts...)

	for _, s := range stmts {
		if err := ctx.Err(); err != nil {
			return err
		}

		o.logger.TraceContext(ctx, "execute",
			slog.String("kind", s.Kind.String()),
			slog.String("statement", s.String()),
			slog.String("at", s.Span.String()),
		)

		if err := env.Execute(s); err != nil {
			return err
		}
	}

	return nil
}
