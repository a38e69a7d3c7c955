// Package lang implements the oden modeling language.
//
// A program is a sequence of statements, one per line. Each statement
// either binds a name or calls a method on a variable and rebinds that
// variable to the result. The variable part holds the model being built.
//
//	part Bracket:
//	    width = 40mm
//	    plate = Rectangle(width, 20mm).extrude(Plane.XY(), 3mm)
//	    part.add(plate)
//	    part.subtract(Cylinder(2mm, 10mm).move_to(10mm, 0mm, 0mm))
//
// A line that starts with a dot continues the method chain of the line
// before it, and a line break inside parentheses never ends a statement.
// Text after "//" is a comment.
//
// # Values
//
// Literals carry a unit: no suffix is a Number, m, cm and mm are Lengths,
// deg and rad are Angles. Lengths are stored in meters and angles in
// radians. Infix arithmetic (+ - * /) is rewritten into calls of the
// methods add, subtract, multiply and divide, with the usual precedence.
//
// Geometry values (Axis, Plane, Path, Sketch and Part) are provided by
// package geom. The builtins Axis and Plane are not constructors; their
// members are reached as Axis.Z() and Plane.XY().
//
// # Pipeline
//
// [Tokenize] produces tokens, [SplitStatements] groups them per statement,
// [ParseStatement] builds a [Statement] whose expressions come from
// [ParseExpr], and [Environment.Execute] applies it. [Compile] runs the
// whole pipeline and returns the final part.
//
// Every failure is an [*Error] with a [Span] into the [Source]; use
// [Error.Render] to show it with the offending source line.
package lang
