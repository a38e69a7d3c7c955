package lang

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
)

//go:generate go tool stringer --type ErrorKind --output errorkind_string.go

// ErrorKind classifies an [Error].
type ErrorKind uint8

const (
	Failure ErrorKind = iota
	UnexpectedSymbol
	ExpectedExpression
	ExpectedIdentifyer
	UnknownVariable
	UnknownFunction
	UnknownMethod
	UnknownAttribute
	NotCallable
	FunctionIsNotMethod
	Arguments
	UnknownUnit
	EmptyPart
	FileNotFound
	StlWrite
)

// Sentinels for use with errors.Is. Any [Error] matches the sentinel of its
// kind.
var (
	ErrUnexpectedSymbol    = &Error{Kind: UnexpectedSymbol}
	ErrExpectedExpression  = &Error{Kind: ExpectedExpression}
	ErrExpectedIdentifyer  = &Error{Kind: ExpectedIdentifyer}
	ErrUnknownVariable     = &Error{Kind: UnknownVariable}
	ErrUnknownFunction     = &Error{Kind: UnknownFunction}
	ErrUnknownMethod       = &Error{Kind: UnknownMethod}
	ErrUnknownAttribute    = &Error{Kind: UnknownAttribute}
	ErrNotCallable         = &Error{Kind: NotCallable}
	ErrFunctionIsNotMethod = &Error{Kind: FunctionIsNotMethod}
	ErrArguments           = &Error{Kind: Arguments}
	ErrUnknownUnit         = &Error{Kind: UnknownUnit}
	ErrEmptyPart           = &Error{Kind: EmptyPart}
	ErrFileNotFound        = &Error{Kind: FileNotFound}
	ErrStlWrite            = &Error{Kind: StlWrite}

	ErrInvalidDefine = NewError("invalid definition")
)

// Error is a compilation failure. Kind selects which of Name, Should, Got,
// Path and Span are meaningful. Errors of kind Failure carry only a message.
type Error struct {
	Span   Span
	err    error
	Name   string
	Path   string
	msg    string
	Should []Kind
	Got    []Kind
	attrs  []slog.Attr
	Kind   ErrorKind
}

// NewError creates a new Error of kind Failure with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

func errSpan(kind ErrorKind, span Span) *Error {
	return &Error{Kind: kind, Span: span}
}

func errName(kind ErrorKind, name string, span Span) *Error {
	return &Error{Kind: kind, Name: name, Span: span}
}

func errArgs(should, is []Kind, span Span) *Error {
	return &Error{Kind: Arguments, Should: should, Got: is, Span: span}
}

func errPath(kind ErrorKind, path string, cause error) *Error {
	return &Error{Kind: kind, Path: path, err: cause}
}

// Message returns the explanation of e without location or cause.
func (e *Error) Message() string {
	switch e.Kind {
	case UnexpectedSymbol:
		return "unexpected symbol " + strconv.Quote(e.Span.Text())
	case ExpectedExpression:
		return "expected an expression"
	case ExpectedIdentifyer:
		return "expected an identifier"
	case UnknownVariable:
		return "unknown variable " + strconv.Quote(e.Name)
	case UnknownFunction:
		return "unknown function " + strconv.Quote(e.Name)
	case UnknownMethod:
		return "unknown method " + strconv.Quote(e.Name)
	case UnknownAttribute:
		return "unknown attribute " + strconv.Quote(e.Name)
	case NotCallable:
		return strconv.Quote(e.Name) + " cannot be called directly"
	case FunctionIsNotMethod:
		return "function called as a method"
	case Arguments:
		return "arguments should be " + kindList(e.Should) + " but are " + kindList(e.Got)
	case UnknownUnit:
		return "unknown unit " + strconv.Quote(e.Name)
	case EmptyPart:
		return "operation produced an empty part"
	case FileNotFound:
		return "could not read file " + strconv.Quote(e.Path)
	case StlWrite:
		return "could not write STL file " + strconv.Quote(e.Path)
	default:
		return e.msg
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	part := make([]string, 0, 3)

	if e.Span.Source != nil {
		part = append(part, e.Span.String())
	}

	if msg := e.Message(); msg != "" {
		part = append(part, msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an *Error of the same kind. Errors of kind
// Failure match only by identity or equal message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	if e.Kind != Failure {
		return e.Kind == t.Kind
	}

	return t.Kind == Failure && t.msg != "" && e.msg == t.msg
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+4)

	if msg := e.Message(); msg != "" {
		attrs = append(attrs, slog.String("error", msg))
	}

	if e.Kind != Failure {
		attrs = append(attrs, slog.String("kind", e.Kind.String()))
	}

	if e.Span.Source != nil {
		attrs = append(attrs, slog.String("at", e.Span.String()))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	c := *e
	c.err = err

	return &c
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	c := *e
	c.attrs = make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(c.attrs, e.attrs)
	copy(c.attrs[len(e.attrs):], attrs)

	return &c
}

// Render formats e for a terminal: a header naming the location, followed
// by the source lines the span touches. A single line is underlined with
// carets, and each line of a longer span is marked with '>'.
func (e *Error) Render() string {
	if e.Span.Source == nil {
		return "error: " + e.Error() + "\n"
	}

	var sb strings.Builder

	line, col := e.Span.Position()
	first, last := e.Span.Lines()
	lines := strings.Split(e.Span.Source.Text, "\n")

	sb.WriteString("error: " + e.Message() + "\n")
	sb.WriteString("  --> " + e.Span.Source.Name() + ":" +
		strconv.Itoa(line) + ":" + strconv.Itoa(col) + "\n")

	// Width of the widest line number, so that the gutters line up.
	lineNumWidth := len(strconv.Itoa(last))

	for n := first; n <= last && n <= len(lines); n++ {
		mark := "  "
		if first != last {
			mark = "> "
		}

		num := strconv.Itoa(n)
		sb.WriteString(mark + strings.Repeat(" ", lineNumWidth-len(num)) + num + " | " + lines[n-1] + "\n")
	}

	if first == last {
		// +5 accounts for: 2 leading spaces + " | " (3 chars)
		padding := strings.Repeat(" ", lineNumWidth+5) + e.Span.indent()
		width := max(1, len([]rune(e.Span.Text())))
		sb.WriteString(padding + strings.Repeat("^", width) + "\n")
	}

	if e.err != nil {
		sb.WriteString("  cause: " + e.err.Error() + "\n")
	}

	return sb.String()
}

func kindList(kinds []Kind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}

	return "[" + strings.Join(names, ", ") + "]"
}
