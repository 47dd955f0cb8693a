package ucum

import (
	"fmt"

	"github.com/ucum-go/ucum/pkg/common"
)

// ErrorKind classifies a Error.
type ErrorKind uint8

const (
	// ErrInvalidExpression covers malformed syntax: unbalanced brackets,
	// a stray operator, an empty factor.
	ErrInvalidExpression ErrorKind = iota
	// ErrInvalidPercentPlacement covers a '%' that appears anywhere other
	// than as the entire expression.
	ErrInvalidPercentPlacement
	// ErrUnitNotFound covers a well-formed symbol that does not resolve to
	// any registered unit, with or without a recognized prefix.
	ErrUnitNotFound
	// ErrConversionFailed covers a conversion attempted between units whose
	// special-unit kinds or domains make it impossible, an offset or special
	// unit combined or exponentiated inside an expression, and (from
	// Convert) a parse or lookup error on either side, wrapped with the
	// "from -> to" path.
	ErrConversionFailed
	// ErrIncompatibleDimensions covers a conversion or comparison attempted
	// between units of different canonical dimension.
	ErrIncompatibleDimensions
)

func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidExpression:
		return "invalid_expression"
	case ErrInvalidPercentPlacement:
		return "invalid_percent_placement"
	case ErrUnitNotFound:
		return "unit_not_found"
	case ErrConversionFailed:
		return "conversion_failed"
	case ErrIncompatibleDimensions:
		return "incompatible_dimensions"
	default:
		return "unknown"
	}
}

// Span is a byte offset range into the original expression text that an
// Error pertains to. End is exclusive. A zero-value Span (Start==End==0)
// coming from an operation that has no natural span (e.g. IsComparable)
// should be ignored by callers; Span.HasSpan reports whether it is
// meaningful.
type Span struct {
	Start int
	End   int
	valid bool
}

// NewSpan builds a Span over [start, end).
func NewSpan(start, end int) Span {
	return Span{Start: start, End: end, valid: true}
}

// HasSpan reports whether s was built with NewSpan rather than left zero.
func (s Span) HasSpan() bool { return s.valid }

// Error is the error type returned by every ucum operation that can fail.
type Error struct {
	Kind    ErrorKind
	Span    Span
	Code    string // the offending unit code, when relevant
	Message string
	cause   error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %q", msg, e.Code)
	}
	if e.Span.HasSpan() {
		msg = fmt.Sprintf("%s (at %d:%d)", msg, e.Span.Start, e.Span.End)
	}
	return msg
}

// Unwrap supports errors.Is/errors.As against a wrapped cause.
func (e *Error) Unwrap() error { return e.cause }

func newError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func newSpanError(kind ErrorKind, span Span, msg string) *Error {
	return &Error{Kind: kind, Span: span, Message: msg}
}

func newUnitNotFoundError(code string, span Span) *Error {
	return &Error{Kind: ErrUnitNotFound, Span: span, Code: code, Message: "unknown unit code"}
}

func newIncompatibleDimensionsError(from, to string, fromDim, toDim Dimension) *Error {
	return &Error{
		Kind: ErrIncompatibleDimensions,
		Message: fmt.Sprintf("%q has dimension %s, %q has dimension %s",
			from, fromDim, to, toDim),
	}
}

func newConversionError(from, to, reason string) *Error {
	return &Error{
		Kind:    ErrConversionFailed,
		Message: fmt.Sprintf("cannot convert %q to %q: %s", from, to, reason),
	}
}

// wrapAt annotates err with a path built from the expression being
// processed, using the shared PathError helper the rest of the module
// uses for context-carrying errors.
func wrapAt(path string, err error) error {
	return common.WrapPath(path, err)
}
