// Package caderr defines the error taxonomy shared across this module.
// Fallible operations return sentinel-comparable error values; internal
// invariant violations panic.
package caderr

import (
	"errors"
	"fmt"
)

// Kind is an error category.
type Kind int

const (
	// InvalidPolynomial: an expression does not form a polynomial in the
	// designated variable, or a constructor was given coefficients of
	// the wrong kind.
	InvalidPolynomial Kind = iota
	// VariableMismatch: two univariate polynomials with different main
	// variables were combined, or a polynomial's variables do not match
	// a constraint's variable list.
	VariableMismatch
	// DivisionByZero: interval division by an interval containing zero,
	// or the inverse of the zero real algebraic number.
	DivisionByZero
	// DegreeTooLow: a subresultant or evaluation path reached a
	// degenerate case the caller's request does not cover.
	DegreeTooLow
	// AssignmentIncomplete: an evaluation was attempted with a partial
	// assignment insufficient to determine a result.
	AssignmentIncomplete
)

func (k Kind) String() string {
	switch k {
	case InvalidPolynomial:
		return "InvalidPolynomial"
	case VariableMismatch:
		return "VariableMismatch"
	case DivisionByZero:
		return "DivisionByZero"
	case DegreeTooLow:
		return "DegreeTooLow"
	case AssignmentIncomplete:
		return "AssignmentIncomplete"
	default:
		return "Unknown"
	}
}

// Error is a Kind plus a detail message.
type Error struct {
	Kind   Kind
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// Is reports whether target is a *Error with the same Kind.
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.Kind == other.Kind
	}
	return false
}

// New builds an *Error of the given kind.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// Sentinel values usable with errors.Is.
var (
	ErrInvalidPolynomial    = &Error{Kind: InvalidPolynomial}
	ErrVariableMismatch     = &Error{Kind: VariableMismatch}
	ErrDivisionByZero       = &Error{Kind: DivisionByZero}
	ErrDegreeTooLow         = &Error{Kind: DegreeTooLow}
	ErrAssignmentIncomplete = &Error{Kind: AssignmentIncomplete}
)

// Invariant panics with an invariant violation message. Such failures
// signal a bug in this module, not a caller mistake.
func Invariant(format string, args ...any) {
	panic(fmt.Sprintf("invariant violation: %s", fmt.Sprintf(format, args...)))
}
