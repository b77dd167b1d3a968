package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Parse Errors.

	// ErrWrongTokenCount indicates the line does not split into 5 or 7 fields.
	ErrWrongTokenCount = fmt.Errorf("%w: wrong token count", ErrInvalidInput)

	// ErrMissingQuadraticMarker indicates the first field has no x^2.
	ErrMissingQuadraticMarker = fmt.Errorf("%w: missing x^2", ErrInvalidInput)

	// ErrInvalidCoefficient indicates a coefficient is not a number.
	ErrInvalidCoefficient = fmt.Errorf("%w: invalid coefficient", ErrInvalidInput)

	// ErrMissingLinearMarker indicates the bx term has no x.
	ErrMissingLinearMarker = fmt.Errorf("%w: missing x in linear term", ErrInvalidInput)

	// Solver Errors.

	// ErrDegenerateEquation indicates a zero leading coefficient that the
	// configured policy refuses to solve.
	ErrDegenerateEquation = errors.New("degenerate equation")

	// Session Errors.

	// ErrNoInput indicates the input ended before a valid equation was read.
	ErrNoInput = errors.New("no input")

	// ErrTooManyAttempts indicates the attempt limit was reached.
	ErrTooManyAttempts = errors.New("too many attempts")

	// Settings Errors.

	// ErrInvalidSetting indicates a setting value is out of range or unknown.
	ErrInvalidSetting = errors.New("invalid setting")
)

// ParseErrorKind identifies a parse failure category.
type ParseErrorKind uint8

const (
	// WrongTokenCount means the line has neither 5 nor 7 fields.
	WrongTokenCount ParseErrorKind = iota
	// MissingQuadraticMarker means field 0 lacks x^2.
	MissingQuadraticMarker
	// InvalidCoefficient means a coefficient failed to parse as a float.
	InvalidCoefficient
	// MissingLinearMarker means the bx field lacks x.
	MissingLinearMarker
)

// String returns the name of the kind.
func (k ParseErrorKind) String() string {
	switch k {
	case WrongTokenCount:
		return "wrong token count"
	case MissingQuadraticMarker:
		return "missing quadratic marker"
	case InvalidCoefficient:
		return "invalid coefficient"
	case MissingLinearMarker:
		return "missing linear marker"
	default:
		return "unknown"
	}
}

// Coefficient names one of the three equation coefficients.
type Coefficient string

// Equation coefficients.
const (
	CoefficientA Coefficient = "a"
	CoefficientB Coefficient = "b"
	CoefficientC Coefficient = "c"
)

// ParseError describes why a line could not be read as an equation.
// Coefficient is set for InvalidCoefficient and MissingLinearMarker,
// Count for WrongTokenCount.
type ParseError struct {
	Kind        ParseErrorKind
	Coefficient Coefficient
	Token       string
	Count       int
}

// acceptedForms lists the shapes the parser accepts, for WrongTokenCount.
const acceptedForms = `invalid format.
Use one of the input forms:
  ax^2 +/- bx +/- c = 0
  ax^2 +/- bx = 0
  ax^2 +/- c = 0`

// Error renders the human-readable message.
func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	switch e.Kind {
	case WrongTokenCount:
		return acceptedForms
	case MissingQuadraticMarker:
		return "missing 'x^2', please enter a quadratic equation"
	case InvalidCoefficient:
		return fmt.Sprintf("invalid coefficient '%s'", e.Coefficient)
	case MissingLinearMarker:
		return fmt.Sprintf("the '%sx' term must contain 'x'", e.Coefficient)
	default:
		return e.Kind.String()
	}
}

// Is reports whether target is the sentinel for this error's kind.
func (e *ParseError) Is(target error) bool {
	return target == e.sentinel() || target == ErrInvalidInput
}

func (e *ParseError) sentinel() error {
	switch e.Kind {
	case WrongTokenCount:
		return ErrWrongTokenCount
	case MissingQuadraticMarker:
		return ErrMissingQuadraticMarker
	case InvalidCoefficient:
		return ErrInvalidCoefficient
	case MissingLinearMarker:
		return ErrMissingLinearMarker
	default:
		return ErrInvalidInput
	}
}
