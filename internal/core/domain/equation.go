package domain

import (
	"fmt"
	"math"
)

// Equation is ax^2 + bx + c = 0.
// A is taken from the x^2 field and is never checked against zero here.
type Equation struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
}

// Discriminant returns b^2 - 4ac.
func (e Equation) Discriminant() float64 {
	return e.B*e.B - 4*e.A*e.C
}

// Classify returns the kind of roots by the sign of the discriminant.
// Comparisons are strict, with no tolerance.
func (e Equation) Classify() RootKind {
	d := e.Discriminant()
	switch {
	case d > 0:
		return TwoReal
	case d == 0:
		return DoubleRoot
	default:
		return ComplexPair
	}
}

// IsDegenerate reports whether the leading coefficient is zero.
func (e Equation) IsDegenerate() bool {
	return e.A == 0
}

// String renders the normalised form, e.g. "1.00x^2 - 3.00x + 2.00 = 0".
func (e Equation) String() string {
	signA := ""
	if e.A < 0 {
		signA = "-"
	}
	return fmt.Sprintf("%s%.2fx^2 %s %.2fx %s %.2f = 0",
		signA, math.Abs(e.A),
		signOf(e.B), math.Abs(e.B),
		signOf(e.C), math.Abs(e.C),
	)
}

func signOf(v float64) string {
	if v < 0 {
		return "-"
	}
	return "+"
}
