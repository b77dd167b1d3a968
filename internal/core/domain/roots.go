package domain

import "fmt"

// RootKind describes which roots a RootSet carries.
type RootKind uint8

const (
	// TwoReal is d > 0.
	TwoReal RootKind = iota
	// DoubleRoot is d == 0.
	DoubleRoot
	// ComplexPair is d < 0.
	ComplexPair
	// Linear is a = 0 solved as bx + c = 0.
	Linear
)

// String returns the name of the kind.
func (k RootKind) String() string {
	switch k {
	case TwoReal:
		return "two_real"
	case DoubleRoot:
		return "double_root"
	case ComplexPair:
		return "complex_pair"
	case Linear:
		return "linear"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k RootKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Complex is the conjugate pair Real ± Imag·i. Imag is a magnitude.
type Complex struct {
	Real float64 `json:"real"`
	Imag float64 `json:"imag"`
}

// Format renders the pair with the given number of decimals.
func (c Complex) Format(precision int) string {
	return fmt.Sprintf("%.*f ± %.*fi", precision, c.Real, precision, c.Imag)
}

// String renders the pair with two decimals.
func (c Complex) String() string {
	return c.Format(2)
}

// RootSet holds the result of one solve.
// Exactly one of Real and Complex is populated.
type RootSet struct {
	Kind    RootKind  `json:"kind"`
	Real    []float64 `json:"real,omitempty"`
	Complex *Complex  `json:"complex,omitempty"`
}

// IsComplex reports whether the set holds a conjugate pair.
func (r RootSet) IsComplex() bool {
	return r.Complex != nil
}
