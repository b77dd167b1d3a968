package domain

// TokenKind classifies one whitespace-separated field of the input.
type TokenKind uint8

const (
	// TokenOther is a field that fits no other kind.
	TokenOther TokenKind = iota
	// TokenQuadratic contains the x^2 marker.
	TokenQuadratic
	// TokenLinear contains x but not x^2.
	TokenLinear
	// TokenConstant has no x.
	TokenConstant
	// TokenSign is exactly "+" or "-".
	TokenSign
	// TokenEquals contains "=".
	TokenEquals
)

// String returns the name of the kind.
func (k TokenKind) String() string {
	switch k {
	case TokenQuadratic:
		return "quadratic"
	case TokenLinear:
		return "linear"
	case TokenConstant:
		return "constant"
	case TokenSign:
		return "sign"
	case TokenEquals:
		return "equals"
	default:
		return "other"
	}
}

// Token is a classified input field. Pos is the field index.
type Token struct {
	Kind TokenKind
	Text string
	Pos  int
}

// Negative reports whether a sign token negates the following term.
// Only a literal "-" negates.
func (t Token) Negative() bool {
	return t.Text == "-"
}
