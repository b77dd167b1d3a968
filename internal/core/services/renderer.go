package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/quadra-cli/internal/core/domain"
)

// Renderer formats equations and roots for display.
type Renderer struct {
	precision int
}

// NewRenderer creates a renderer printing the given number of decimals.
func NewRenderer(precision int) *Renderer {
	if precision < 0 || precision > domain.MaxPrecision {
		precision = domain.DefaultSettings().Display.Precision
	}
	return &Renderer{precision: precision}
}

// Coefficients renders the echo line for an accepted equation.
func (r *Renderer) Coefficients(eq domain.Equation) string {
	return fmt.Sprintf("Received coefficients: a = %s, b = %s, c = %s",
		r.number(eq.A), r.number(eq.B), r.number(eq.C))
}

// Roots renders one line per root, or a single line for a conjugate pair.
func (r *Renderer) Roots(roots domain.RootSet) string {
	if roots.Complex != nil {
		c := domain.Complex{Real: positiveZero(roots.Complex.Real), Imag: roots.Complex.Imag}
		return "x = " + c.Format(r.precision)
	}

	switch {
	case roots.Kind == domain.Linear && len(roots.Real) == 1:
		return "x = " + r.number(roots.Real[0])
	case len(roots.Real) == 1:
		return "x ≈ " + r.number(roots.Real[0])
	}

	lines := make([]string, len(roots.Real))
	for i, v := range roots.Real {
		lines[i] = fmt.Sprintf("x%d ≈ %s", i+1, r.number(v))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) number(v float64) string {
	return fmt.Sprintf("%.*f", r.precision, positiveZero(v))
}

// positiveZero maps -0 to 0 so it does not print as "-0.00".
func positiveZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}
