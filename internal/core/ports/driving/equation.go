package driving

import "github.com/custodia-labs/quadra-cli/internal/core/domain"

// EquationService turns an input line into rendered roots.
type EquationService interface {
	// Parse reads one line into coefficients.
	// Returns a *domain.ParseError and a zero Equation on failure.
	Parse(line string) (domain.Equation, error)

	// Solve computes the roots of eq.
	Solve(eq domain.Equation) (domain.RootSet, error)

	// Render formats a RootSet for display, one root per line.
	Render(roots domain.RootSet) string

	// Echo formats the coefficients of an accepted equation.
	Echo(eq domain.Equation) string
}
