package services

import (
	"github.com/custodia-labs/quadra-cli/internal/core/domain"
	"github.com/custodia-labs/quadra-cli/internal/core/ports/driving"
)

// Ensure EquationService implements the interface.
var _ driving.EquationService = (*EquationService)(nil)

// EquationService wires the parser, solver and renderer together.
type EquationService struct {
	parser   *Parser
	solver   *Solver
	renderer *Renderer
}

// NewEquationService creates an equation service from settings.
func NewEquationService(settings domain.Settings) *EquationService {
	return &EquationService{
		parser:   NewParser(),
		solver:   NewSolver(settings.Solver.ZeroLeading),
		renderer: NewRenderer(settings.Display.Precision),
	}
}

// Parse reads one line into coefficients.
func (s *EquationService) Parse(line string) (domain.Equation, error) {
	return s.parser.Parse(line)
}

// Solve computes the roots of eq.
func (s *EquationService) Solve(eq domain.Equation) (domain.RootSet, error) {
	return s.solver.Solve(eq)
}

// Render formats roots for display.
func (s *EquationService) Render(roots domain.RootSet) string {
	return s.renderer.Roots(roots)
}

// Echo formats the accepted coefficients.
func (s *EquationService) Echo(eq domain.Equation) string {
	return s.renderer.Coefficients(eq)
}
