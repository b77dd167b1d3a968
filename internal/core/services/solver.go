package services

import (
	"fmt"
	"math"

	"github.com/custodia-labs/quadra-cli/internal/core/domain"
	"github.com/custodia-labs/quadra-cli/internal/logger"
)

// Solver computes roots with the closed-form quadratic formula.
// No cancellation-avoiding refinement is applied.
type Solver struct {
	zeroLeading domain.ZeroLeadingPolicy
}

// NewSolver creates a solver. An unknown policy falls back to preserve.
func NewSolver(zeroLeading domain.ZeroLeadingPolicy) *Solver {
	if !zeroLeading.IsValid() {
		zeroLeading = domain.ZeroLeadingPreserve
	}
	return &Solver{zeroLeading: zeroLeading}
}

// Solve computes the roots of eq.
//
// With a == 0 the result depends on the zero-leading policy. Under
// preserve the division by zero is carried out and the roots come back
// as NaN or ±Inf.
func (s *Solver) Solve(eq domain.Equation) (domain.RootSet, error) {
	if eq.IsDegenerate() {
		switch s.zeroLeading {
		case domain.ZeroLeadingReject:
			return domain.RootSet{}, fmt.Errorf("%w: coefficient 'a' is zero", domain.ErrDegenerateEquation)
		case domain.ZeroLeadingLinear:
			return solveLinear(eq)
		}
		logger.Warn("coefficient a is zero, roots will not be finite")
	}

	d := eq.Discriminant()
	kind := eq.Classify()
	logger.Debug("discriminant=%g kind=%s", d, kind)

	if kind == domain.ComplexPair {
		return domain.RootSet{
			Kind: domain.ComplexPair,
			Complex: &domain.Complex{
				Real: -eq.B / (2 * eq.A),
				Imag: math.Abs(math.Sqrt(math.Abs(d)) / (2 * eq.A)),
			},
		}, nil
	}

	sq := math.Sqrt(d)
	x1 := (-eq.B - sq) / (2 * eq.A)
	x2 := (-eq.B + sq) / (2 * eq.A)
	if x1 == x2 {
		return domain.RootSet{Kind: domain.DoubleRoot, Real: []float64{x1}}, nil
	}
	return domain.RootSet{Kind: domain.TwoReal, Real: []float64{x1, x2}}, nil
}

func solveLinear(eq domain.Equation) (domain.RootSet, error) {
	if eq.B == 0 {
		return domain.RootSet{}, fmt.Errorf("%w: coefficients 'a' and 'b' are both zero", domain.ErrDegenerateEquation)
	}
	logger.Debug("solving linear equation %gx + %g = 0", eq.B, eq.C)
	return domain.RootSet{Kind: domain.Linear, Real: []float64{-eq.C / eq.B}}, nil
}
