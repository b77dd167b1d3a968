package driving

import (
	"context"

	"github.com/custodia-labs/quadra-cli/internal/core/domain"
)

// Session runs the prompt, parse, solve loop until one equation is solved.
type Session interface {
	// Run blocks until an equation is solved, input ends or ctx is done.
	Run(ctx context.Context) (domain.RootSet, error)
}
