// Package messages defines Bubbletea message types for the TUI.
package messages

import (
	"github.com/custodia-labs/quadra-cli/internal/core/domain"
)

// EquationSolved carries the outcome of a solve back to the model.
// Err is set when the line did not parse or the solver refused it.
type EquationSolved struct {
	Line     string
	Equation domain.Equation
	Roots    domain.RootSet
	Err      error
}
