// Package tui provides an interactive terminal user interface for quadra.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/quadra-cli/internal/core/ports/driving"
)

// Ports aggregates the driving ports required by the TUI.
type Ports struct {
	// Equations parses, solves and renders equations.
	Equations driving.EquationService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Equations == nil {
		return ErrMissingEquationService
	}
	return nil
}
