package mcp

import (
	"github.com/custodia-labs/quadra-cli/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the MCP server.
type Ports struct {
	// Equations parses, solves and renders equations.
	Equations driving.EquationService

	// Settings exposes the current configuration. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Equations == nil {
		return ErrMissingEquationService
	}
	return nil
}
