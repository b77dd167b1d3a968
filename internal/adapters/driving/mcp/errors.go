// Package mcp provides an MCP (Model Context Protocol) server adapter for Quadra.
// It lets AI assistants parse and solve quadratic equations through tools and resources.
package mcp

import "errors"

// ErrMissingEquationService is returned when the equation service is not provided.
var ErrMissingEquationService = errors.New("mcp: equation service is required")
