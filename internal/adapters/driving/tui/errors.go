package tui

import "errors"

// ErrMissingEquationService is returned when the equation service is not provided.
var ErrMissingEquationService = errors.New("tui: equation service is required")
