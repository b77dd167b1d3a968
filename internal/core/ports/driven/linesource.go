package driven

import "context"

// LineSource supplies raw input lines.
type LineSource interface {
	// ReadLine returns the next line without its terminator.
	// Returns io.EOF when no more input is available.
	ReadLine(ctx context.Context) (string, error)
}
