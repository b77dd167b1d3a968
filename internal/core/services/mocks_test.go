package services

import (
	"context"
	"io"
)

// scriptedSource replays fixed lines, then io.EOF.
type scriptedSource struct {
	lines []string
	err   error
	reads int
}

func (s *scriptedSource) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.reads++
	if s.err != nil {
		return "", s.err
	}
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}
