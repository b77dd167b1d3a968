package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/quadra-cli/internal/core/domain"
	"github.com/custodia-labs/quadra-cli/internal/core/ports/driven"
	"github.com/custodia-labs/quadra-cli/internal/core/ports/driving"
	"github.com/custodia-labs/quadra-cli/internal/logger"
)

// Ensure Session implements the interface.
var _ driving.Session = (*Session)(nil)

// ClearScreen is the terminal sequence written before the first prompt.
const ClearScreen = "\x1b[2J\x1b[1;1H"

// Prompt describes the expected input.
const Prompt = "Enter a quadratic equation in the form ax^2 +/- bx +/- c = 0:"

// Session reads lines until one parses and solves, writing prompts,
// errors and results to out. Errors go to out, not to stderr.
type Session struct {
	equations   driving.EquationService
	source      driven.LineSource
	out         io.Writer
	clearScreen bool
	maxAttempts int
}

// NewSession creates a session over the given input and output.
func NewSession(
	equations driving.EquationService,
	source driven.LineSource,
	out io.Writer,
	settings domain.Settings,
) *Session {
	return &Session{
		equations:   equations,
		source:      source,
		out:         out,
		clearScreen: settings.Display.ClearScreen,
		maxAttempts: settings.Session.MaxAttempts,
	}
}

// Run prompts until an equation is solved.
// Returns domain.ErrNoInput if input ends first and
// domain.ErrTooManyAttempts once the attempt limit is used up.
func (s *Session) Run(ctx context.Context) (domain.RootSet, error) {
	if s.clearScreen {
		fmt.Fprint(s.out, ClearScreen)
	}

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return domain.RootSet{}, err
		}

		fmt.Fprintf(s.out, "\n%s\n", Prompt)
		line, err := s.source.ReadLine(ctx)
		if errors.Is(err, io.EOF) {
			return domain.RootSet{}, domain.ErrNoInput
		}
		if err != nil {
			return domain.RootSet{}, fmt.Errorf("reading input: %w", err)
		}

		roots, err := s.attempt(strings.TrimSpace(line))
		if err == nil {
			return roots, nil
		}

		fmt.Fprintf(s.out, "Error: %v\n", err)
		logger.Debug("attempt %d rejected: %v", attempt, err)
		if s.maxAttempts > 0 && attempt >= s.maxAttempts {
			return domain.RootSet{}, fmt.Errorf("%w: %d", domain.ErrTooManyAttempts, attempt)
		}
	}
}

func (s *Session) attempt(line string) (domain.RootSet, error) {
	eq, err := s.equations.Parse(line)
	if err != nil {
		return domain.RootSet{}, err
	}
	fmt.Fprintln(s.out, s.equations.Echo(eq))

	roots, err := s.equations.Solve(eq)
	if err != nil {
		return domain.RootSet{}, err
	}
	fmt.Fprintln(s.out, s.equations.Render(roots))
	return roots, nil
}
