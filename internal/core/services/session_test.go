package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/quadra-cli/internal/adapters/driven/console"
	"github.com/custodia-labs/quadra-cli/internal/core/domain"
)

func newTestSession(settings domain.Settings, lines ...string) (*Session, *scriptedSource, *bytes.Buffer) {
	src := &scriptedSource{lines: lines}
	out := new(bytes.Buffer)
	return NewSession(NewEquationService(settings), src, out, settings), src, out
}

func TestSession_Run_FirstLineValid(t *testing.T) {
	session, _, out := newTestSession(domain.DefaultSettings(), "x^2 - 3x + 2 = 0")

	roots, err := session.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, roots.Real)
	expected := ClearScreen +
		"\n" + Prompt + "\n" +
		"Received coefficients: a = 1.00, b = -3.00, c = 2.00\n" +
		"x1 ≈ 1.00\nx2 ≈ 2.00\n"
	assert.Equal(t, expected, out.String())
}

func TestSession_Run_RetriesUntilValid(t *testing.T) {
	session, src, out := newTestSession(domain.DefaultSettings(),
		"garbage",
		"2x + 1 = 0 0 0",
		"x^2 + 1 = 0",
	)

	roots, err := session.Run(context.Background())

	require.NoError(t, err)
	require.NotNil(t, roots.Complex)
	assert.Equal(t, 3, src.reads)
	assert.Equal(t, 3, strings.Count(out.String(), Prompt))
	assert.Contains(t, out.String(), "Error: invalid format.")
	assert.Contains(t, out.String(), "Error: missing 'x^2'")
	assert.Contains(t, out.String(), "x = 0.00 ± 1.00i\n")
}

func TestSession_Run_TrimsInput(t *testing.T) {
	session, _, out := newTestSession(domain.DefaultSettings(), "  x^2 + 2x + 1 = 0  \t")

	_, err := session.Run(context.Background())

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out.String(), "x ≈ -1.00\n"))
}

func TestSession_Run_EndOfInput(t *testing.T) {
	session, _, out := newTestSession(domain.DefaultSettings(), "nope")

	_, err := session.Run(context.Background())

	assert.ErrorIs(t, err, domain.ErrNoInput)
	assert.Equal(t, 2, strings.Count(out.String(), Prompt))
}

func TestSession_Run_NoClearScreen(t *testing.T) {
	settings := domain.DefaultSettings()
	settings.Display.ClearScreen = false
	session, _, out := newTestSession(settings, "x^2 + 1 = 0")

	_, err := session.Run(context.Background())

	require.NoError(t, err)
	assert.NotContains(t, out.String(), ClearScreen)
	assert.True(t, strings.HasPrefix(out.String(), "\n"+Prompt))
}

func TestSession_Run_MaxAttempts(t *testing.T) {
	settings := domain.DefaultSettings()
	settings.Session.MaxAttempts = 2
	session, src, _ := newTestSession(settings, "a", "b", "x^2 + 1 = 0")

	_, err := session.Run(context.Background())

	assert.ErrorIs(t, err, domain.ErrTooManyAttempts)
	assert.Equal(t, 2, src.reads)
}

func TestSession_Run_RejectPolicyReprompts(t *testing.T) {
	settings := domain.DefaultSettings()
	settings.Solver.ZeroLeading = domain.ZeroLeadingReject
	session, _, out := newTestSession(settings, "0x^2 + 2x = 0", "x^2 + 2x = 0")

	roots, err := session.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []float64{-2, 0}, roots.Real)
	assert.Contains(t, out.String(), "Error: degenerate equation: coefficient 'a' is zero\n")
}

func TestSession_Run_PreserveReportsNonFinite(t *testing.T) {
	session, _, out := newTestSession(domain.DefaultSettings(), "0x^2 + 2x + 1 = 0")

	_, err := session.Run(context.Background())

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Inf")
}

func TestSession_Run_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	session, src, _ := newTestSession(domain.DefaultSettings(), "x^2 + 1 = 0")

	_, err := session.Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, src.reads)
}

func TestSession_Run_InterruptedAtPrompt(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	settings := domain.DefaultSettings()
	session := NewSession(NewEquationService(settings), console.NewLineReader(pr), new(bytes.Buffer), settings)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := session.Run(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestSession_Run_SourceError(t *testing.T) {
	settings := domain.DefaultSettings()
	src := &scriptedSource{err: errors.New("terminal closed")}
	session := NewSession(NewEquationService(settings), src, new(bytes.Buffer), settings)

	_, err := session.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading input: terminal closed")
}
