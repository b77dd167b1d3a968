package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/quadra-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/quadra-cli/internal/core/domain"
	"github.com/custodia-labs/quadra-cli/internal/core/services"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	app, err := NewApp(&Ports{Equations: services.NewEquationService(domain.DefaultSettings())})
	require.NoError(t, err)
	return app
}

// submit types line and presses enter, returning the resulting message.
func submit(t *testing.T, app *App, line string) tea.Msg {
	t.Helper()
	app.input.SetValue(line)
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	return cmd()
}

func TestNewApp_RequiresEquationService(t *testing.T) {
	_, err := NewApp(nil)
	require.ErrorIs(t, err, ErrMissingEquationService)

	_, err = NewApp(&Ports{})
	require.ErrorIs(t, err, ErrMissingEquationService)
}

func TestApp_Init(t *testing.T) {
	app := newTestApp(t)
	assert.NotNil(t, app.Init())
}

func TestApp_SolveTwoRealRoots(t *testing.T) {
	app := newTestApp(t)

	msg := submit(t, app, "x^2 - 3x + 2 = 0")
	solved, ok := msg.(messages.EquationSolved)
	require.True(t, ok)
	require.NoError(t, solved.Err)
	assert.Equal(t, domain.Equation{A: 1, B: -3, C: 2}, solved.Equation)
	assert.Equal(t, domain.TwoReal, solved.Roots.Kind)
	assert.Empty(t, app.input.Value())

	app.Update(solved)
	require.Len(t, app.history, 1)

	view := app.View()
	assert.Contains(t, view, "x^2 - 3x + 2 = 0")
	assert.Contains(t, view, "x1 ≈ 1.00")
	assert.Contains(t, view, "x2 ≈ 2.00")
}

func TestApp_SolveReportsParseError(t *testing.T) {
	app := newTestApp(t)

	msg := submit(t, app, "3x + 2 = 0")
	solved, ok := msg.(messages.EquationSolved)
	require.True(t, ok)
	require.ErrorIs(t, solved.Err, domain.ErrWrongTokenCount)

	app.Update(solved)
	assert.Contains(t, app.View(), "Error: invalid format.")
}

func TestApp_SolveAfterContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	app := newTestApp(t).WithContext(ctx)

	msg := submit(t, app, "x^2 - 3x + 2 = 0")
	solved, ok := msg.(messages.EquationSolved)
	require.True(t, ok)
	require.ErrorIs(t, solved.Err, context.Canceled)
	assert.Equal(t, domain.Equation{}, solved.Equation)
}

func TestApp_EmptyLineIsIgnored(t *testing.T) {
	app := newTestApp(t)
	app.input.SetValue("   ")

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Empty(t, app.history)
}

func TestApp_HistoryIsBounded(t *testing.T) {
	app := newTestApp(t)

	for i := 0; i < maxHistory+3; i++ {
		app.Update(submit(t, app, "x^2 + 1 = 0"))
	}
	assert.Len(t, app.history, maxHistory)
}

func TestApp_ClearResetsHistory(t *testing.T) {
	app := newTestApp(t)
	app.Update(submit(t, app, "x^2 + 2x + 1 = 0"))
	app.input.SetValue("x^2")

	app.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Empty(t, app.history)
	assert.Empty(t, app.input.Value())
}

func TestApp_HelpToggle(t *testing.T) {
	app := newTestApp(t)
	require.False(t, app.help.ShowAll)

	app.Update(tea.KeyMsg{Type: tea.KeyF1})
	assert.True(t, app.help.ShowAll)

	app.Update(tea.KeyMsg{Type: tea.KeyF1})
	assert.False(t, app.help.ShowAll)
}

func TestApp_Quit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t)
			_, cmd := app.Update(tt.msg)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestApp_WindowSize(t *testing.T) {
	app := newTestApp(t)
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, app.width)
	assert.Equal(t, 120, app.help.Width)
}

func TestApp_TypingReachesInput(t *testing.T) {
	app := newTestApp(t)
	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x^2")})

	assert.Equal(t, "x^2", app.input.Value())
}

func TestPorts_Validate(t *testing.T) {
	var nilPorts *Ports
	assert.ErrorIs(t, nilPorts.Validate(), ErrMissingEquationService)

	ports := &Ports{Equations: services.NewEquationService(domain.DefaultSettings())}
	assert.NoError(t, ports.Validate())
}
