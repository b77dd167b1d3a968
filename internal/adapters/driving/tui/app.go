package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/quadra-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/quadra-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/quadra-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/quadra-cli/internal/adapters/driving/tui/styles"
)

// maxHistory bounds the solved equations kept on screen.
const maxHistory = 5

// entry is one submitted line and its outcome.
type entry struct {
	line   string
	echo   string
	result string
	err    error
}

// App is the TUI application following the Elm architecture.
// Each submitted line is solved on its own; history is kept only
// for display and is lost on exit.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keys   *keymap.KeyMap
	help   help.Model
	input  *input.EquationInput

	history []entry
	width   int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	return &App{
		ports:  ports,
		ctx:    context.Background(),
		styles: s,
		keys:   keymap.DefaultKeyMap(),
		help:   help.New(),
		input:  input.NewEquationInput(s),
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.input.Init(),
		tea.SetWindowTitle("quadra"),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.input.SetWidth(msg.Width)
		a.help.Width = msg.Width
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Solve):
			line := strings.TrimSpace(a.input.Value())
			if line == "" {
				return a, nil
			}
			a.input.Reset()
			return a, a.solve(line)
		case key.Matches(msg, a.keys.Clear):
			a.input.Reset()
			a.history = nil
			return a, nil
		case key.Matches(msg, a.keys.Help):
			a.help.ShowAll = !a.help.ShowAll
			return a, nil
		}

	case messages.EquationSolved:
		a.record(msg)
		return a, nil
	}

	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// solve returns a command that parses and solves line.
// Once the app context is done the command reports its error instead.
func (a *App) solve(line string) tea.Cmd {
	ctx := a.ctx
	equations := a.ports.Equations
	return func() tea.Msg {
		if err := ctx.Err(); err != nil {
			return messages.EquationSolved{Line: line, Err: err}
		}
		eq, err := equations.Parse(line)
		if err != nil {
			return messages.EquationSolved{Line: line, Err: err}
		}
		roots, err := equations.Solve(eq)
		return messages.EquationSolved{Line: line, Equation: eq, Roots: roots, Err: err}
	}
}

func (a *App) record(msg messages.EquationSolved) {
	e := entry{line: msg.Line, err: msg.Err}
	if msg.Err == nil {
		e.echo = a.ports.Equations.Echo(msg.Equation)
		e.result = a.ports.Equations.Render(msg.Roots)
	}

	a.history = append(a.history, e)
	if len(a.history) > maxHistory {
		a.history = a.history[len(a.history)-maxHistory:]
	}
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("Quadra: quadratic equation solver"))
	b.WriteString("\n\n")
	b.WriteString(a.input.View())
	b.WriteString("\n\n")

	for i := len(a.history) - 1; i >= 0; i-- {
		b.WriteString(a.viewEntry(a.history[i]))
		b.WriteString("\n")
	}

	b.WriteString(a.help.View(a.keys))
	return b.String()
}

func (a *App) viewEntry(e entry) string {
	lines := []string{a.styles.Muted.Render("> " + e.line)}
	if e.err != nil {
		lines = append(lines, a.styles.Error.Render("Error: "+e.err.Error()))
	} else {
		lines = append(lines, a.styles.Muted.Render(e.echo), a.styles.Result.Render(e.result))
	}
	return a.styles.Entry.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
