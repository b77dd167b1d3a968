// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/quadra-cli/internal/adapters/driving/tui/styles"
)

// EquationInput wraps a bubbles textinput for typing one equation.
type EquationInput struct {
	textinput textinput.Model
	styles    *styles.Styles
}

// NewEquationInput creates a focused equation input.
func NewEquationInput(s *styles.Styles) *EquationInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "ax^2 +/- bx +/- c = 0"
	ti.Focus()
	ti.CharLimit = 128
	ti.Width = 40

	return &EquationInput{
		textinput: ti,
		styles:    s,
	}
}

// Init starts the cursor blinking.
func (e *EquationInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (e *EquationInput) Update(msg tea.Msg) (*EquationInput, tea.Cmd) {
	var cmd tea.Cmd
	e.textinput, cmd = e.textinput.Update(msg)
	return e, cmd
}

// View renders the labelled input.
func (e *EquationInput) View() string {
	label := e.styles.Title.Render("Equation: ")
	field := e.styles.InputField.Render(e.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Value returns the current input value.
func (e *EquationInput) Value() string {
	return e.textinput.Value()
}

// SetValue sets the input value.
func (e *EquationInput) SetValue(value string) {
	e.textinput.SetValue(value)
}

// Focused returns whether the input is focused.
func (e *EquationInput) Focused() bool {
	return e.textinput.Focused()
}

// SetWidth sets the width of the input, leaving room for the label.
func (e *EquationInput) SetWidth(width int) {
	inputWidth := width - 16
	if inputWidth < 20 {
		inputWidth = 20
	}
	e.textinput.Width = inputWidth
}

// Reset clears the input.
func (e *EquationInput) Reset() {
	e.textinput.Reset()
}
