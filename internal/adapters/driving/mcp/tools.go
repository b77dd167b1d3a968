package mcp

import (
	"context"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/quadra-cli/internal/core/domain"
)

// EquationInput is the input schema for the equation tools.
type EquationInput struct {
	Equation string `json:"equation" jsonschema:"a quadratic equation such as 2x^2 - 3x + 4 = 0"`
}

// CoefficientsOutput holds the parsed coefficients.
// Numbers are decimal strings so non-finite values survive JSON encoding.
type CoefficientsOutput struct {
	A string `json:"a"`
	B string `json:"b"`
	C string `json:"c"`
}

// ParseOutput is the output schema for the parse_equation tool.
type ParseOutput struct {
	Coefficients CoefficientsOutput `json:"coefficients"`
	Normalised   string             `json:"normalised"`
}

// SolveOutput is the output schema for the solve_quadratic tool.
type SolveOutput struct {
	Coefficients CoefficientsOutput `json:"coefficients"`
	Discriminant string             `json:"discriminant"`
	Kind         string             `json:"kind"`
	Roots        []string           `json:"roots,omitempty"`
	Real         string             `json:"real,omitempty"`
	Imaginary    string             `json:"imaginary,omitempty"`
	Text         string             `json:"text"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "parse_equation",
		Description: "Parse a quadratic equation into its coefficients a, b and c",
	}, s.handleParse)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "solve_quadratic",
		Description: "Solve a quadratic equation and return its real or complex roots",
	}, s.handleSolve)
}

// handleParse handles the parse_equation tool invocation.
func (s *Server) handleParse(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input EquationInput,
) (*mcp.CallToolResult, ParseOutput, error) {
	if err := s.throttle(ctx, "parse_equation"); err != nil {
		return nil, ParseOutput{}, err
	}

	eq, err := s.ports.Equations.Parse(input.Equation)
	if err != nil {
		return nil, ParseOutput{}, err
	}

	return nil, ParseOutput{
		Coefficients: coefficients(eq),
		Normalised:   eq.String(),
	}, nil
}

// handleSolve handles the solve_quadratic tool invocation.
func (s *Server) handleSolve(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input EquationInput,
) (*mcp.CallToolResult, SolveOutput, error) {
	if err := s.throttle(ctx, "solve_quadratic"); err != nil {
		return nil, SolveOutput{}, err
	}

	out, err := s.solve(input.Equation)
	if err != nil {
		return nil, SolveOutput{}, err
	}
	return nil, out, nil
}

func (s *Server) solve(line string) (SolveOutput, error) {
	eq, err := s.ports.Equations.Parse(line)
	if err != nil {
		return SolveOutput{}, err
	}
	roots, err := s.ports.Equations.Solve(eq)
	if err != nil {
		return SolveOutput{}, err
	}

	out := SolveOutput{
		Coefficients: coefficients(eq),
		Discriminant: number(eq.Discriminant()),
		Kind:         roots.Kind.String(),
		Text:         s.ports.Equations.Render(roots),
	}
	for _, r := range roots.Real {
		out.Roots = append(out.Roots, number(r))
	}
	if roots.Complex != nil {
		out.Real = number(roots.Complex.Real)
		out.Imaginary = number(roots.Complex.Imag)
	}
	return out, nil
}

func coefficients(eq domain.Equation) CoefficientsOutput {
	return CoefficientsOutput{
		A: number(eq.A),
		B: number(eq.B),
		C: number(eq.C),
	}
}

// number formats v with the shortest exact representation.
func number(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
