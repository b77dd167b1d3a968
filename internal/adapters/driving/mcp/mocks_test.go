package mcp

import (
	"github.com/custodia-labs/quadra-cli/internal/core/domain"
	"github.com/custodia-labs/quadra-cli/internal/core/ports/driving"
)

// mockEquationService is a mock implementation of driving.EquationService.
type mockEquationService struct {
	equation domain.Equation
	parseErr error
	roots    domain.RootSet
	solveErr error
	rendered string

	parsed []string
}

func (m *mockEquationService) Parse(line string) (domain.Equation, error) {
	m.parsed = append(m.parsed, line)
	if m.parseErr != nil {
		return domain.Equation{}, m.parseErr
	}
	return m.equation, nil
}

func (m *mockEquationService) Solve(_ domain.Equation) (domain.RootSet, error) {
	return m.roots, m.solveErr
}

func (m *mockEquationService) Render(_ domain.RootSet) string {
	return m.rendered
}

func (m *mockEquationService) Echo(eq domain.Equation) string {
	return eq.String()
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.Settings
	err      error
}

func (m *mockSettingsService) Get() (*domain.Settings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) Save(_ *domain.Settings) error {
	return m.err
}

func (m *mockSettingsService) Set(_, _ string) error {
	return m.err
}

func (m *mockSettingsService) Keys() []string {
	return nil
}

func (m *mockSettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

// Verify interface compliance.
var (
	_ driving.EquationService = (*mockEquationService)(nil)
	_ driving.SettingsService = (*mockSettingsService)(nil)
)

// unlimited disables rate limiting in tests.
var unlimited = domain.MCPSettings{}

func twoRealService() *mockEquationService {
	return &mockEquationService{
		equation: domain.Equation{A: 1, B: -3, C: 2},
		roots:    domain.RootSet{Kind: domain.TwoReal, Real: []float64{1, 2}},
		rendered: "x1 ≈ 1.00\nx2 ≈ 2.00",
	}
}
