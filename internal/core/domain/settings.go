package domain

import "fmt"

// ZeroLeadingPolicy decides what Solve does when a == 0.
type ZeroLeadingPolicy string

// Available policies.
const (
	// ZeroLeadingPreserve divides by zero and reports non-finite roots.
	ZeroLeadingPreserve ZeroLeadingPolicy = "preserve"

	// ZeroLeadingReject refuses with ErrDegenerateEquation.
	ZeroLeadingReject ZeroLeadingPolicy = "reject"

	// ZeroLeadingLinear solves bx + c = 0 instead.
	ZeroLeadingLinear ZeroLeadingPolicy = "linear"
)

// IsValid returns true if the policy is recognised.
func (p ZeroLeadingPolicy) IsValid() bool {
	switch p {
	case ZeroLeadingPreserve, ZeroLeadingReject, ZeroLeadingLinear:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p ZeroLeadingPolicy) String() string {
	return string(p)
}

// Description returns a human-readable description of the policy.
func (p ZeroLeadingPolicy) Description() string {
	switch p {
	case ZeroLeadingPreserve:
		return "Preserve (divide by zero, report NaN/Inf)"
	case ZeroLeadingReject:
		return "Reject (report a degenerate equation)"
	case ZeroLeadingLinear:
		return "Linear (solve bx + c = 0)"
	default:
		return "Unknown"
	}
}

// AllZeroLeadingPolicies returns every policy in display order.
func AllZeroLeadingPolicies() []ZeroLeadingPolicy {
	return []ZeroLeadingPolicy{ZeroLeadingPreserve, ZeroLeadingReject, ZeroLeadingLinear}
}

// MaxPrecision bounds DisplaySettings.Precision.
const MaxPrecision = 10

// DisplaySettings controls rendering.
type DisplaySettings struct {
	// Precision is the number of decimals in rendered numbers.
	Precision int `json:"precision"`

	// ClearScreen writes a terminal-clear sequence before the first prompt.
	ClearScreen bool `json:"clear_screen"`
}

// SessionSettings controls the interactive loop.
type SessionSettings struct {
	// MaxAttempts bounds parse retries. Zero means unlimited.
	MaxAttempts int `json:"max_attempts"`
}

// SolverSettings controls root computation.
type SolverSettings struct {
	ZeroLeading ZeroLeadingPolicy `json:"zero_leading"`
}

// MCPSettings controls the MCP server.
type MCPSettings struct {
	// RateLimit is the sustained tool calls per second. Zero disables limiting.
	RateLimit float64 `json:"rate_limit"`

	// Burst is the maximum burst of tool calls.
	Burst int `json:"burst"`
}

// Settings holds all user-configurable settings.
type Settings struct {
	Display DisplaySettings `json:"display"`
	Session SessionSettings `json:"session"`
	Solver  SolverSettings  `json:"solver"`
	MCP     MCPSettings     `json:"mcp"`
}

// DefaultSettings returns settings that reproduce the classic behaviour.
func DefaultSettings() Settings {
	return Settings{
		Display: DisplaySettings{
			Precision:   2,
			ClearScreen: true,
		},
		Session: SessionSettings{
			MaxAttempts: 0,
		},
		Solver: SolverSettings{
			ZeroLeading: ZeroLeadingPreserve,
		},
		MCP: MCPSettings{
			RateLimit: 10,
			Burst:     20,
		},
	}
}

// Validate checks that every value is in range.
func (s Settings) Validate() error {
	if s.Display.Precision < 0 || s.Display.Precision > MaxPrecision {
		return fmt.Errorf("%w: display.precision must be between 0 and %d, got %d",
			ErrInvalidSetting, MaxPrecision, s.Display.Precision)
	}
	if s.Session.MaxAttempts < 0 {
		return fmt.Errorf("%w: session.max_attempts must not be negative, got %d",
			ErrInvalidSetting, s.Session.MaxAttempts)
	}
	if !s.Solver.ZeroLeading.IsValid() {
		return fmt.Errorf("%w: unknown solver.zero_leading %q", ErrInvalidSetting, s.Solver.ZeroLeading)
	}
	if s.MCP.RateLimit < 0 {
		return fmt.Errorf("%w: mcp.rate_limit must not be negative", ErrInvalidSetting)
	}
	if s.MCP.RateLimit > 0 && s.MCP.Burst < 1 {
		return fmt.Errorf("%w: mcp.burst must be at least 1 when rate limiting", ErrInvalidSetting)
	}
	return nil
}
