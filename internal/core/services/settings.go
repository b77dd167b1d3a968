package services

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/quadra-cli/internal/core/domain"
	"github.com/custodia-labs/quadra-cli/internal/core/ports/driven"
	"github.com/custodia-labs/quadra-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyPrecision   = "display.precision"
	keyClearScreen = "display.clear_screen"
	keyMaxAttempts = "session.max_attempts"
	keyZeroLeading = "solver.zero_leading"
	keyRateLimit   = "mcp.rate_limit"
	keyBurst       = "mcp.burst"
)

var settingKeys = []string{
	keyPrecision,
	keyClearScreen,
	keyMaxAttempts,
	keyZeroLeading,
	keyRateLimit,
	keyBurst,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings. Missing or invalid values fall back to
// the defaults key by key.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := &domain.Settings{
		Display: domain.DisplaySettings{
			Precision:   s.getInt(keyPrecision, defaults.Display.Precision),
			ClearScreen: s.getBool(keyClearScreen, defaults.Display.ClearScreen),
		},
		Session: domain.SessionSettings{
			MaxAttempts: s.getInt(keyMaxAttempts, defaults.Session.MaxAttempts),
		},
		Solver: domain.SolverSettings{
			ZeroLeading: s.getZeroLeading(defaults.Solver.ZeroLeading),
		},
		MCP: domain.MCPSettings{
			RateLimit: s.getFloat(keyRateLimit, defaults.MCP.RateLimit),
			Burst:     s.getInt(keyBurst, defaults.MCP.Burst),
		},
	}

	if settings.Display.Precision < 0 || settings.Display.Precision > domain.MaxPrecision {
		settings.Display.Precision = defaults.Display.Precision
	}
	if settings.Session.MaxAttempts < 0 {
		settings.Session.MaxAttempts = defaults.Session.MaxAttempts
	}

	return settings, nil
}

// Save validates and persists settings.
func (s *SettingsService) Save(settings *domain.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	values := map[string]any{
		keyPrecision:   settings.Display.Precision,
		keyClearScreen: settings.Display.ClearScreen,
		keyMaxAttempts: settings.Session.MaxAttempts,
		keyZeroLeading: settings.Solver.ZeroLeading.String(),
		keyRateLimit:   settings.MCP.RateLimit,
		keyBurst:       settings.MCP.Burst,
	}
	for _, key := range settingKeys {
		if err := s.configStore.Set(key, values[key]); err != nil {
			return fmt.Errorf("failed to save %s: %w", key, err)
		}
	}
	return nil
}

// Set parses value for key, validates the result and persists it.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	var stored any
	switch key {
	case keyPrecision:
		n, err := parseIntSetting(key, value)
		if err != nil {
			return err
		}
		settings.Display.Precision, stored = n, n
	case keyClearScreen:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidSetting, key)
		}
		settings.Display.ClearScreen, stored = b, b
	case keyMaxAttempts:
		n, err := parseIntSetting(key, value)
		if err != nil {
			return err
		}
		settings.Session.MaxAttempts, stored = n, n
	case keyZeroLeading:
		settings.Solver.ZeroLeading = domain.ZeroLeadingPolicy(value)
		stored = value
	case keyRateLimit:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%w: %s must be a number", domain.ErrInvalidSetting, key)
		}
		settings.MCP.RateLimit, stored = f, f
	case keyBurst:
		n, err := parseIntSetting(key, value)
		if err != nil {
			return err
		}
		settings.MCP.Burst, stored = n, n
	default:
		return fmt.Errorf("%w: unknown key %q", domain.ErrInvalidSetting, key)
	}

	if err := settings.Validate(); err != nil {
		return err
	}
	return s.configStore.Set(key, stored)
}

// Keys lists the recognised setting keys.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingKeys))
	copy(keys, settingKeys)
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

func parseIntSetting(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidSetting, key)
	}
	return n, nil
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	val, ok := s.configStore.Get(key)
	if !ok {
		return defaultVal
	}
	if _, isBool := val.(bool); !isBool {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getZeroLeading(defaultVal domain.ZeroLeadingPolicy) domain.ZeroLeadingPolicy {
	p := domain.ZeroLeadingPolicy(s.configStore.GetString(keyZeroLeading))
	if !p.IsValid() {
		return defaultVal
	}
	return p
}
