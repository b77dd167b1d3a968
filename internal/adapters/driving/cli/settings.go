package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change display, session and solver settings.

Settings are stored in config.toml inside the config directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Change a single setting.

Keys:
  display.precision     decimals in printed numbers (0-10)
  display.clear_screen  clear the terminal before the first prompt
  session.max_attempts  input attempts before giving up (0 = unlimited)
  solver.zero_leading   what to do when a = 0: preserve, reject or linear
  mcp.rate_limit        MCP tool calls per second (0 = unlimited)
  mcp.burst             MCP tool call burst size`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if services == nil {
			return errNotConfigured
		}
		cmd.Println(services.ConfigPath)
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsPathCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if services == nil || services.Settings == nil {
		return errNotConfigured
	}

	settings, err := services.Settings.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Display]")
	cmd.Printf("  Precision: %d\n", settings.Display.Precision)
	cmd.Printf("  Clear screen: %s\n", yesNo(settings.Display.ClearScreen))
	cmd.Println()

	cmd.Println("[Session]")
	if settings.Session.MaxAttempts == 0 {
		cmd.Println("  Max attempts: unlimited")
	} else {
		cmd.Printf("  Max attempts: %d\n", settings.Session.MaxAttempts)
	}
	cmd.Println()

	cmd.Println("[Solver]")
	cmd.Printf("  Zero leading coefficient: %s\n", settings.Solver.ZeroLeading.Description())
	cmd.Println()

	cmd.Println("[MCP]")
	if settings.MCP.RateLimit == 0 {
		cmd.Println("  Rate limit: none")
	} else {
		cmd.Printf("  Rate limit: %g calls/s (burst %d)\n", settings.MCP.RateLimit, settings.MCP.Burst)
	}
	cmd.Println()

	if err := settings.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	} else {
		cmd.Println("Configuration is valid.")
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if services == nil || services.Settings == nil {
		return errNotConfigured
	}

	key, value := args[0], args[1]
	if err := services.Settings.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
