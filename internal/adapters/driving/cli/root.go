// Package cli provides the cobra command tree for Quadra.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/quadra-cli/internal/core/domain"
	"github.com/custodia-labs/quadra-cli/internal/core/ports/driven"
	"github.com/custodia-labs/quadra-cli/internal/core/ports/driving"
	"github.com/custodia-labs/quadra-cli/internal/logger"
)

// Options carries the global flags to the bootstrap function.
type Options struct {
	// ConfigDir overrides the directory holding config.toml.
	ConfigDir string

	// NoConfig uses in-memory defaults instead of the config file.
	NoConfig bool
}

// Services holds the core services the commands drive.
type Services struct {
	Settings  driving.SettingsService
	Equations driving.EquationService

	// NewSession creates an interactive session writing to out.
	NewSession func(out io.Writer) driving.Session

	// Config is the settings snapshot the services were built with.
	Config domain.Settings

	// ConfigPath is where settings are persisted.
	ConfigPath string

	// Watcher reports config file changes. Nil when no file is used.
	Watcher driven.ConfigWatcher
}

// Bootstrap builds Services once global flags are parsed.
type Bootstrap func(opts Options) (*Services, error)

var (
	version   = "dev"
	verbose   bool
	options   Options
	bootstrap Bootstrap
	services  *Services
)

var errNotConfigured = errors.New("services not configured")

var rootCmd = &cobra.Command{
	Use:   "quadra",
	Short: "Solve quadratic equations typed as text",
	Long: `Quadra reads a quadratic equation from standard input, prints its
coefficients and solves it. Input is re-requested until it parses.

Accepted input forms:
  ax^2 +/- bx +/- c = 0
  ax^2 +/- bx = 0
  ax^2 +/- c = 0

Commas are accepted as decimal separators.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
	RunE:              runInteractive,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print pipeline details to stderr")
	rootCmd.PersistentFlags().StringVar(&options.ConfigDir, "config", "", "config directory (default ~/.quadra)")
	rootCmd.PersistentFlags().BoolVar(&options.NoConfig, "no-config", false, "ignore the config file and use defaults")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetBootstrap sets the function used to build services.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// Execute runs the root command until it finishes or the process is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if bootstrap == nil {
		return nil
	}

	built, err := bootstrap(options)
	if err != nil {
		return fmt.Errorf("failed to initialise: %w", err)
	}
	services = built
	logger.Debug("config: %s", services.ConfigPath)
	return nil
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	if services == nil || services.NewSession == nil {
		return errNotConfigured
	}

	logger.Section("Session")
	if _, err := services.NewSession(cmd.OutOrStdout()).Run(cmd.Context()); err != nil {
		return fmt.Errorf("session ended: %w", err)
	}
	return nil
}
