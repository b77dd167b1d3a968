// Command quadra solves quadratic equations typed as text.
package main

import (
	"io"
	"os"

	"github.com/custodia-labs/quadra-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/quadra-cli/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/quadra-cli/internal/adapters/driven/console"
	"github.com/custodia-labs/quadra-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/quadra-cli/internal/core/ports/driven"
	"github.com/custodia-labs/quadra-cli/internal/core/ports/driving"
	"github.com/custodia-labs/quadra-cli/internal/core/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// bootstrap wires adapters into the core services.
func bootstrap(opts cli.Options) (*cli.Services, error) {
	var (
		store   driven.ConfigStore
		watcher driven.ConfigWatcher
	)
	if opts.NoConfig {
		store = memory.NewConfigStore()
	} else {
		fileStore, err := file.NewConfigStore(opts.ConfigDir)
		if err != nil {
			return nil, err
		}
		store, watcher = fileStore, fileStore
	}

	settingsService := services.NewSettingsService(store)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, err
	}

	equations := services.NewEquationService(*settings)
	stdin := console.NewLineReader(os.Stdin)

	return &cli.Services{
		Settings:  settingsService,
		Equations: equations,
		NewSession: func(out io.Writer) driving.Session {
			return services.NewSession(equations, stdin, out, *settings)
		},
		Config:     *settings,
		ConfigPath: store.Path(),
		Watcher:    watcher,
	}, nil
}
