package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/quadra-cli/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/quadra-cli/internal/adapters/driven/console"
	"github.com/custodia-labs/quadra-cli/internal/core/ports/driving"
	coreservices "github.com/custodia-labs/quadra-cli/internal/core/services"
)

// setupTestServices installs a bootstrap backed by an in-memory config
// store. Interactive sessions read from input.
func setupTestServices(t *testing.T, input string) *memory.ConfigStore {
	t.Helper()

	store := memory.NewConfigStore()
	SetBootstrap(func(_ Options) (*Services, error) {
		settingsService := coreservices.NewSettingsService(store)
		settings, err := settingsService.Get()
		if err != nil {
			return nil, err
		}
		equations := coreservices.NewEquationService(*settings)

		return &Services{
			Settings:  settingsService,
			Equations: equations,
			NewSession: func(out io.Writer) driving.Session {
				source := console.NewLineReader(strings.NewReader(input))
				return coreservices.NewSession(equations, source, out, *settings)
			},
			Config:     *settings,
			ConfigPath: store.Path(),
		}, nil
	})

	t.Cleanup(func() {
		bootstrap = nil
		services = nil
		solveJSON = false
		verbose = false
		options = Options{}
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	return store
}

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	if args == nil {
		// A nil slice makes cobra fall back to os.Args.
		args = []string{}
	}

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

// requireOK runs the root command with args and fails the test on error.
func requireOK(t *testing.T, args ...string) string {
	t.Helper()
	out, err := execute(t, args...)
	require.NoError(t, err)
	return out
}
