package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/quadra-cli/internal/core/domain"
)

var solveJSON bool

var solveCmd = &cobra.Command{
	Use:   "solve [equation]",
	Short: "Solve one equation and exit",
	Long: `Solves the equation given as arguments without prompting.
Quote the equation so that terms such as "-3x" are not read as flags.

Example:
  quadra solve "2x^2 - 3x + 4 = 0"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&solveJSON, "json", false, "output the result as JSON")
	rootCmd.AddCommand(solveCmd)
}

// solveResult is the JSON shape of a solve.
type solveResult struct {
	Equation     domain.Equation `json:"equation"`
	Discriminant float64         `json:"discriminant"`
	Roots        domain.RootSet  `json:"roots"`
}

func runSolve(cmd *cobra.Command, args []string) error {
	if services == nil || services.Equations == nil {
		return errNotConfigured
	}

	eq, err := services.Equations.Parse(strings.Join(args, " "))
	if err != nil {
		return err
	}
	roots, err := services.Equations.Solve(eq)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if solveJSON {
		data, err := json.MarshalIndent(solveResult{
			Equation:     eq,
			Discriminant: eq.Discriminant(),
			Roots:        roots,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintln(out, services.Equations.Echo(eq))
	fmt.Fprintln(out, services.Equations.Render(roots))
	return nil
}
