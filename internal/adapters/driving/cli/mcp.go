package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/quadra-cli/internal/adapters/driving/mcp"
	"github.com/custodia-labs/quadra-cli/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can parse and
solve equations.

Tools:
  parse_equation   coefficients of an equation
  solve_quadratic  roots of an equation

Resources:
  quadra://grammar              accepted input forms
  quadra://settings             current settings
  quadra://equations/{equation} roots of a path-escaped equation

By default, the server communicates over stdio using JSON-RPC. Use --port
to serve over HTTP instead. Calls are throttled by mcp.rate_limit and
mcp.burst; edits to config.toml while the server runs take effect
without a restart.

Examples:
  # Stdio mode (default)
  quadra mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  quadra mcp serve --port 8080`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

// newMCPServer builds the MCP server from the configured services.
func newMCPServer() (*mcp.Server, error) {
	if services == nil {
		return nil, errNotConfigured
	}

	ports := &mcp.Ports{
		Equations: services.Equations,
		Settings:  services.Settings,
	}
	return mcp.NewServer(ports, services.Config.MCP)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	server, err := newMCPServer()
	if err != nil {
		return err
	}

	if services.Watcher != nil {
		go func() {
			if err := services.Watcher.Watch(cmd.Context(), func() { reloadLimits(server) }); err != nil {
				logger.Warn("config watch stopped: %v", err)
			}
		}()
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}

// reloadLimits re-reads settings and applies the MCP rate limits.
// Invalid settings leave the current limits in place.
func reloadLimits(server *mcp.Server) {
	settings, err := services.Settings.Get()
	if err != nil {
		logger.Warn("reloading settings: %v", err)
		return
	}
	if err := settings.Validate(); err != nil {
		logger.Warn("ignoring reloaded settings: %v", err)
		return
	}
	if settings.MCP != server.Limits() {
		server.SetLimits(settings.MCP)
	}
}
