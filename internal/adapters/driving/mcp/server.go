package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/quadra-cli/internal/core/domain"
	"github.com/custodia-labs/quadra-cli/internal/logger"
)

// Version is the MCP server version.
const Version = "0.1.0"

// Server is the MCP server for Quadra.
type Server struct {
	ports   *Ports
	limiter *RateLimiter
	server  *mcp.Server
}

// NewServer creates a new MCP server with the given ports.
// Calls are throttled according to limits.
func NewServer(ports *Ports, limits domain.MCPSettings) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    "quadra",
		Version: Version,
	}

	s := &Server{
		ports:   ports,
		limiter: NewRateLimiter(limits),
		server:  mcp.NewServer(impl, nil),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	logger.Info("mcp: serving over stdio")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP starts the MCP server over HTTP on the specified address.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown when context is cancelled
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	logger.Info("mcp: serving over http on %s", addr)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// SetLimits applies new rate limits to subsequent calls.
func (s *Server) SetLimits(limits domain.MCPSettings) {
	s.limiter.SetLimits(limits)
	logger.Info("mcp: rate limit %g/s, burst %d", limits.RateLimit, limits.Burst)
}

// Limits returns the rate limits in effect.
func (s *Server) Limits() domain.MCPSettings {
	return s.limiter.Limits()
}

// throttle waits for the rate limiter before a call named name.
func (s *Server) throttle(ctx context.Context, name string) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%s: rate limited: %w", name, err)
	}
	logger.Debug("mcp: %s", name)
	return nil
}
