package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for Quadra resources.
	uriScheme = "quadra://"

	grammarText = `Accepted input forms:
  ax^2 +/- bx +/- c = 0
  ax^2 +/- bx = 0
  ax^2 +/- c = 0

Terms are separated by spaces. A comma may be used as the decimal separator.
An empty or "-" prefix before x^2 means a coefficient of 1 or -1.`
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "grammar",
		Name:        "grammar",
		Description: "Input forms accepted by the equation parser",
		MIMEType:    "text/plain",
	}, s.handleGrammarResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Current display, session, solver and MCP settings",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)

	// Template for solving a path-escaped equation.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "equations/{equation}",
		Name:        "equation-roots",
		Description: "Roots of a path-escaped equation such as x%5E2%20-%201%20%3D%200",
		MIMEType:    "application/json",
	}, s.handleEquationResource)
}

// handleGrammarResource returns the accepted input forms.
func (s *Server) handleGrammarResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if err := s.throttle(ctx, "grammar"); err != nil {
		return nil, err
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     grammarText,
		}},
	}, nil
}

// handleSettingsResource returns the current settings as JSON.
func (s *Server) handleSettingsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Settings == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err := s.throttle(ctx, "settings"); err != nil {
		return nil, err
	}

	settings, err := s.ports.Settings.Get()
	if err != nil {
		return nil, fmt.Errorf("getting settings: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling settings: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleEquationResource solves the equation named by the URI.
func (s *Server) handleEquationResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	line := extractEquation(req.Params.URI)
	if line == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err := s.throttle(ctx, "equation"); err != nil {
		return nil, err
	}

	out, err := s.solve(line)
	if err != nil {
		return nil, fmt.Errorf("solving %q: %w", line, err)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling roots: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractEquation extracts the unescaped equation from a URI like quadra://equations/{equation}.
func extractEquation(uri string) string {
	const prefix = uriScheme + "equations/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	line, err := url.PathUnescape(strings.TrimPrefix(uri, prefix))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}
