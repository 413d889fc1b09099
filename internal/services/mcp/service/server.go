package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/narrative.dice/internal/platform/branding"
	"github.com/louisbranch/narrative.dice/internal/random"
	"github.com/louisbranch/narrative.dice/internal/services/mcp/domain"
)

// serverName identifies this MCP server to clients.
var serverName = branding.AppName + " MCP"

const (
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// mcpRegistrationTarget is the subset of *mcp.Server that tool modules use.
type mcpRegistrationTarget interface {
	AddTool(tool *mcp.Tool, handler any) error
}

type mcpServerRegistrationAdapter struct {
	server *mcp.Server
}

func (r mcpServerRegistrationAdapter) AddTool(tool *mcp.Tool, handler any) error {
	return addMCPTool(r.server, tool, handler)
}

type mcpToolRegistrar struct {
	matches func(any) bool
	add     func(*mcp.Server, *mcp.Tool, any)
}

func newMCPToolRegistrar[I any, O any]() mcpToolRegistrar {
	return mcpToolRegistrar{
		matches: func(handler any) bool {
			_, ok := handler.(mcp.ToolHandlerFor[I, O])
			return ok
		},
		add: func(server *mcp.Server, tool *mcp.Tool, handler any) {
			mcp.AddTool(server, tool, handler.(mcp.ToolHandlerFor[I, O]))
		},
	}
}

var mcpToolRegistrars = []mcpToolRegistrar{
	newMCPToolRegistrar[domain.RollPoolInput, domain.RollPoolResult](),
	newMCPToolRegistrar[domain.EvaluateFacesInput, domain.PoolResult](),
	newMCPToolRegistrar[domain.FacesInput, domain.FacesResult](),
	newMCPToolRegistrar[domain.NumericRollInput, domain.NumericRollResult](),
}

func addMCPTool(server *mcp.Server, tool *mcp.Tool, handler any) error {
	for _, registrar := range mcpToolRegistrars {
		if registrar.matches(handler) {
			registrar.add(server, tool, handler)
			return nil
		}
	}
	toolName := "<nil>"
	if tool != nil {
		toolName = tool.Name
	}
	return fmt.Errorf("mcp registration adapter does not support handler type %T for tool %q", handler, toolName)
}

func registerDiceTools(registrar mcpRegistrationTarget, seeder domain.Seeder) error {
	tools := []struct {
		tool    *mcp.Tool
		handler any
	}{
		{domain.RollPoolTool(), domain.RollPoolHandler(seeder)},
		{domain.EvaluateFacesTool(), domain.EvaluateFacesHandler()},
		{domain.FacesTool(), domain.FacesHandler()},
		{domain.NumericRollTool(), domain.NumericRollHandler(seeder)},
	}
	for _, entry := range tools {
		if err := registrar.AddTool(entry.tool, entry.handler); err != nil {
			return err
		}
	}
	return nil
}

// Server hosts the MCP server.
type Server struct {
	mcpServer *mcp.Server
}

// New creates a configured MCP server with the dice tools registered.
func New() (*Server, error) {
	return newServer(random.NewSeed)
}

func newServer(seeder domain.Seeder) (*Server, error) {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, &mcp.ServerOptions{
		CompletionHandler: completionHandler,
	})
	if err := registerDiceTools(mcpServerRegistrationAdapter{server: mcpServer}, seeder); err != nil {
		return nil, fmt.Errorf("register MCP dice tools: %w", err)
	}
	return &Server{mcpServer: mcpServer}, nil
}

// completionHandler handles completion/complete requests with empty results.
func completionHandler(ctx context.Context, req *mcp.CompleteRequest) (*mcp.CompleteResult, error) {
	return &mcp.CompleteResult{
		Completion: mcp.CompletionResultDetails{
			Values: []string{},
		},
	}, nil
}

// Run is the service entrypoint for MCP over stdio and blocks until context
// cancellation or the client disconnects.
func Run(ctx context.Context) error {
	server, err := New()
	if err != nil {
		return err
	}
	return server.serveWithTransport(ctx, &mcp.StdioTransport{})
}

func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}
