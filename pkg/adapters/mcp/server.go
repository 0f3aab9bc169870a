package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/macexpect"
	"github.com/aretw0/macexpect/pkg/config"
	"github.com/aretw0/macexpect/pkg/ports"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ExpectationResponse is the structured output of the compute_expectation tool.
type ExpectationResponse struct {
	ExpectedTime   float64 `json:"expected_time" jsonschema_description:"Expected number of slots until every node has replied"`
	ExpectedEnergy float64 `json:"expected_energy" jsonschema_description:"Expected total energy of all nodes in mW·s"`
	TerminalStates int     `json:"terminal_states" jsonschema_description:"Number of enumerated branches where every node replied"`
	MaxElapsed     int     `json:"max_elapsed" jsonschema_description:"Latest completion slot over all branches"`
}

// Server wraps an Analyzer and exposes it as an MCP Server.
type Server struct {
	analyzer  ports.Analyzer
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(analyzer ports.Analyzer) *Server {
	s := &Server{
		analyzer:  analyzer,
		mcpServer: server.NewMCPServer("macexpect-mcp", strings.TrimSpace(macexpect.Version)),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	computeTool := mcp.NewTool("compute_expectation",
		mcp.WithDescription("Compute the exact expected completion time and energy of the duty-cycled MAC polling protocol."),
		mcp.WithString("overrides", mcp.Description("Optional model overrides as key=value pairs separated by ';', e.g. 'listen_cost=20;wake_periods=4,6,12'")),
		mcp.WithOutputSchema[ExpectationResponse](),
	)
	s.mcpServer.AddTool(computeTool, mcp.NewStructuredToolHandler(s.handleCompute))
}

func (s *Server) handleCompute(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ExpectationResponse, error) {
	var pairs []string
	if raw, ok := args["overrides"].(string); ok {
		for _, pair := range strings.Split(raw, ";") {
			if pair = strings.TrimSpace(pair); pair != "" {
				pairs = append(pairs, pair)
			}
		}
	}

	overrides, err := config.ParseOverrides(pairs)
	if err != nil {
		return ExpectationResponse{}, err
	}
	model, err := config.Apply(config.Default(), overrides)
	if err != nil {
		return ExpectationResponse{}, err
	}

	res, err := s.analyzer.Analyze(ctx, model)
	if err != nil {
		return ExpectationResponse{}, fmt.Errorf("analyze failed: %w", err)
	}

	return ExpectationResponse{
		ExpectedTime:   res.ExpectedTime,
		ExpectedEnergy: res.ExpectedEnergy,
		TerminalStates: res.TerminalStates,
		MaxElapsed:     res.MaxElapsed,
	}, nil
}
