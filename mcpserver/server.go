// Package mcpserver serves the visualization catalog over the Model Context
// Protocol.
//
// Every catalog tool is exposed as an MCP tool named "<name>_<namespace>",
// for example "generate_visualization". Tool results carry the handler output
// both as structured content and as JSON text content.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jonwraymond/vizexec/catalog"
)

// Default implementation metadata.
const (
	DefaultName    = "vizexec"
	DefaultVersion = "v0.1.0"
)

// ErrCatalogRequired is returned when no catalog is configured.
var ErrCatalogRequired = errors.New("mcpserver: Catalog is required")

// Logger is the interface for logging.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: logging must be best-effort and must not panic.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Config configures a Server.
type Config struct {
	// Catalog provides the tools to serve.
	// Required.
	Catalog *catalog.Catalog

	// Name and Version identify the server implementation.
	// Defaults: DefaultName, DefaultVersion
	Name    string
	Version string

	// Logger is an optional logger for tool calls.
	Logger Logger
}

// Server exposes catalog tools over MCP.
type Server struct {
	catalog *catalog.Catalog
	server  *mcp.Server
	logger  Logger
	names   map[string]string
}

// New creates a Server and registers every catalog tool.
func New(cfg Config) (*Server, error) {
	if cfg.Catalog == nil {
		return nil, ErrCatalogRequired
	}
	if cfg.Name == "" {
		cfg.Name = DefaultName
	}
	if cfg.Version == "" {
		cfg.Version = DefaultVersion
	}

	s := &Server{
		catalog: cfg.Catalog,
		server:  mcp.NewServer(&mcp.Implementation{Name: cfg.Name, Version: cfg.Version}, nil),
		logger:  cfg.Logger,
		names:   make(map[string]string),
	}

	for _, t := range cfg.Catalog.Tools() {
		tool := t.Tool
		id := cfg.Catalog.ToolID(tool.Name)
		tool.Name = ToolName(tool.Name, t.Namespace)
		s.names[tool.Name] = id
		s.server.AddTool(&tool, s.handler(id))
	}
	return s, nil
}

// ToolName returns the MCP tool name for a catalog tool.
func ToolName(name, namespace string) string {
	if namespace == "" {
		return name
	}
	return name + "_" + namespace
}

// MCP returns the underlying MCP server.
func (s *Server) MCP() *mcp.Server {
	return s.server
}

// Run serves on t until the client disconnects or ctx is canceled.
func (s *Server) Run(ctx context.Context, t mcp.Transport) error {
	s.logInfo("mcp server starting", "tools", len(s.names))
	return s.server.Run(ctx, t)
}

func (s *Server) handler(id string) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := map[string]any{}
		if req.Params != nil && len(req.Params.Arguments) > 0 {
			if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
				return errorResult(fmt.Errorf("%w: %v", catalog.ErrInvalidArgs, err)), nil
			}
		}

		out, err := s.catalog.Run(ctx, id, args)
		if err != nil {
			s.logWarn("tool call failed", "tool", id, "error", err)
			return errorResult(err), nil
		}

		text, err := json.Marshal(out)
		if err != nil {
			return nil, fmt.Errorf("encode %s result: %w", id, err)
		}
		s.logInfo("tool call completed", "tool", id)

		result := &mcp.CallToolResult{
			Content:           []mcp.Content{&mcp.TextContent{Text: string(text)}},
			StructuredContent: out,
		}
		if g, ok := out.(catalog.GenerateResult); ok && g.Error != "" {
			result.IsError = true
		}
		return result, nil
	}
}

func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
		IsError: true,
	}
}

func (s *Server) logInfo(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Info(msg, args...)
	}
}

func (s *Server) logWarn(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}
