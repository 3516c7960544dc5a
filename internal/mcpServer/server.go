package mcpServer

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/akolanti/ResumeRAG/internal/rag"
	"github.com/akolanti/ResumeRAG/internal/resource"
	"github.com/akolanti/ResumeRAG/pkg/logger_i"
)

const serverVersion = "1.0.0"

// Server exposes the retrieval and document tools over the Model Context
// Protocol so desktop assistants can drive them directly.
type Server struct {
	ragService rag.Service
	resources  resource.Manager
	server     *mcp.Server
	logger     *logger_i.Logger
}

func NewServer(ragService rag.Service, resources resource.Manager) *Server {
	s := &Server{
		ragService: ragService,
		resources:  resources,
		server: mcp.NewServer(&mcp.Implementation{
			Name:    "resume-rag",
			Version: serverVersion,
		}, nil),
		logger: logger_i.NewLogger("MCP Server"),
	}
	s.registerTools()
	return s
}

// Run serves the tools over stdio. It blocks until the context is cancelled
// or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("MCP server listening on stdio")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}
