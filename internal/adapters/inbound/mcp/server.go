package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"
)

// NewHTMLCheckMCPServer creates a new MCP server with all htmlcheck tools and
// resources registered. The projectPath is the directory holding
// .htmlcheck.yaml and the review history.
func NewHTMLCheckMCPServer(projectPath string, logger *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer(
		"htmlcheck",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath, logger)
	registerResources(s, projectPath)

	return s
}
