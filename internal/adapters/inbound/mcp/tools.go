package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/openkraft/htmlcheck/internal/adapters/outbound/config"
	"github.com/openkraft/htmlcheck/internal/adapters/outbound/gitinfo"
	"github.com/openkraft/htmlcheck/internal/adapters/outbound/history"
	"github.com/openkraft/htmlcheck/internal/adapters/outbound/report"
	"github.com/openkraft/htmlcheck/internal/application"
	"github.com/openkraft/htmlcheck/internal/domain"
)

const reportArgDescription = `Validator JSON output: {"messages": [...]} or a bare array of messages`

// registerTools registers all htmlcheck MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string, logger *slog.Logger) {
	// 1. htmlcheck_comments
	s.AddTool(
		mcplib.NewTool("htmlcheck_comments",
			mcplib.WithDescription("Convert validator errors and warnings for a file into review comments"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path of the validated file (.html, .css or .svg)"),
			),
			mcplib.WithString("report", mcplib.Required(), mcplib.Description(reportArgDescription)),
		),
		handleComments(),
	)

	// 2. htmlcheck_summary
	s.AddTool(
		mcplib.NewTool("htmlcheck_summary",
			mcplib.WithDescription("Render validator messages as a readable summary"),
			mcplib.WithString("report", mcplib.Required(), mcplib.Description(reportArgDescription)),
		),
		handleSummary(),
	)

	// 3. htmlcheck_review
	s.AddTool(
		mcplib.NewTool("htmlcheck_review",
			mcplib.WithDescription("Review a validated file using project settings. Returns comments, summary and pass/warn/fail status."),
			mcplib.WithString("file", mcplib.Required(), mcplib.Description("Path of the validated file")),
			mcplib.WithString("report", mcplib.Required(), mcplib.Description(reportArgDescription)),
			mcplib.WithBoolean("strict", mcplib.Description("Fail on warnings")),
		),
		handleReview(projectPath, logger),
	)
}

func newReviewService(logger *slog.Logger) *application.ReviewService {
	return application.NewReviewService(config.New(), history.New(), gitinfo.New(), logger)
}

func parseReport(request mcplib.CallToolRequest) ([]domain.DiagnosticMessage, error) {
	raw, err := request.RequireString("report")
	if err != nil {
		return nil, err
	}
	return report.New().Load(strings.NewReader(raw))
}

func handleComments() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		messages, err := parseReport(request)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(domain.BuildReviewComments(file, messages))
	}
}

func handleSummary() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		messages, err := parseReport(request)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return textResult(domain.FormatMessagesSummary(messages)), nil
	}
}

func handleReview(projectPath string, logger *slog.Logger) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		messages, err := parseReport(request)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		strict, _ := request.GetArguments()["strict"].(bool)

		result, err := newReviewService(logger).Review(application.ReviewRequest{
			ProjectPath: projectPath,
			FilePath:    file,
			Messages:    messages,
			Strict:      strict,
		})
		if err != nil {
			return errorResult(fmt.Sprintf("review failed: %v", err)), nil
		}
		return jsonResult(result)
	}
}

// jsonResult marshals v as indented JSON text content.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
