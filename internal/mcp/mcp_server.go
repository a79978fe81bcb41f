// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/4NDR3-S01/ExposIA/core"
	"github.com/4NDR3-S01/ExposIA/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the grading MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(svc *core.Service) *server.MCPServer {
	s := server.NewMCPServer(
		"Grading Reconciliation Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{svc: svc}

	s.AddTool(mcp.NewTool("get_grading",
		mcp.WithDescription("Fetch one grading with its detail scores and feedback."),
		mcp.WithNumber("grading_id", mcp.Description("Identifier of the grading."), mcp.Required()),
	), h.handleGetGrading)

	s.AddTool(mcp.NewTool("list_gradings",
		mcp.WithDescription("List gradings. With a limit, only the best scored gradings are returned."),
		mcp.WithNumber("limit", mcp.Description("Return only the top N gradings by global score.")),
		mcp.WithString("type", mcp.Description("Only return gradings of this type."),
			mcp.Enum(string(schema.AIGrading), string(schema.ManualGrading), string(schema.FinalGrading))),
	), h.handleListGradings)

	s.AddTool(mcp.NewTool("apply_ai_grading",
		mcp.WithDescription("Merge an AI grading payload into an existing grading and return the result."),
		mcp.WithNumber("grading_id", mcp.Description("Identifier of the grading to reconcile."), mcp.Required()),
		mcp.WithString("payload", mcp.Description("AI grading payload as JSON: globalScore, globalObservation, details[], feedback[]."), mcp.Required()),
	), h.handleApplyAIGrading)

	return s
}

// StartMCPServer starts the grading MCP server on stdio.
func StartMCPServer(_ context.Context, svc *core.Service) error {
	s := NewMCPServer(svc)
	return server.ServeStdio(s)
}
