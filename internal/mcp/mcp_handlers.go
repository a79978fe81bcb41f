package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/4NDR3-S01/ExposIA/core"
	"github.com/4NDR3-S01/ExposIA/core/algo"
	"github.com/4NDR3-S01/ExposIA/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	svc *core.Service
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

func gradingID(request mcp.CallToolRequest) (int64, error) {
	id := request.GetInt("grading_id", 0)
	if id <= 0 {
		return 0, fmt.Errorf("grading_id must be a positive integer")
	}
	return int64(id), nil
}

func (h *toolHandler) handleGetGrading(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := gradingID(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	agg, err := h.svc.GetGrading(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("get grading failed: %v", err)), nil
	}
	return jsonResult(agg)
}

func (h *toolHandler) handleListGradings(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	gradings, err := h.svc.ListGradings(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("list gradings failed: %v", err)), nil
	}
	if t := request.GetString("type", ""); t != "" {
		filtered := gradings[:0]
		for _, g := range gradings {
			if string(g.Type) == t {
				filtered = append(filtered, g)
			}
		}
		gradings = filtered
	}
	if l := request.GetInt("limit", 0); l > 0 {
		gradings = algo.RankGradings(gradings, l)
	}
	if gradings == nil {
		gradings = []schema.Grading{}
	}
	return jsonResult(gradings)
}

func (h *toolHandler) handleApplyAIGrading(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := gradingID(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	var payload schema.AIGradingPayload
	if err := json.Unmarshal([]byte(request.GetString("payload", "")), &payload); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid payload: %v", err)), nil
	}
	agg, err := h.svc.Reconcile(ctx, id, payload)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("reconciliation failed: %v", err)), nil
	}
	return jsonResult(agg)
}
