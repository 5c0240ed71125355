package mcp

import (
	"context"
	"encoding/json"

	"github.com/claude/vaultlog/internal/units"
	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) personalRecord(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	pr, err := h.ds.PersonalRecord(ctx)
	if err != nil {
		return nil, err
	}
	set, err := h.ds.Settings(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(map[string]any{
		"personalRecordIn": pr,
		"formatted":        units.FormatBar(pr, set.Units),
		"units":            set.Units,
	})
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (h *handlers) weeklyPlan(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	plan, err := h.ds.WeeklyPlan(ctx)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(plan)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
