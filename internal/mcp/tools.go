package mcp

import (
	"context"

	"github.com/claude/vaultlog/internal/export"
	"github.com/claude/vaultlog/internal/models"
	"github.com/claude/vaultlog/internal/units"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolGetSessions = mcp.NewTool("get_sessions",
	mcp.WithDescription("List logged sessions, newest first. Each session includes its poles, setup numbers, and bar-by-bar attempt results."),
	mcp.WithString("type", mcp.Description("Filter by session type"), mcp.Enum("practice", "meet")),
	mcp.WithNumber("limit", mcp.Description("Maximum number of sessions to return. Defaults to 20.")),
)

var toolGetSessionSummary = mcp.NewTool("get_session_summary",
	mcp.WithDescription("Render one session as the shareable plain-text summary: header, athlete line, attempt marks, setup block, and notes."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Session id")),
)

var toolGetPersonalRecord = mcp.NewTool("get_personal_record",
	mcp.WithDescription("The athlete's personal record: the highest bar cleared across all meet sessions. 0 means no clearance logged yet."),
)

var toolGetSetupAverages = mcp.NewTool("get_setup_averages",
	mcp.WithDescription("Mean takeoff mark, standards setting, and step count across all logged sessions, unset values excluded."),
)

var toolGetWeeklyPlan = mcp.NewTool("get_weekly_plan",
	mcp.WithDescription("The active weekly training plan. Optionally narrow to one day."),
	mcp.WithString("day", mcp.Description("Weekday name, e.g. 'Wednesday'"),
		mcp.Enum("Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday")),
)

// --- Tool handlers ---

func (h *handlers) getSessions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	typeFilter := req.GetString("type", "")
	limit := req.GetInt("limit", 20)
	if limit <= 0 {
		limit = 20
	}

	sessions, err := h.ds.Sessions(ctx)
	if err != nil {
		h.log.Error("mcp get_sessions", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	out := make([]models.Session, 0, limit)
	for i := range sessions {
		if typeFilter != "" && string(sessions[i].Type) != typeFilter {
			continue
		}
		out = append(out, sessions[i])
		if len(out) == limit {
			break
		}
	}

	result, err := mcp.NewToolResultJSON(out)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getSessionSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}

	sess, err := h.ds.Session(ctx, id)
	if err != nil {
		return mcp.NewToolResultError("session not found"), nil
	}
	set, err := h.ds.Settings(ctx)
	if err != nil {
		h.log.Error("mcp get_session_summary settings", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	return mcp.NewToolResultText(export.SummaryText(&sess, set)), nil
}

func (h *handlers) getPersonalRecord(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pr, err := h.ds.PersonalRecord(ctx)
	if err != nil {
		h.log.Error("mcp get_personal_record", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	set, err := h.ds.Settings(ctx)
	if err != nil {
		h.log.Error("mcp get_personal_record settings", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"personalRecordIn": pr,
		"formatted":        units.FormatBar(pr, set.Units),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getSetupAverages(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	avgs, err := h.ds.SetupAverages(ctx)
	if err != nil {
		h.log.Error("mcp get_setup_averages", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(avgs)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWeeklyPlan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	plan, err := h.ds.WeeklyPlan(ctx)
	if err != nil {
		h.log.Error("mcp get_weekly_plan", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	if day := req.GetString("day", ""); day != "" {
		d, ok := plan[day]
		if !ok {
			return mcp.NewToolResultError("unknown day: " + day), nil
		}
		result, err := mcp.NewToolResultJSON(map[string]models.DayPlan{day: d})
		if err != nil {
			return mcp.NewToolResultError("serialization failed"), nil
		}
		return result, nil
	}

	result, err := mcp.NewToolResultJSON(plan)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
