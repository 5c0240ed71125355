package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("VaultLog", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("VaultLog pole vault training log. Query practice and meet sessions, the athlete's personal record, setup averages, and the weekly training plan. All heights are stored in inches; formatted values follow the athlete's unit preference."),
	)

	h := &handlers{ds: ds, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetSessions, Handler: h.getSessions},
		server.ServerTool{Tool: toolGetSessionSummary, Handler: h.getSessionSummary},
		server.ServerTool{Tool: toolGetPersonalRecord, Handler: h.getPersonalRecord},
		server.ServerTool{Tool: toolGetSetupAverages, Handler: h.getSetupAverages},
		server.ServerTool{Tool: toolGetWeeklyPlan, Handler: h.getWeeklyPlan},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resPersonalRecord, Handler: h.personalRecord},
		server.ServerResource{Resource: resWeeklyPlan, Handler: h.weeklyPlan},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

// --- Resource definitions ---

var resPersonalRecord = mcp.NewResource(
	"vaultlog://personal_record",
	"Personal Record",
	mcp.WithResourceDescription("The athlete's personal record: best cleared bar across all meets, in inches and formatted"),
	mcp.WithMIMEType("application/json"),
)

var resWeeklyPlan = mcp.NewResource(
	"vaultlog://weekly_plan",
	"Weekly Plan",
	mcp.WithResourceDescription("The active weekly training plan, all seven days with goals and routines"),
	mcp.WithMIMEType("application/json"),
)
