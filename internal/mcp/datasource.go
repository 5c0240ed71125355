package mcp

import (
	"context"

	"github.com/claude/vaultlog/internal/models"
	"github.com/claude/vaultlog/internal/stats"
	"github.com/claude/vaultlog/internal/store"
)

// DataSource abstracts the vault log for MCP tools. The local source
// wraps *store.Store directly; HTTPClient reaches a remote server via
// its REST API.
type DataSource interface {
	Settings(ctx context.Context) (models.Settings, error)
	Sessions(ctx context.Context) ([]models.Session, error)
	Session(ctx context.Context, id string) (models.Session, error)
	WeeklyPlan(ctx context.Context) (models.WeeklyPlan, error)
	PersonalRecord(ctx context.Context) (float64, error)
	SetupAverages(ctx context.Context) (stats.SetupAverages, error)
}

// localSource adapts *store.Store to DataSource. The store is
// in-memory, so reads cannot fail.
type localSource struct {
	st *store.Store
}

// NewLocalSource wraps a store for in-process MCP serving.
func NewLocalSource(st *store.Store) DataSource {
	return localSource{st: st}
}

func (l localSource) Settings(context.Context) (models.Settings, error) {
	return l.st.Settings(), nil
}

func (l localSource) Sessions(context.Context) ([]models.Session, error) {
	return l.st.Sessions(), nil
}

func (l localSource) Session(_ context.Context, id string) (models.Session, error) {
	return l.st.Session(id)
}

func (l localSource) WeeklyPlan(context.Context) (models.WeeklyPlan, error) {
	return l.st.WeeklyPlan(), nil
}

func (l localSource) PersonalRecord(context.Context) (float64, error) {
	return l.st.PersonalRecord(), nil
}

func (l localSource) SetupAverages(context.Context) (stats.SetupAverages, error) {
	return l.st.SetupAverages(), nil
}
