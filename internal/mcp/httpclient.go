package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/claude/vaultlog/internal/models"
	"github.com/claude/vaultlog/internal/stats"
	"github.com/claude/vaultlog/internal/store"
)

// HTTPClient implements DataSource by calling the VaultLog REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// the log lives on a server reached over the tailnet.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// Compile-time check: *HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("httpclient: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return store.ErrSessionNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("httpclient: decode %s: %w", path, err)
	}
	return nil
}

func (c *HTTPClient) Settings(ctx context.Context) (models.Settings, error) {
	var set models.Settings
	err := c.get(ctx, "/api/v1/settings", &set)
	return set, err
}

func (c *HTTPClient) Sessions(ctx context.Context) ([]models.Session, error) {
	var sessions []models.Session
	err := c.get(ctx, "/api/v1/sessions", &sessions)
	return sessions, err
}

func (c *HTTPClient) Session(ctx context.Context, id string) (models.Session, error) {
	var sess models.Session
	err := c.get(ctx, "/api/v1/sessions/"+id, &sess)
	return sess, err
}

func (c *HTTPClient) WeeklyPlan(ctx context.Context) (models.WeeklyPlan, error) {
	var resp struct {
		Plan models.WeeklyPlan `json:"plan"`
	}
	err := c.get(ctx, "/api/v1/plan", &resp)
	return resp.Plan, err
}

func (c *HTTPClient) PersonalRecord(ctx context.Context) (float64, error) {
	var resp struct {
		PersonalRecordIn float64 `json:"personalRecordIn"`
	}
	err := c.get(ctx, "/api/v1/stats", &resp)
	return resp.PersonalRecordIn, err
}

func (c *HTTPClient) SetupAverages(ctx context.Context) (stats.SetupAverages, error) {
	var resp struct {
		Averages stats.SetupAverages `json:"averages"`
	}
	err := c.get(ctx, "/api/v1/stats", &resp)
	return resp.Averages, err
}
