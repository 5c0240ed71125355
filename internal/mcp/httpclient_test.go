package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/claude/vaultlog/internal/models"
	"github.com/claude/vaultlog/internal/store"
)

// newTestServer creates an httptest server that routes requests to handler functions
// keyed by path. Verifies the HTTP client sends correct paths and query params.
func newTestServer(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			t.Errorf("unexpected request path: %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		h(w, r)
	}))
}

func writeTestJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatal(err)
	}
}

// TestHTTPClientSessions verifies the session list endpoint is parsed
// into model structs.
func TestHTTPClientSessions(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/sessions": func(w http.ResponseWriter, r *http.Request) {
			writeTestJSON(t, w, []models.Session{
				{ID: "s1", Type: models.TypeMeet, MeetName: "State Finals"},
			})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL)
	sessions, err := client.Sessions(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(sessions))
	}
	if sessions[0].MeetName != "State Finals" {
		t.Errorf("meetName=%q, want State Finals", sessions[0].MeetName)
	}
}

// TestHTTPClientSessionNotFound verifies a 404 maps onto the store's
// sentinel error so MCP tools report "session not found" the same way
// in local and remote mode.
func TestHTTPClientSessionNotFound(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/sessions/ghost": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"session not found"}`))
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL)
	_, err := client.Session(context.Background(), "ghost")
	if !errors.Is(err, store.ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
}

// TestHTTPClientStats verifies both PR and averages are read from the
// shared stats endpoint.
func TestHTTPClientStats(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/stats": func(w http.ResponseWriter, r *http.Request) {
			writeTestJSON(t, w, map[string]any{
				"personalRecordIn": 150.0,
				"averages": map[string]any{
					"steps":       6.0,
					"takeoffIn":   132.5,
					"standardsIn": 24.0,
				},
			})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL)
	pr, err := client.PersonalRecord(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if pr != 150 {
		t.Errorf("pr=%v, want 150", pr)
	}

	avgs, err := client.SetupAverages(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if avgs.TakeoffIn != 132.5 {
		t.Errorf("takeoff avg=%v, want 132.5", avgs.TakeoffIn)
	}
}

// TestHTTPClientWeeklyPlan verifies the plan is unwrapped from its
// {plan, overridden} envelope.
func TestHTTPClientWeeklyPlan(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/plan": func(w http.ResponseWriter, r *http.Request) {
			writeTestJSON(t, w, map[string]any{
				"plan": models.WeeklyPlan{
					"Monday": {Goals: "short run work"},
				},
				"overridden": true,
			})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL)
	plan, err := client.WeeklyPlan(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if plan["Monday"].Goals != "short run work" {
		t.Errorf("plan = %+v", plan)
	}
}

// TestHTTPClientServerError verifies the client returns an error on non-200 responses.
func TestHTTPClientServerError(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/settings": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"database down"}`))
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL)
	_, err := client.Settings(context.Background())
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
}
