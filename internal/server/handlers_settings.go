package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/claude/vaultlog/internal/models"
	"github.com/claude/vaultlog/internal/units"
)

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.st.Settings())
}

func (s *Server) handleSetUnits(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Units units.Unit `json:"units"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if err := s.st.SetUnits(req.Units); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, s.st.Settings())
}

func (s *Server) handleSetAthleteField(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Field string `json:"field"`
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if err := s.st.SetAthleteField(req.Field, req.Value); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, s.st.Settings())
}

func (s *Server) handleSetWatermark(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URI string `json:"uri"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if err := s.st.SetWatermarkURI(req.URI); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, s.st.Settings())
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"plan":       s.st.WeeklyPlan(),
		"overridden": s.st.Settings().PlanOverridden,
	})
}

// handleUploadPlan replaces the weekly plan with an uploaded JSON
// document. Validation failures reject the whole upload; the active
// plan is left untouched.
func (s *Server) handleUploadPlan(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "reading body: " + err.Error()})
		return
	}

	plan, err := models.ParseWeeklyPlan(body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err := s.st.SetWeeklyPlan(plan); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"plan": plan, "overridden": true})
}

func (s *Server) handleResetPlan(w http.ResponseWriter, r *http.Request) {
	if err := s.st.ResetWeeklyPlan(); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"plan":       s.st.WeeklyPlan(),
		"overridden": false,
	})
}
