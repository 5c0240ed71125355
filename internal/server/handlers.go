package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/claude/vaultlog/internal/export"
	"github.com/claude/vaultlog/internal/models"
	"github.com/claude/vaultlog/internal/store"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.st.Sessions())
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.st.Session(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func (s *Server) handleAddSession(w http.ResponseWriter, r *http.Request) {
	var sess models.Session
	if err := json.NewDecoder(r.Body).Decode(&sess); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	created, err := s.st.AddSession(sess)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateSession(w http.ResponseWriter, r *http.Request) {
	var patch store.SessionPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	sess, err := s.st.UpdateSession(chi.URLParam(r, "id"), patch)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.st.DeleteSession(chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// attemptRequest is the body of POST /sessions/{id}/attempts.
type attemptRequest struct {
	BlockID string               `json:"blockId"`
	Index   int                  `json:"idx"`
	Result  models.AttemptResult `json:"result"`
	Kind    models.AttemptKind   `json:"type"`
}

func (s *Server) handleRecordAttempt(w http.ResponseWriter, r *http.Request) {
	var req attemptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	sess, err := s.st.RecordAttempt(chi.URLParam(r, "id"), req.BlockID, req.Index, req.Result, req.Kind)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

type routineDoneRequest struct {
	Index int  `json:"idx"`
	Done  bool `json:"done"`
}

func (s *Server) handleSetRoutineDone(w http.ResponseWriter, r *http.Request) {
	var req routineDoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	if err := s.st.SetRoutineDone(chi.URLParam(r, "id"), req.Index, req.Done); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleSessionSummary returns the share-sheet text for one session as
// plain UTF-8, not JSON.
func (s *Server) handleSessionSummary(w http.ResponseWriter, r *http.Request) {
	sess, err := s.st.Session(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
		return
	}
	text := export.SummaryText(&sess, s.st.Settings())
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(text))
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"personalRecordIn": s.st.PersonalRecord(),
		"averages":         s.st.SetupAverages(),
	})
}

func (s *Server) handleListVideos(w http.ResponseWriter, r *http.Request) {
	key, err := videoKeyFromRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, s.st.AttemptVideos(key))
}

// videoRequest is the body of POST /sessions/{id}/videos.
type videoRequest struct {
	HeightIn float64 `json:"heightIn"`
	Attempt  int     `json:"attempt"`
	URI      string  `json:"uri"`
	Title    string  `json:"title"`
}

func (s *Server) handleAddVideo(w http.ResponseWriter, r *http.Request) {
	var req videoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.URI == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "uri is required"})
		return
	}

	key := models.VideoKey{
		SessionID:     chi.URLParam(r, "id"),
		HeightIn:      req.HeightIn,
		AttemptNumber: req.Attempt,
	}
	video, err := s.st.AddAttemptVideo(key, models.AttemptVideo{URI: req.URI, Title: req.Title})
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, video)
}

func videoKeyFromRequest(r *http.Request) (models.VideoKey, error) {
	key := models.VideoKey{SessionID: chi.URLParam(r, "id")}
	q := r.URL.Query()
	if v := q.Get("heightIn"); v != "" {
		h, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return models.VideoKey{}, errors.New("heightIn must be a number")
		}
		key.HeightIn = h
	}
	if v := q.Get("attempt"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return models.VideoKey{}, errors.New("attempt must be an integer")
		}
		key.AttemptNumber = n
	}
	return key, nil
}

// writeStoreError maps store errors onto the API's status codes.
func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrSessionNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
		return
	}
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
