package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/claude/vaultlog/internal/backup"
)

// handleDownloadBackup streams the whole store as a compressed backup
// archive.
func (s *Server) handleDownloadBackup(w http.ResponseWriter, r *http.Request) {
	doc, err := s.st.Snapshot()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	archive, err := backup.Encode(doc)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	name := fmt.Sprintf("vaultlog-backup-%s.json.gz", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/gzip")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(archive)
}

// handleRestoreBackup replaces the store with an uploaded backup. The
// body may be the downloaded archive or its bare JSON. A backup that
// fails to decode leaves the store untouched.
func (s *Server) handleRestoreBackup(w http.ResponseWriter, r *http.Request) {
	doc, err := backup.Decode(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err := s.st.Restore(doc); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	s.log.Info("store restored from backup",
		"sessions", len(doc.Sessions),
		"version", doc.Version,
	)
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "restored",
		"sessions": len(doc.Sessions),
	})
}
