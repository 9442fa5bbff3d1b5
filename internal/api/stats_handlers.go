package api

import (
	"net/http"

	"github.com/example/lingodrill/internal/logger"
	"github.com/example/lingodrill/internal/progresscsv"
)

// handleMasteryStats reports mastery for one language, or for all languages
// when no language parameter is given.
func (s *Server) handleMasteryStats(w http.ResponseWriter, r *http.Request) {
	language := r.URL.Query().Get("language")

	stats, err := s.Reviews.MasteryStats(r.Context(), language)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, stats)
}

// handleExportProgress streams the whole word-progress store in the legacy
// CSV layout.
func (s *Server) handleExportProgress(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	records, err := s.Progress.List(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="word_progress.csv"`)
	if err := progresscsv.Write(w, records); err != nil {
		log.Error("failed to write progress export: %v", err)
	}
	log.Info("exported %d progress records", len(records))
}
