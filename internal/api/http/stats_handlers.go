package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) systemStats(w http.ResponseWriter, r *http.Request) {
	load, err := s.statsSvc.SystemLoad(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, load)
}

func (s *Server) executorStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.statsSvc.ExecutorStats(r.Context(), chi.URLParam(r, "executorId"))
	if err != nil {
		respondError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, stats)
}
