package httpapi

import (
	"net/http"

	"github.com/executor-balancer/executor-balancer/internal/domain/rule"
)

type ruleCreateRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Priority    int              `json:"priority,omitempty"`
	Conditions  []rule.Condition `json:"conditions"`
}

func (s *Server) createRule(w http.ResponseWriter, r *http.Request) {
	var req ruleCreateRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	created, err := s.ruleSvc.Create(r.Context(), req.Name, req.Description, req.Priority, req.Conditions)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) listRules(w http.ResponseWriter, r *http.Request) {
	rules, err := s.ruleSvc.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"rules": rules})
}

func (s *Server) getRule(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "ruleId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "invalid ruleId")
		return
	}
	rl, err := s.ruleSvc.Get(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, rl)
}

func (s *Server) deleteRule(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "ruleId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "invalid ruleId")
		return
	}
	if err := s.ruleSvc.Delete(r.Context(), id); err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
