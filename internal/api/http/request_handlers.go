package httpapi

import (
	"net/http"

	appBalancer "github.com/executor-balancer/executor-balancer/internal/application/balancer"
	appRequest "github.com/executor-balancer/executor-balancer/internal/application/request"
	"github.com/executor-balancer/executor-balancer/internal/domain/request"
)

type requestCreateRequest struct {
	appRequest.CreateInput
	AutoAssign bool `json:"autoAssign,omitempty"`
}

type requestUpdateRequest struct {
	Title               *string             `json:"title,omitempty"`
	Description         *string             `json:"description,omitempty"`
	Priority            *request.Priority   `json:"priority,omitempty"`
	Category            *request.Category   `json:"category,omitempty"`
	Complexity          *request.Complexity `json:"complexity,omitempty"`
	RequiredSkills      *[]string           `json:"requiredSkills,omitempty"`
	LanguageRequirement *string             `json:"languageRequirement,omitempty"`
	TimezoneRequirement *string             `json:"timezoneRequirement,omitempty"`
	EstimatedHours      *int                `json:"estimatedHours,omitempty"`
}

func (s *Server) createRequest(w http.ResponseWriter, r *http.Request) {
	var req requestCreateRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}

	if req.AutoAssign {
		s.assignFairlyFromInput(w, r, appBalancer.FairAssignInput{
			Title:               req.Title,
			Description:         req.Description,
			Priority:            req.Priority,
			Category:            req.Category,
			Complexity:          req.Complexity,
			RequiredSkills:      req.RequiredSkills,
			LanguageRequirement: req.LanguageRequirement,
			TimezoneRequirement: req.TimezoneRequirement,
			EstimatedHours:      req.EstimatedHours,
		})
		return
	}

	created, err := s.requestSvc.Create(r.Context(), req.CreateInput)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) listRequests(w http.ResponseWriter, r *http.Request) {
	var status *request.Status
	if v := r.URL.Query().Get("status"); v != "" {
		st := request.Status(v)
		status = &st
	}
	reqs, err := s.requestSvc.List(r.Context(), status)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"requests": reqs})
}

func (s *Server) getRequest(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "requestId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "invalid requestId")
		return
	}
	req, err := s.requestSvc.Get(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, req)
}

func (s *Server) updateRequest(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "requestId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "invalid requestId")
		return
	}
	req, err := s.requestSvc.Get(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	}
	var body requestUpdateRequest
	if err := decodeBody(r, &body); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	applyRequestUpdate(req, body)
	if err := s.requestSvc.Update(r.Context(), req); err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, req)
}

func (s *Server) cancelRequest(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "requestId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "invalid requestId")
		return
	}
	if err := s.requestSvc.Cancel(r.Context(), id); err != nil {
		respondError(w, http.StatusConflict, "INVALID_TRANSITION", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": string(request.StatusCancelled)})
}

func (s *Server) deleteRequest(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "requestId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "invalid requestId")
		return
	}
	if err := s.requestSvc.Delete(r.Context(), id); err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func applyRequestUpdate(req *request.Request, body requestUpdateRequest) {
	if body.Title != nil {
		req.Title = *body.Title
	}
	if body.Description != nil {
		req.Description = *body.Description
	}
	if body.Priority != nil {
		req.Priority = *body.Priority
	}
	if body.Category != nil {
		req.Category = *body.Category
	}
	if body.Complexity != nil {
		req.Complexity = *body.Complexity
	}
	if body.RequiredSkills != nil {
		req.RequiredSkills = *body.RequiredSkills
	}
	if body.LanguageRequirement != nil {
		req.LanguageRequirement = *body.LanguageRequirement
	}
	if body.TimezoneRequirement != nil {
		req.TimezoneRequirement = *body.TimezoneRequirement
	}
	if body.EstimatedHours != nil {
		req.EstimatedHours = *body.EstimatedHours
	}
}
