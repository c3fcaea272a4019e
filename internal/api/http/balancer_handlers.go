package httpapi

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	appBalancer "github.com/executor-balancer/executor-balancer/internal/application/balancer"
	"github.com/executor-balancer/executor-balancer/internal/domain/assignment"
	"github.com/executor-balancer/executor-balancer/internal/domain/executor"
	"github.com/executor-balancer/executor-balancer/internal/domain/matching"
	"github.com/executor-balancer/executor-balancer/internal/domain/request"
)

type assignRequest struct {
	ExecutorID string    `json:"executorId"`
	RequestID  uuid.UUID `json:"requestId"`
}

func (s *Server) searchExecutors(w http.ResponseWriter, r *http.Request) {
	var spec matching.Spec
	if err := decodeBody(r, &spec); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	normalizeSpec(&spec)
	candidates, err := s.balancerSvc.SearchExecutors(r.Context(), spec)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"candidates": candidates,
		"total":      len(candidates),
	})
}

func (s *Server) commitAssignment(w http.ResponseWriter, r *http.Request) {
	var req assignRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	if req.ExecutorID == "" || req.RequestID == uuid.Nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "executorId and requestId are required")
		return
	}
	asg, err := s.balancerSvc.CommitAssignment(r.Context(), req.ExecutorID, req.RequestID)
	if err != nil {
		respondAssignError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, asg)
}

func (s *Server) assignFairly(w http.ResponseWriter, r *http.Request) {
	var input appBalancer.FairAssignInput
	if err := decodeBody(r, &input); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	s.assignFairlyFromInput(w, r, input)
}

func (s *Server) assignFairlyFromInput(w http.ResponseWriter, r *http.Request, input appBalancer.FairAssignInput) {
	if input.Title == "" {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "title is required")
		return
	}
	result, err := s.balancerSvc.AssignFairly(r.Context(), input)
	if err != nil {
		if errors.Is(err, appBalancer.ErrNoAvailableExecutor) {
			respondJSON(w, http.StatusOK, map[string]interface{}{
				"assigned": false,
				"message":  "no available executor",
			})
			return
		}
		respondAssignError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"assigned":   true,
		"executor":   result.Executor,
		"request":    result.Request,
		"assignment": result.Assignment,
	})
}

func (s *Server) listAssignments(w http.ResponseWriter, r *http.Request) {
	asgs, err := s.balancerSvc.ListAssignments(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"assignments": asgs})
}

func respondAssignError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, appBalancer.ErrExecutorNotFound), errors.Is(err, appBalancer.ErrRequestNotFound):
		respondError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, appBalancer.ErrExecutorInactive):
		respondError(w, http.StatusConflict, "EXECUTOR_INACTIVE", err.Error())
	case errors.Is(err, executor.ErrCapacityExceeded):
		respondError(w, http.StatusConflict, "CAPACITY_EXCEEDED", err.Error())
	case errors.Is(err, request.ErrAlreadyAssigned):
		respondError(w, http.StatusConflict, "ALREADY_ASSIGNED", err.Error())
	case errors.Is(err, request.ErrInvalidTransition):
		respondError(w, http.StatusConflict, "INVALID_TRANSITION", err.Error())
	case errors.Is(err, assignment.ErrConflict):
		respondError(w, http.StatusConflict, "CONFLICT", err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}

func normalizeSpec(spec *matching.Spec) {
	if spec.Priority == "" {
		spec.Priority = request.PriorityMedium
	}
	if spec.Category == "" {
		spec.Category = request.CategoryTechnical
	}
	if spec.Complexity == "" {
		spec.Complexity = request.ComplexityMedium
	}
	if spec.LanguageRequirement == "" {
		spec.LanguageRequirement = "ru"
	}
	if spec.TimezoneRequirement == "" {
		spec.TimezoneRequirement = "any"
	}
}
