package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	appExecutor "github.com/executor-balancer/executor-balancer/internal/application/executor"
	"github.com/executor-balancer/executor-balancer/internal/domain/executor"
)

type executorUpdateRequest struct {
	Name            *string   `json:"name,omitempty"`
	Email           *string   `json:"email,omitempty"`
	Weight          *float64  `json:"weight,omitempty"`
	SuccessRate     *float64  `json:"successRate,omitempty"`
	ExperienceYears *int      `json:"experienceYears,omitempty"`
	Specialization  *[]string `json:"specialization,omitempty"`
	LanguageSkills  *[]string `json:"languageSkills,omitempty"`
	Timezone        *string   `json:"timezone,omitempty"`
	DailyLimit      *int      `json:"dailyLimit,omitempty"`
}

func (s *Server) createExecutor(w http.ResponseWriter, r *http.Request) {
	var input appExecutor.CreateInput
	if err := decodeBody(r, &input); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	exec, err := s.executorSvc.Create(r.Context(), input)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, exec)
}

func (s *Server) listExecutors(w http.ResponseWriter, r *http.Request) {
	execs, err := s.executorSvc.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"executors": execs})
}

func (s *Server) getExecutor(w http.ResponseWriter, r *http.Request) {
	exec, err := s.executorSvc.Get(r.Context(), chi.URLParam(r, "executorId"))
	if err != nil {
		respondError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, exec)
}

func (s *Server) updateExecutor(w http.ResponseWriter, r *http.Request) {
	exec, err := s.executorSvc.Get(r.Context(), chi.URLParam(r, "executorId"))
	if err != nil {
		respondError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	}
	var req executorUpdateRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	applyExecutorUpdate(exec, req)
	if err := s.executorSvc.Update(r.Context(), exec); err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, exec)
}

func (s *Server) deleteExecutor(w http.ResponseWriter, r *http.Request) {
	if err := s.executorSvc.Delete(r.Context(), chi.URLParam(r, "executorId")); err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) activateExecutor(w http.ResponseWriter, r *http.Request) {
	if err := s.executorSvc.Activate(r.Context(), chi.URLParam(r, "executorId")); err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": string(executor.StatusActive)})
}

func (s *Server) deactivateExecutor(w http.ResponseWriter, r *http.Request) {
	if err := s.executorSvc.Deactivate(r.Context(), chi.URLParam(r, "executorId")); err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": string(executor.StatusInactive)})
}

func applyExecutorUpdate(exec *executor.Executor, req executorUpdateRequest) {
	if req.Name != nil {
		exec.Name = *req.Name
	}
	if req.Email != nil {
		exec.Email = *req.Email
	}
	if req.Weight != nil {
		exec.Weight = *req.Weight
	}
	if req.SuccessRate != nil {
		exec.SuccessRate = *req.SuccessRate
	}
	if req.ExperienceYears != nil {
		exec.ExperienceYears = *req.ExperienceYears
	}
	if req.Specialization != nil {
		exec.Specialization = *req.Specialization
	}
	if req.LanguageSkills != nil {
		exec.LanguageSkills = *req.LanguageSkills
	}
	if req.Timezone != nil {
		exec.Timezone = *req.Timezone
	}
	if req.DailyLimit != nil {
		exec.DailyLimit = *req.DailyLimit
	}
}
