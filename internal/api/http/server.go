package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	appBalancer "github.com/executor-balancer/executor-balancer/internal/application/balancer"
	appExecutor "github.com/executor-balancer/executor-balancer/internal/application/executor"
	appRequest "github.com/executor-balancer/executor-balancer/internal/application/request"
	appRule "github.com/executor-balancer/executor-balancer/internal/application/rule"
	appStats "github.com/executor-balancer/executor-balancer/internal/application/stats"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	executorSvc *appExecutor.Service
	requestSvc  *appRequest.Service
	ruleSvc     *appRule.Service
	balancerSvc *appBalancer.Service
	statsSvc    *appStats.Service
}

func NewServer(
	executorSvc *appExecutor.Service,
	requestSvc *appRequest.Service,
	ruleSvc *appRule.Service,
	balancerSvc *appBalancer.Service,
	statsSvc *appStats.Service,
) *Server {
	return &Server{
		executorSvc: executorSvc,
		requestSvc:  requestSvc,
		ruleSvc:     ruleSvc,
		balancerSvc: balancerSvc,
		statsSvc:    statsSvc,
	}
}

// Router builds the HTTP router.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", s.health)

	r.Route("/v1", func(r chi.Router) {
		r.Route("/executors", func(r chi.Router) {
			r.Post("/", s.createExecutor)
			r.Get("/", s.listExecutors)
			r.Get("/{executorId}", s.getExecutor)
			r.Put("/{executorId}", s.updateExecutor)
			r.Delete("/{executorId}", s.deleteExecutor)
			r.Post("/{executorId}/activate", s.activateExecutor)
			r.Post("/{executorId}/deactivate", s.deactivateExecutor)
		})

		r.Route("/requests", func(r chi.Router) {
			r.Post("/", s.createRequest)
			r.Get("/", s.listRequests)
			r.Get("/{requestId}", s.getRequest)
			r.Put("/{requestId}", s.updateRequest)
			r.Delete("/{requestId}", s.deleteRequest)
			r.Post("/{requestId}/cancel", s.cancelRequest)
		})

		r.Route("/rules", func(r chi.Router) {
			r.Post("/", s.createRule)
			r.Get("/", s.listRules)
			r.Get("/{ruleId}", s.getRule)
			r.Delete("/{ruleId}", s.deleteRule)
		})

		r.Route("/balancer", func(r chi.Router) {
			r.Post("/search", s.searchExecutors)
			r.Post("/assign", s.commitAssignment)
			r.Post("/assign-fair", s.assignFairly)
		})

		r.Get("/assignments", s.listAssignments)

		r.Route("/stats", func(r chi.Router) {
			r.Get("/system", s.systemStats)
			r.Get("/executors/{executorId}", s.executorStats)
		})
	})

	return r
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Helpers
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, map[string]interface{}{
		"error":   code,
		"message": message,
	})
}

func parseUUIDParam(r *http.Request, key string) (uuid.UUID, error) {
	val := chi.URLParam(r, key)
	return uuid.Parse(val)
}

func decodeBody(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
