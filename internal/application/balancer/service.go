package balancer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/executor-balancer/executor-balancer/internal/domain/assignment"
	"github.com/executor-balancer/executor-balancer/internal/domain/executor"
	"github.com/executor-balancer/executor-balancer/internal/domain/matching"
	"github.com/executor-balancer/executor-balancer/internal/domain/request"
	"github.com/executor-balancer/executor-balancer/internal/domain/rule"
)

var (
	ErrExecutorNotFound    = errors.New("executor not found")
	ErrRequestNotFound     = errors.New("request not found")
	ErrExecutorInactive    = errors.New("executor is not active")
	ErrNoAvailableExecutor = errors.New("no available executor")
)

// Service orchestrates search, fair assignment and assignment commit over
// roster snapshots loaded from the repositories. The engine itself stays
// pure; all writes go through the committer.
type Service struct {
	executorRepo   executor.Repository
	requestRepo    request.Repository
	assignmentRepo assignment.Repository
	committer      assignment.Committer
	ruleRepo       rule.Repository
	weights        matching.Weights
	logger         zerolog.Logger
}

func NewService(
	executorRepo executor.Repository,
	requestRepo request.Repository,
	assignmentRepo assignment.Repository,
	committer assignment.Committer,
	ruleRepo rule.Repository,
	weights matching.Weights,
	logger zerolog.Logger,
) *Service {
	return &Service{
		executorRepo:   executorRepo,
		requestRepo:    requestRepo,
		assignmentRepo: assignmentRepo,
		committer:      committer,
		ruleRepo:       ruleRepo,
		weights:        weights,
		logger:         logger.With().Str("service", "balancer").Logger(),
	}
}

// SearchExecutors returns the ranked candidate shortlist for a spec.
// Read-only; an empty roster yields an empty result, not an error.
func (s *Service) SearchExecutors(ctx context.Context, spec matching.Spec) ([]matching.Candidate, error) {
	roster, err := s.executorRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load executors: %w", err)
	}
	rules, err := s.ruleRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}
	results := matching.Search(s.weights, roster, spec, rules)
	s.logger.Debug().Int("candidates", len(results)).Str("title", spec.Title).Msg("executor search completed")
	return results, nil
}

// CommitAssignment assigns an executor to a pending request. Precondition
// failures return sentinel errors and leave all state untouched; the
// write itself is one atomic committer call. Calling twice for the same
// request fails on the already-assigned guard rather than
// double-incrementing executor load.
func (s *Service) CommitAssignment(ctx context.Context, executorID string, requestID uuid.UUID) (*assignment.Assignment, error) {
	exec, err := s.executorRepo.GetByID(ctx, executorID)
	if err != nil {
		return nil, fmt.Errorf("load executor: %w", err)
	}
	if exec == nil {
		return nil, ErrExecutorNotFound
	}
	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("load request: %w", err)
	}
	if req == nil {
		return nil, ErrRequestNotFound
	}

	assigned, err := req.Assign(executorID)
	if err != nil {
		return nil, err
	}
	if exec.Status != executor.StatusActive {
		return nil, ErrExecutorInactive
	}
	if _, err := exec.Reserve(); err != nil {
		return nil, err
	}

	assigned.UpdatedAt = time.Now().UTC()
	asg := assignment.New(req.ID, exec.ID)
	if err := s.committer.Commit(ctx, assigned, asg); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("executorId", exec.ID).
		Str("requestId", req.ID.String()).
		Str("assignmentId", asg.ID.String()).
		Msg("request assigned")
	return asg, nil
}

// FairAssignInput describes a request to place automatically.
type FairAssignInput struct {
	Title               string             `json:"title" validate:"required"`
	Description         string             `json:"description"`
	Priority            request.Priority   `json:"priority"`
	Category            request.Category   `json:"category"`
	Complexity          request.Complexity `json:"complexity"`
	RequiredSkills      []string           `json:"requiredSkills"`
	LanguageRequirement string             `json:"languageRequirement"`
	TimezoneRequirement string             `json:"timezoneRequirement"`
	EstimatedHours      int                `json:"estimatedHours"`
}

// FairAssignment is the outcome of an automatic placement.
type FairAssignment struct {
	Executor   *executor.Executor     `json:"executor"`
	Request    *request.Request       `json:"request"`
	Assignment *assignment.Assignment `json:"assignment"`
}

// AssignFairly creates a request and places it on the executor with the
// best fairness score (headroom and reliability over skill precision).
// Returns ErrNoAvailableExecutor when nobody can take work.
func (s *Service) AssignFairly(ctx context.Context, input FairAssignInput) (*FairAssignment, error) {
	roster, err := s.executorRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load executors: %w", err)
	}

	req := newPendingRequest(input)
	spec := matching.SpecFromRequest(req)

	chosen, ok := matching.PickFairly(s.weights, roster, spec)
	if !ok {
		return nil, ErrNoAvailableExecutor
	}

	if err := s.requestRepo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	assigned, err := req.Assign(chosen.ID)
	if err != nil {
		return nil, err
	}
	assigned.UpdatedAt = time.Now().UTC()
	asg := assignment.New(req.ID, chosen.ID)
	if err := s.committer.Commit(ctx, assigned, asg); err != nil {
		// best effort: the freshly created request must not linger pending
		_ = s.requestRepo.Delete(ctx, req.ID)
		return nil, err
	}

	s.logger.Info().
		Str("executorId", chosen.ID).
		Str("requestId", req.ID.String()).
		Msg("request fairly assigned")
	return &FairAssignment{Executor: chosen, Request: assigned, Assignment: asg}, nil
}

// ListAssignments returns all assignment records.
func (s *Service) ListAssignments(ctx context.Context) ([]*assignment.Assignment, error) {
	return s.assignmentRepo.GetAll(ctx)
}

func newPendingRequest(input FairAssignInput) *request.Request {
	now := time.Now().UTC()
	req := &request.Request{
		ID:                  uuid.New(),
		Title:               input.Title,
		Description:         input.Description,
		Priority:            input.Priority,
		Category:            input.Category,
		Complexity:          input.Complexity,
		RequiredSkills:      input.RequiredSkills,
		LanguageRequirement: input.LanguageRequirement,
		TimezoneRequirement: input.TimezoneRequirement,
		EstimatedHours:      input.EstimatedHours,
		Status:              request.StatusPending,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if req.Priority == "" {
		req.Priority = request.PriorityMedium
	}
	if req.Category == "" {
		req.Category = request.CategoryTechnical
	}
	if req.Complexity == "" {
		req.Complexity = request.ComplexityMedium
	}
	if req.LanguageRequirement == "" {
		req.LanguageRequirement = "ru"
	}
	if req.TimezoneRequirement == "" {
		req.TimezoneRequirement = "any"
	}
	return req
}
