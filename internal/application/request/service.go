package request

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/executor-balancer/executor-balancer/internal/domain/request"
)

// CreateInput describes a new work request.
type CreateInput struct {
	Title               string             `json:"title" validate:"required"`
	Description         string             `json:"description"`
	Priority            request.Priority   `json:"priority" validate:"omitempty,oneof=critical high medium low"`
	Category            request.Category   `json:"category" validate:"omitempty,oneof=technical support development testing design marketing"`
	Complexity          request.Complexity `json:"complexity" validate:"omitempty,oneof=low medium high expert"`
	RequiredSkills      []string           `json:"requiredSkills"`
	LanguageRequirement string             `json:"languageRequirement"`
	TimezoneRequirement string             `json:"timezoneRequirement"`
	EstimatedHours      int                `json:"estimatedHours" validate:"gte=0"`
}

// Service handles request intake and lifecycle.
type Service struct {
	repo     request.Repository
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewService(repo request.Repository, logger zerolog.Logger) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(),
		logger:   logger.With().Str("service", "request").Logger(),
	}
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*request.Request, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}
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
	applyDefaults(req)
	if err := s.repo.Create(ctx, req); err != nil {
		return nil, err
	}
	s.logger.Info().Str("requestId", req.ID.String()).Str("title", req.Title).Msg("request created")
	return req, nil
}

func (s *Service) Get(ctx context.Context, requestID uuid.UUID) (*request.Request, error) {
	req, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, fmt.Errorf("request not found: %s", requestID)
	}
	return req, nil
}

func (s *Service) List(ctx context.Context, status *request.Status) ([]*request.Request, error) {
	return s.repo.GetAll(ctx, status)
}

func (s *Service) Update(ctx context.Context, req *request.Request) error {
	req.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, req)
}

func (s *Service) Cancel(ctx context.Context, requestID uuid.UUID) error {
	req, err := s.Get(ctx, requestID)
	if err != nil {
		return err
	}
	if err := req.Cancel(); err != nil {
		return err
	}
	req.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, req)
}

func (s *Service) Delete(ctx context.Context, requestID uuid.UUID) error {
	return s.repo.Delete(ctx, requestID)
}

func applyDefaults(req *request.Request) {
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
	if req.EstimatedHours == 0 {
		req.EstimatedHours = 8
	}
}
