package executor

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/executor-balancer/executor-balancer/internal/domain/executor"
)

// CreateInput describes a new executor registration.
type CreateInput struct {
	ID              string        `json:"id" validate:"required"`
	Name            string        `json:"name" validate:"required"`
	Email           string        `json:"email" validate:"required,email"`
	Role            executor.Role `json:"role" validate:"required,oneof=admin programmer moderator support tester designer analyst manager"`
	Weight          float64       `json:"weight" validate:"gte=0,lte=1"`
	SuccessRate     float64       `json:"successRate" validate:"gte=0,lte=1"`
	ExperienceYears int           `json:"experienceYears" validate:"gte=0"`
	Specialization  []string      `json:"specialization"`
	LanguageSkills  []string      `json:"languageSkills"`
	Timezone        string        `json:"timezone"`
	DailyLimit      int           `json:"dailyLimit" validate:"gte=0"`
}

// Service handles executor registration and roster maintenance.
type Service struct {
	repo     executor.Repository
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewService(repo executor.Repository, logger zerolog.Logger) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(),
		logger:   logger.With().Str("service", "executor").Logger(),
	}
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*executor.Executor, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid executor: %w", err)
	}
	now := time.Now().UTC()
	exec := &executor.Executor{
		ID:              input.ID,
		Name:            input.Name,
		Email:           input.Email,
		Role:            input.Role,
		Status:          executor.StatusActive,
		Weight:          input.Weight,
		SuccessRate:     input.SuccessRate,
		ExperienceYears: input.ExperienceYears,
		Specialization:  input.Specialization,
		LanguageSkills:  input.LanguageSkills,
		Timezone:        input.Timezone,
		DailyLimit:      input.DailyLimit,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if exec.Weight == 0 {
		exec.Weight = 0.5
	}
	if exec.Timezone == "" {
		exec.Timezone = "MSK"
	}
	if exec.DailyLimit == 0 {
		exec.DailyLimit = 10
	}
	if err := s.repo.Create(ctx, exec); err != nil {
		return nil, err
	}
	s.logger.Info().Str("executorId", exec.ID).Str("role", string(exec.Role)).Msg("executor registered")
	return exec, nil
}

func (s *Service) Get(ctx context.Context, executorID string) (*executor.Executor, error) {
	exec, err := s.repo.GetByID(ctx, executorID)
	if err != nil {
		return nil, err
	}
	if exec == nil {
		return nil, fmt.Errorf("executor not found: %s", executorID)
	}
	return exec, nil
}

func (s *Service) List(ctx context.Context) ([]*executor.Executor, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) Update(ctx context.Context, exec *executor.Executor) error {
	exec.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, exec)
}

func (s *Service) Activate(ctx context.Context, executorID string) error {
	return s.repo.UpdateStatus(ctx, executorID, executor.StatusActive)
}

func (s *Service) Deactivate(ctx context.Context, executorID string) error {
	return s.repo.UpdateStatus(ctx, executorID, executor.StatusInactive)
}

func (s *Service) Delete(ctx context.Context, executorID string) error {
	return s.repo.Delete(ctx, executorID)
}
