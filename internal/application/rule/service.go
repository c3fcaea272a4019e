package rule

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/executor-balancer/executor-balancer/internal/domain/rule"
)

// Service manages distribution rules. Conditions are validated at create
// time so the matcher never sees a malformed rule.
type Service struct {
	repo   rule.Repository
	logger zerolog.Logger
}

func NewService(repo rule.Repository, logger zerolog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger.With().Str("service", "rule").Logger(),
	}
}

func (s *Service) Create(ctx context.Context, name, description string, priority int, conditions []rule.Condition) (*rule.Rule, error) {
	r := rule.NewRule(name, description, priority, conditions)
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rule: %w", err)
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	s.logger.Info().Str("ruleId", r.ID.String()).Str("name", r.Name).Msg("distribution rule created")
	return r, nil
}

func (s *Service) Get(ctx context.Context, ruleID uuid.UUID) (*rule.Rule, error) {
	r, err := s.repo.GetByID(ctx, ruleID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("rule not found: %s", ruleID)
	}
	return r, nil
}

func (s *Service) List(ctx context.Context) ([]*rule.Rule, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) Delete(ctx context.Context, ruleID uuid.UUID) error {
	return s.repo.Delete(ctx, ruleID)
}
