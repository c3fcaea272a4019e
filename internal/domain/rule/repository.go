package rule

//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_repository.go -package=mocks . Repository

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines distribution rule persistence.
type Repository interface {
	Create(ctx context.Context, r *Rule) error
	GetByID(ctx context.Context, ruleID uuid.UUID) (*Rule, error)
	GetAll(ctx context.Context) ([]*Rule, error)
	ListActive(ctx context.Context) ([]*Rule, error)
	Delete(ctx context.Context, ruleID uuid.UUID) error
}
