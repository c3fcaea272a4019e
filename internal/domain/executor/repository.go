package executor

//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_repository.go -package=mocks . Repository

import (
	"context"
)

// Repository defines executor persistence.
type Repository interface {
	Create(ctx context.Context, exec *Executor) error
	GetByID(ctx context.Context, executorID string) (*Executor, error)
	GetAll(ctx context.Context) ([]*Executor, error)
	Update(ctx context.Context, exec *Executor) error
	UpdateStatus(ctx context.Context, executorID string, status Status) error
	Delete(ctx context.Context, executorID string) error
}
