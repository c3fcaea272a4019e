package assignment

//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_repository.go -package=mocks . Repository,Committer

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/executor-balancer/executor-balancer/internal/domain/request"
)

// ErrConflict is returned when the store-side availability re-check fails
// during commit, e.g. a concurrent assignment consumed the last slot.
var ErrConflict = errors.New("assignment conflicts with concurrent update")

// Repository defines assignment persistence.
type Repository interface {
	Create(ctx context.Context, asg *Assignment) error
	GetByID(ctx context.Context, assignmentID uuid.UUID) (*Assignment, error)
	GetAll(ctx context.Context) ([]*Assignment, error)
	ListByExecutor(ctx context.Context, executorID string) ([]*Assignment, error)
}

// Committer applies one assignment as a single unit: the request update,
// the executor load increment and the new assignment row become visible
// together or not at all. The store re-checks executor availability
// inside the unit and reports ErrConflict when it no longer holds.
type Committer interface {
	Commit(ctx context.Context, assigned *request.Request, asg *Assignment) error
}
