package request

//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_repository.go -package=mocks . Repository

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines request persistence.
type Repository interface {
	Create(ctx context.Context, req *Request) error
	GetByID(ctx context.Context, requestID uuid.UUID) (*Request, error)
	GetAll(ctx context.Context, status *Status) ([]*Request, error)
	Update(ctx context.Context, req *Request) error
	Delete(ctx context.Context, requestID uuid.UUID) error
}
