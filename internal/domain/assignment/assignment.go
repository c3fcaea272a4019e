package assignment

import (
	"time"

	"github.com/google/uuid"
)

// Status represents assignment status.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Assignment is an immutable record linking one request to one executor.
type Assignment struct {
	ID         uuid.UUID `json:"id"`
	RequestID  uuid.UUID `json:"requestId"`
	ExecutorID string    `json:"executorId"`
	AssignedAt time.Time `json:"assignedAt"`
	Status     Status    `json:"status"`
}

// New creates an active assignment stamped with the current time.
func New(requestID uuid.UUID, executorID string) *Assignment {
	return &Assignment{
		ID:         uuid.New(),
		RequestID:  requestID,
		ExecutorID: executorID,
		AssignedAt: time.Now().UTC(),
		Status:     StatusActive,
	}
}
