package request

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Priority represents request priority.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Category represents a request work category.
type Category string

const (
	CategoryTechnical   Category = "technical"
	CategorySupport     Category = "support"
	CategoryDevelopment Category = "development"
	CategoryTesting     Category = "testing"
	CategoryDesign      Category = "design"
	CategoryMarketing   Category = "marketing"
)

// Complexity represents request complexity.
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
	ComplexityExpert Complexity = "expert"
)

// Status represents request status.
type Status string

const (
	StatusPending    Status = "pending"
	StatusAssigned   Status = "assigned"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

var (
	ErrInvalidTransition = errors.New("invalid request status transition")
	ErrAlreadyAssigned   = errors.New("request is already assigned")
)

// Request represents a unit of work needing an executor.
type Request struct {
	ID                  uuid.UUID  `json:"id"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	Priority            Priority   `json:"priority"`
	Category            Category   `json:"category"`
	Complexity          Complexity `json:"complexity"`
	RequiredSkills      []string   `json:"requiredSkills,omitempty"`
	LanguageRequirement string     `json:"languageRequirement"`
	TimezoneRequirement string     `json:"timezoneRequirement"`
	EstimatedHours      int        `json:"estimatedHours"`
	Status              Status     `json:"status"`
	AssignedExecutorID  *string    `json:"assignedExecutorId,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

// CanTransitionTo validates a request status transition.
func (r *Request) CanTransitionTo(target Status) bool {
	transitions := map[Status][]Status{
		StatusPending:    {StatusAssigned, StatusCancelled},
		StatusAssigned:   {StatusInProgress, StatusCancelled},
		StatusInProgress: {StatusCompleted, StatusCancelled},
		StatusCompleted:  {},
		StatusCancelled:  {},
	}
	for _, s := range transitions[r.Status] {
		if s == target {
			return true
		}
	}
	return false
}

// Assign returns a copy assigned to the given executor. A request that
// already carries an executor is rejected rather than silently superseded.
func (r *Request) Assign(executorID string) (*Request, error) {
	if r.Status == StatusAssigned || r.AssignedExecutorID != nil {
		return nil, ErrAlreadyAssigned
	}
	if !r.CanTransitionTo(StatusAssigned) {
		return nil, ErrInvalidTransition
	}
	assigned := *r
	assigned.Status = StatusAssigned
	assigned.AssignedExecutorID = &executorID
	return &assigned, nil
}

// Cancel sets the request to cancelled.
func (r *Request) Cancel() error {
	if !r.CanTransitionTo(StatusCancelled) {
		return ErrInvalidTransition
	}
	r.Status = StatusCancelled
	return nil
}
