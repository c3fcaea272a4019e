package executor

import (
	"errors"
	"time"
)

// Role represents an executor role.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleProgrammer Role = "programmer"
	RoleModerator  Role = "moderator"
	RoleSupport    Role = "support"
	RoleTester     Role = "tester"
	RoleDesigner   Role = "designer"
	RoleAnalyst    Role = "analyst"
	RoleManager    Role = "manager"
)

// Status represents executor status.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusBusy     Status = "busy"
	StatusOffline  Status = "offline"
)

// ErrCapacityExceeded is returned when an executor is at or over its daily limit.
var ErrCapacityExceeded = errors.New("executor has reached daily limit")

// Executor represents a worker eligible to receive requests.
type Executor struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Email               string    `json:"email"`
	Role                Role      `json:"role"`
	Status              Status    `json:"status"`
	Weight              float64   `json:"weight"`
	SuccessRate         float64   `json:"successRate"`
	ExperienceYears     int       `json:"experienceYears"`
	Specialization      []string  `json:"specialization,omitempty"`
	LanguageSkills      []string  `json:"languageSkills,omitempty"`
	Timezone            string    `json:"timezone"`
	DailyLimit          int       `json:"dailyLimit"`
	ActiveRequestsCount int       `json:"activeRequestsCount"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// Available reports whether the executor can take another request.
// Over-limit counts are tolerated and simply read as unavailable.
func (e *Executor) Available() bool {
	return e.Status == StatusActive && e.ActiveRequestsCount < e.DailyLimit
}

// Reserve returns a copy with one more active request. The receiver is
// not mutated; the persisted increment belongs to the repository layer.
func (e *Executor) Reserve() (*Executor, error) {
	if e.ActiveRequestsCount >= e.DailyLimit {
		return nil, ErrCapacityExceeded
	}
	reserved := *e
	reserved.ActiveRequestsCount++
	return &reserved, nil
}
