package request

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssign(t *testing.T) {
	r := &Request{ID: uuid.New(), Status: StatusPending}

	assigned, err := r.Assign("exec-1")
	require.NoError(t, err)
	assert.Equal(t, StatusAssigned, assigned.Status)
	require.NotNil(t, assigned.AssignedExecutorID)
	assert.Equal(t, "exec-1", *assigned.AssignedExecutorID)

	assert.Equal(t, StatusPending, r.Status, "receiver must not be mutated")
	assert.Nil(t, r.AssignedExecutorID)
}

func TestAssignAlreadyAssigned(t *testing.T) {
	execID := "exec-1"
	r := &Request{ID: uuid.New(), Status: StatusAssigned, AssignedExecutorID: &execID}

	assigned, err := r.Assign("exec-2")
	require.ErrorIs(t, err, ErrAlreadyAssigned)
	assert.Nil(t, assigned)
	assert.Equal(t, "exec-1", *r.AssignedExecutorID)
}

func TestAssignTerminalStatus(t *testing.T) {
	for _, status := range []Status{StatusCompleted, StatusCancelled} {
		r := &Request{ID: uuid.New(), Status: status}
		_, err := r.Assign("exec-1")
		assert.Error(t, err, "status %s", status)
	}
}

func TestCanTransitionTo(t *testing.T) {
	r := &Request{Status: StatusPending}
	assert.True(t, r.CanTransitionTo(StatusAssigned))
	assert.True(t, r.CanTransitionTo(StatusCancelled))
	assert.False(t, r.CanTransitionTo(StatusCompleted))

	r.Status = StatusAssigned
	assert.True(t, r.CanTransitionTo(StatusInProgress))
	assert.False(t, r.CanTransitionTo(StatusPending))

	r.Status = StatusCompleted
	assert.False(t, r.CanTransitionTo(StatusCancelled))
}

func TestCancel(t *testing.T) {
	r := &Request{Status: StatusPending}
	require.NoError(t, r.Cancel())
	assert.Equal(t, StatusCancelled, r.Status)

	require.ErrorIs(t, r.Cancel(), ErrInvalidTransition)
}
