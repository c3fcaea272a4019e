package balancer

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/executor-balancer/executor-balancer/internal/domain/assignment"
	assignmentMocks "github.com/executor-balancer/executor-balancer/internal/domain/assignment/mocks"
	"github.com/executor-balancer/executor-balancer/internal/domain/executor"
	executorMocks "github.com/executor-balancer/executor-balancer/internal/domain/executor/mocks"
	"github.com/executor-balancer/executor-balancer/internal/domain/matching"
	"github.com/executor-balancer/executor-balancer/internal/domain/request"
	requestMocks "github.com/executor-balancer/executor-balancer/internal/domain/request/mocks"
	"github.com/executor-balancer/executor-balancer/internal/domain/rule"
	ruleMocks "github.com/executor-balancer/executor-balancer/internal/domain/rule/mocks"
)

type fixture struct {
	executorRepo   *executorMocks.MockRepository
	requestRepo    *requestMocks.MockRepository
	assignmentRepo *assignmentMocks.MockRepository
	committer      *assignmentMocks.MockCommitter
	ruleRepo       *ruleMocks.MockRepository
	service        *Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		executorRepo:   executorMocks.NewMockRepository(ctrl),
		requestRepo:    requestMocks.NewMockRepository(ctrl),
		assignmentRepo: assignmentMocks.NewMockRepository(ctrl),
		committer:      assignmentMocks.NewMockCommitter(ctrl),
		ruleRepo:       ruleMocks.NewMockRepository(ctrl),
	}
	f.service = NewService(f.executorRepo, f.requestRepo, f.assignmentRepo, f.committer, f.ruleRepo, matching.DefaultWeights(), zerolog.Nop())
	return f
}

func testExecutor(id string) *executor.Executor {
	return &executor.Executor{
		ID:              id,
		Name:            id,
		Role:            executor.RoleProgrammer,
		Status:          executor.StatusActive,
		Weight:          0.5,
		SuccessRate:     0.9,
		ExperienceYears: 5,
		Specialization:  []string{"Python"},
		LanguageSkills:  []string{"ru"},
		Timezone:        "MSK",
		DailyLimit:      10,
	}
}

func TestSearchExecutors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	roster := []*executor.Executor{testExecutor("a"), testExecutor("b")}
	f.executorRepo.EXPECT().GetAll(ctx).Return(roster, nil)
	f.ruleRepo.EXPECT().ListActive(ctx).Return([]*rule.Rule{}, nil)

	results, err := f.service.SearchExecutors(ctx, matching.Spec{
		Priority:   request.PriorityHigh,
		Category:   request.CategoryDevelopment,
		Complexity: request.ComplexityMedium,
	})
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestSearchExecutorsEmptyRoster(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.executorRepo.EXPECT().GetAll(ctx).Return(nil, nil)
	f.ruleRepo.EXPECT().ListActive(ctx).Return(nil, nil)

	results, err := f.service.SearchExecutors(ctx, matching.Spec{})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestCommitAssignment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	exec := testExecutor("exec-1")
	exec.ActiveRequestsCount = 2
	req := &request.Request{ID: uuid.New(), Title: "deploy", Status: request.StatusPending}

	f.executorRepo.EXPECT().GetByID(ctx, "exec-1").Return(exec, nil)
	f.requestRepo.EXPECT().GetByID(ctx, req.ID).Return(req, nil)
	f.committer.EXPECT().
		Commit(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, assigned *request.Request, asg *assignment.Assignment) error {
			assert.Equal(t, request.StatusAssigned, assigned.Status)
			require.NotNil(t, assigned.AssignedExecutorID)
			assert.Equal(t, "exec-1", *assigned.AssignedExecutorID)
			assert.Equal(t, req.ID, asg.RequestID)
			assert.Equal(t, "exec-1", asg.ExecutorID)
			assert.Equal(t, assignment.StatusActive, asg.Status)
			assert.False(t, asg.AssignedAt.IsZero())
			return nil
		})

	asg, err := f.service.CommitAssignment(ctx, "exec-1", req.ID)
	require.NoError(t, err)
	require.NotNil(t, asg)

	// the loaded snapshot must never be mutated by the service
	assert.Equal(t, request.StatusPending, req.Status)
	assert.Equal(t, 2, exec.ActiveRequestsCount)
}

func TestCommitAssignmentExecutorNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.executorRepo.EXPECT().GetByID(ctx, "ghost").Return(nil, nil)

	_, err := f.service.CommitAssignment(ctx, "ghost", uuid.New())
	assert.ErrorIs(t, err, ErrExecutorNotFound)
}

func TestCommitAssignmentRequestNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	requestID := uuid.New()
	f.executorRepo.EXPECT().GetByID(ctx, "exec-1").Return(testExecutor("exec-1"), nil)
	f.requestRepo.EXPECT().GetByID(ctx, requestID).Return(nil, nil)

	_, err := f.service.CommitAssignment(ctx, "exec-1", requestID)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestCommitAssignmentAlreadyAssigned(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	other := "other-exec"
	req := &request.Request{ID: uuid.New(), Status: request.StatusAssigned, AssignedExecutorID: &other}

	f.executorRepo.EXPECT().GetByID(ctx, "exec-1").Return(testExecutor("exec-1"), nil)
	f.requestRepo.EXPECT().GetByID(ctx, req.ID).Return(req, nil)

	_, err := f.service.CommitAssignment(ctx, "exec-1", req.ID)
	assert.ErrorIs(t, err, request.ErrAlreadyAssigned)
}

func TestCommitAssignmentExecutorInactive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	exec := testExecutor("exec-1")
	exec.Status = executor.StatusInactive
	req := &request.Request{ID: uuid.New(), Status: request.StatusPending}

	f.executorRepo.EXPECT().GetByID(ctx, "exec-1").Return(exec, nil)
	f.requestRepo.EXPECT().GetByID(ctx, req.ID).Return(req, nil)

	_, err := f.service.CommitAssignment(ctx, "exec-1", req.ID)
	assert.ErrorIs(t, err, ErrExecutorInactive)
}

func TestCommitAssignmentCapacityExceeded(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	exec := testExecutor("exec-1")
	exec.ActiveRequestsCount = exec.DailyLimit
	req := &request.Request{ID: uuid.New(), Status: request.StatusPending}

	f.executorRepo.EXPECT().GetByID(ctx, "exec-1").Return(exec, nil)
	f.requestRepo.EXPECT().GetByID(ctx, req.ID).Return(req, nil)

	_, err := f.service.CommitAssignment(ctx, "exec-1", req.ID)
	assert.ErrorIs(t, err, executor.ErrCapacityExceeded)
}

func TestAssignFairly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	busy := testExecutor("busy")
	busy.ActiveRequestsCount = 8
	idle := testExecutor("idle")

	f.executorRepo.EXPECT().GetAll(ctx).Return([]*executor.Executor{busy, idle}, nil)
	f.requestRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, req *request.Request) error {
			assert.Equal(t, request.StatusPending, req.Status)
			assert.Equal(t, request.PriorityMedium, req.Priority, "defaults applied")
			return nil
		})
	f.committer.EXPECT().
		Commit(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, assigned *request.Request, asg *assignment.Assignment) error {
			assert.Equal(t, "idle", *assigned.AssignedExecutorID)
			assert.Equal(t, "idle", asg.ExecutorID)
			return nil
		})

	result, err := f.service.AssignFairly(ctx, FairAssignInput{Title: "triage inbox"})
	require.NoError(t, err)
	assert.Equal(t, "idle", result.Executor.ID)
	assert.Equal(t, request.StatusAssigned, result.Request.Status)
	require.NotNil(t, result.Assignment)
}

func TestAssignFairlyNoExecutors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.executorRepo.EXPECT().GetAll(ctx).Return(nil, nil)

	_, err := f.service.AssignFairly(ctx, FairAssignInput{Title: "orphan"})
	assert.ErrorIs(t, err, ErrNoAvailableExecutor)
}

func TestAssignFairlyCommitConflictCleansUp(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.executorRepo.EXPECT().GetAll(ctx).Return([]*executor.Executor{testExecutor("only")}, nil)

	var createdID uuid.UUID
	f.requestRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, req *request.Request) error {
			createdID = req.ID
			return nil
		})
	f.committer.EXPECT().Commit(ctx, gomock.Any(), gomock.Any()).Return(assignment.ErrConflict)
	f.requestRepo.EXPECT().
		Delete(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID) error {
			assert.Equal(t, createdID, id)
			return nil
		})

	_, err := f.service.AssignFairly(ctx, FairAssignInput{Title: "conflicted"})
	assert.ErrorIs(t, err, assignment.ErrConflict)
}
