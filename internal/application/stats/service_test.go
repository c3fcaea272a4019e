package stats

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/executor-balancer/executor-balancer/internal/domain/executor"
	executorMocks "github.com/executor-balancer/executor-balancer/internal/domain/executor/mocks"
)

func TestSystemLoadCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := executorMocks.NewMockRepository(ctrl)
	svc := NewService(repo, time.Minute, zerolog.Nop())
	ctx := context.Background()

	roster := []*executor.Executor{
		{ID: "a", Status: executor.StatusActive, DailyLimit: 10, ActiveRequestsCount: 5},
	}
	// one repository hit serves both calls within the TTL
	repo.EXPECT().GetAll(ctx).Return(roster, nil).Times(1)

	first, err := svc.SystemLoad(ctx)
	require.NoError(t, err)
	second, err := svc.SystemLoad(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, first.ActiveExecutors)
	assert.InDelta(t, 50, first.SystemLoadPercentage, 1e-9)
}

func TestExecutorStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := executorMocks.NewMockRepository(ctrl)
	svc := NewService(repo, time.Second, zerolog.Nop())
	ctx := context.Background()

	repo.EXPECT().GetByID(ctx, "exec-1").Return(&executor.Executor{
		ID: "exec-1", Name: "Ada", Status: executor.StatusActive,
		DailyLimit: 4, ActiveRequestsCount: 1,
	}, nil)

	stats, err := svc.ExecutorStats(ctx, "exec-1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", stats.Name)
	assert.InDelta(t, 25, stats.WorkloadPercentage, 1e-9)
}

func TestExecutorStatsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := executorMocks.NewMockRepository(ctrl)
	svc := NewService(repo, time.Second, zerolog.Nop())
	ctx := context.Background()

	repo.EXPECT().GetByID(ctx, "ghost").Return(nil, nil)

	_, err := svc.ExecutorStats(ctx, "ghost")
	assert.Error(t, err)
}
