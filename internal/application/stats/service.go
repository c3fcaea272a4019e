package stats

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/executor-balancer/executor-balancer/internal/domain/executor"
	"github.com/executor-balancer/executor-balancer/internal/domain/matching"
)

const systemLoadKey = "system_load"

// Service computes workload statistics over roster snapshots. The system
// aggregate is cached briefly because dashboards poll it on a tight loop.
type Service struct {
	repo   executor.Repository
	cache  *gocache.Cache
	logger zerolog.Logger
}

func NewService(repo executor.Repository, ttl time.Duration, logger zerolog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  gocache.New(ttl, 2*ttl),
		logger: logger.With().Str("service", "stats").Logger(),
	}
}

// SystemLoad returns the roster-wide workload aggregate.
func (s *Service) SystemLoad(ctx context.Context) (matching.SystemLoad, error) {
	if cached, ok := s.cache.Get(systemLoadKey); ok {
		return cached.(matching.SystemLoad), nil
	}
	roster, err := s.repo.GetAll(ctx)
	if err != nil {
		return matching.SystemLoad{}, fmt.Errorf("load executors: %w", err)
	}
	load := matching.ComputeSystemLoad(roster)
	s.cache.SetDefault(systemLoadKey, load)
	return load, nil
}

// ExecutorStats returns the workload summary for one executor.
func (s *Service) ExecutorStats(ctx context.Context, executorID string) (matching.ExecutorStats, error) {
	exec, err := s.repo.GetByID(ctx, executorID)
	if err != nil {
		return matching.ExecutorStats{}, err
	}
	if exec == nil {
		return matching.ExecutorStats{}, fmt.Errorf("executor not found: %s", executorID)
	}
	return matching.ComputeExecutorStats(exec), nil
}
