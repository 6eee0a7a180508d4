// FILE: internal/scheduler/cleanup_scheduler.go
package scheduler

import (
	"context"

	"promptly-be/internal/pkg/logger"
	"promptly-be/internal/service"

	"github.com/robfig/cron/v3"
)

// CleanupScheduler runs the recycle bin retention sweep on a cron schedule.
// Ticks are funneled through a single worker so overlapping schedules cannot
// run two sweeps at once.
type CleanupScheduler struct {
	cron       *cron.Cron
	recycleBin service.IRecycleBinService
	log        logger.ILogger
	ticks      chan struct{}
	done       chan struct{}
}

func NewCleanupScheduler(recycleBin service.IRecycleBinService, log logger.ILogger) *CleanupScheduler {
	return &CleanupScheduler{
		cron:       cron.New(),
		recycleBin: recycleBin,
		log:        log,
		ticks:      make(chan struct{}, 1),
		done:       make(chan struct{}),
	}
}

// Start registers the schedule and launches the sweep worker. An invalid cron
// expression is reported before anything runs.
func (s *CleanupScheduler) Start(ctx context.Context, schedule string) error {
	_, err := s.cron.AddFunc(schedule, func() {
		select {
		case s.ticks <- struct{}{}:
		default:
			// A sweep is already pending; skip this tick.
		}
	})
	if err != nil {
		return err
	}

	go s.worker(ctx)
	s.cron.Start()

	// One sweep at startup so a long-stopped instance catches up immediately.
	s.ticks <- struct{}{}

	return nil
}

func (s *CleanupScheduler) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	close(s.ticks)
	<-s.done
}

func (s *CleanupScheduler) worker(ctx context.Context) {
	defer close(s.done)
	for range s.ticks {
		purged, err := s.recycleBin.CleanupExpiredItems(ctx)
		if err != nil {
			s.log.Error("scheduler", "Recycle bin sweep failed", map[string]interface{}{
				"error": err.Error(),
			})
			continue
		}
		if purged > 0 {
			s.log.Info("scheduler", "Recycle bin sweep purged expired items", map[string]interface{}{
				"purged": purged,
			})
		}
	}
}
