package workers

import (
	"context"
	"time"

	"horizonx-storefront/internal/logger"
)

type Scheduler struct {
	log logger.Logger
}

func NewScheduler(log logger.Logger) *Scheduler {
	return &Scheduler{log: log}
}

func (s *Scheduler) RunByDuration(ctx context.Context, dur time.Duration, worker Worker) {
	go s.loop(ctx, dur, worker)
}

func (s *Scheduler) loop(ctx context.Context, dur time.Duration, worker Worker) {
	ticker := time.NewTicker(dur)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Debug("worker stopped", "name", worker.Name())
			return
		case <-ticker.C:
			start := time.Now()

			err := worker.Run(ctx)
			if err != nil {
				s.log.Error("worker failed", "name", worker.Name(), "error", err)
			}

			s.log.Debug("worker finished", "name", worker.Name(), "time", time.Since(start))
		}
	}
}
