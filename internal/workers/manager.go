// Package workers
package workers

import (
	"context"
	"time"

	"horizonx-storefront/internal/domain"
	"horizonx-storefront/internal/logger"
)

type Manager struct {
	log logger.Logger

	scheduler *Scheduler
	sessions  domain.SessionStore
	interval  time.Duration
}

type Worker interface {
	Name() string
	Run(ctx context.Context) error
}

func NewManager(log logger.Logger, scheduler *Scheduler, sessions domain.SessionStore, sweepInterval time.Duration) *Manager {
	return &Manager{
		log: log,

		scheduler: scheduler,
		sessions:  sessions,
		interval:  sweepInterval,
	}
}

func (m *Manager) Start(ctx context.Context) {
	m.log.Info("worker: manager started")

	m.scheduler.RunByDuration(ctx, m.interval, NewSessionSweepWorker(m.sessions, m.log))
}
