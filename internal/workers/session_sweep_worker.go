package workers

import (
	"context"
	"fmt"

	"horizonx-storefront/internal/domain"
	"horizonx-storefront/internal/logger"
)

type SessionSweepWorker struct {
	sessions domain.SessionStore
	log      logger.Logger
}

func NewSessionSweepWorker(sessions domain.SessionStore, log logger.Logger) Worker {
	return &SessionSweepWorker{
		sessions: sessions,
		log:      log,
	}
}

func (w *SessionSweepWorker) Name() string {
	return "session_sweep"
}

func (w *SessionSweepWorker) Run(ctx context.Context) error {
	n, err := w.sessions.DeleteExpired(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete expired sessions: %w", err)
	}

	if n > 0 {
		w.log.Info("expired sessions removed", "count", n)
	}

	return nil
}
