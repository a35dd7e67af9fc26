package jobs

import (
	"context"
	"fmt"
	"log/slog"
)

type NotificationWorker interface {
	Start()
	Stop(ctx context.Context) error
}

// JobManager coordinates the background work of the application: the
// scheduled loyalty job and the notification worker.
type JobManager struct {
	loyaltyCreditJob *LoyaltyCreditJob
	notifier         NotificationWorker
	logger           *slog.Logger
}

// NewJobManager creates a new job manager. notifier may be nil.
func NewJobManager(
	loyaltyCreditJob *LoyaltyCreditJob,
	notifier NotificationWorker,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		loyaltyCreditJob: loyaltyCreditJob,
		notifier:         notifier,
		logger:           logger.With("component", "job_manager"),
	}
}

// StartAll starts all background jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.notifier != nil {
		jm.notifier.Start()
	}

	if err := jm.loyaltyCreditJob.Start(); err != nil {
		// Stop already started workers if this one fails
		jm.stopNotifier(context.Background())
		return fmt.Errorf("failed to start loyalty credit job: %w", err)
	}

	return nil
}

// StopAll stops the scheduler first so no new work is produced, then drains
// pending notifications until ctx is done.
func (jm *JobManager) StopAll(ctx context.Context) {
	jm.loyaltyCreditJob.Stop()
	jm.stopNotifier(ctx)
}

func (jm *JobManager) stopNotifier(ctx context.Context) {
	if jm.notifier == nil {
		return
	}
	if err := jm.notifier.Stop(ctx); err != nil {
		jm.logger.WarnContext(ctx, "Notifier did not drain in time", "error", err)
	}
}
