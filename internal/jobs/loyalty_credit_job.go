package jobs

import (
	"context"
	"log/slog"
	"sync"

	"fooddelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultLoyaltySchedule runs the job every ten seconds.
const DefaultLoyaltySchedule = "*/10 * * * * *"

type LoyaltyCreditsProcessor interface {
	Handle(ctx context.Context, cmd commands.ProcessLoyaltyCreditsCommand) (int, error)
}

// LoyaltyCreditJob applies pending loyalty credits of delivered orders to
// customer accounts in batches.
type LoyaltyCreditJob struct {
	handler   LoyaltyCreditsProcessor
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewLoyaltyCreditJob creates the job. An empty schedule selects
// DefaultLoyaltySchedule; schedules use the six-field cron format with
// seconds.
func NewLoyaltyCreditJob(
	handler LoyaltyCreditsProcessor,
	schedule string,
	batchSize int,
	logger *slog.Logger,
) *LoyaltyCreditJob {
	if schedule == "" {
		schedule = DefaultLoyaltySchedule
	}
	if batchSize <= 0 {
		batchSize = commands.DefaultLoyaltyBatchSize
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &LoyaltyCreditJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "loyalty_credit_job"),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Start schedules the job.
func (j *LoyaltyCreditJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Loyalty credit job started", "schedule", j.schedule, "batch_size", j.batchSize)
	return nil
}

// Run processes one batch. It is what the scheduler calls on every tick.
func (j *LoyaltyCreditJob) Run() {
	j.wg.Add(1)
	defer j.wg.Done()

	cmd, err := commands.NewProcessLoyaltyCreditsCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(j.ctx, "Invalid loyalty batch size", "error", err)
		return
	}

	applied, err := j.handler.Handle(j.ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(j.ctx, "Loyalty credit job failed", "error", err)
		return
	}
	if applied > 0 {
		j.logger.InfoContext(j.ctx, "Loyalty credits applied", "count", applied)
	}
}

// Stop stops scheduling, cancels a running batch and waits for it to return.
func (j *LoyaltyCreditJob) Stop() {
	<-j.cron.Stop().Done()
	j.cancel()
	j.wg.Wait()
	j.logger.Info("Loyalty credit job stopped")
}
