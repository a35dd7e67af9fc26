package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLoyaltyCreditsProcessor struct{ mock.Mock }

func (m *MockLoyaltyCreditsProcessor) Handle(ctx context.Context, cmd commands.ProcessLoyaltyCreditsCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

type MockNotificationWorker struct{ mock.Mock }

func (m *MockNotificationWorker) Start() { m.Called() }

func (m *MockNotificationWorker) Stop(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoyaltyCreditJob_Run(t *testing.T) {
	handler := new(MockLoyaltyCreditsProcessor)
	handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ProcessLoyaltyCreditsCommand) bool {
		return cmd.BatchSize() == commands.DefaultLoyaltyBatchSize
	})).Return(3, nil).Once()

	job := jobs.NewLoyaltyCreditJob(handler, "", 0, discardLogger())
	job.Run()

	handler.AssertExpectations(t)
}

func TestLoyaltyCreditJob_RunSurvivesErrors(t *testing.T) {
	handler := new(MockLoyaltyCreditsProcessor)
	handler.On("Handle", mock.Anything, mock.Anything).Return(0, errors.New("deadlock detected")).Once()
	handler.On("Handle", mock.Anything, mock.Anything).Return(1, nil).Once()

	job := jobs.NewLoyaltyCreditJob(handler, "", 10, discardLogger())
	assert.NotPanics(t, job.Run)
	assert.NotPanics(t, job.Run)

	handler.AssertNumberOfCalls(t, "Handle", 2)
}

func TestLoyaltyCreditJob_InvalidBatchSize(t *testing.T) {
	handler := new(MockLoyaltyCreditsProcessor)

	job := jobs.NewLoyaltyCreditJob(handler, "", 10_000, discardLogger())
	job.Run()

	handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestLoyaltyCreditJob_Schedule(t *testing.T) {
	handler := new(MockLoyaltyCreditsProcessor)
	ticked := make(chan struct{}, 10)
	handler.On("Handle", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { ticked <- struct{}{} }).
		Return(0, nil)

	job := jobs.NewLoyaltyCreditJob(handler, "* * * * * *", 5, discardLogger())
	require.NoError(t, job.Start())

	select {
	case <-ticked:
	case <-time.After(3 * time.Second):
		t.Fatal("job did not run within three seconds")
	}
	job.Stop()
}

func TestLoyaltyCreditJob_BadSchedule(t *testing.T) {
	job := jobs.NewLoyaltyCreditJob(new(MockLoyaltyCreditsProcessor), "every tuesday", 5, discardLogger())
	assert.Error(t, job.Start())
}

func TestJobManager(t *testing.T) {
	t.Run("starts and stops the notifier with the jobs", func(t *testing.T) {
		notifier := new(MockNotificationWorker)
		notifier.On("Start").Once()
		notifier.On("Stop", mock.Anything).Return(nil).Once()

		job := jobs.NewLoyaltyCreditJob(new(MockLoyaltyCreditsProcessor), "@every 1h", 5, discardLogger())
		manager := jobs.NewJobManager(job, notifier, discardLogger())

		require.NoError(t, manager.StartAll())
		manager.StopAll(t.Context())

		notifier.AssertExpectations(t)
	})

	t.Run("failed job start stops the notifier", func(t *testing.T) {
		notifier := new(MockNotificationWorker)
		notifier.On("Start").Once()
		notifier.On("Stop", mock.Anything).Return(nil).Once()

		job := jobs.NewLoyaltyCreditJob(new(MockLoyaltyCreditsProcessor), "not a schedule", 5, discardLogger())
		manager := jobs.NewJobManager(job, notifier, discardLogger())

		assert.Error(t, manager.StartAll())
		notifier.AssertExpectations(t)
	})

	t.Run("runs without a notifier", func(t *testing.T) {
		job := jobs.NewLoyaltyCreditJob(new(MockLoyaltyCreditsProcessor), "@every 1h", 5, discardLogger())
		manager := jobs.NewJobManager(job, nil, discardLogger())

		require.NoError(t, manager.StartAll())
		assert.NotPanics(t, func() { manager.StopAll(t.Context()) })
	})
}
