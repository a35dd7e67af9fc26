package commands

import (
	"context"
	"time"
)

// ProcessLoyaltyCreditsCommandHandler drains the loyalty outbox.
//
// Claimed credits are locked with SKIP LOCKED so concurrent workers never
// apply the same credit; a failed batch rolls back and is retried on the
// next run.
type ProcessLoyaltyCreditsCommandHandler struct {
	uowFactory LoyaltyUoWFactory
	now        func() time.Time
}

func NewProcessLoyaltyCreditsCommandHandler(uowFactory LoyaltyUoWFactory) ProcessLoyaltyCreditsCommandHandler {
	return ProcessLoyaltyCreditsCommandHandler{
		uowFactory: uowFactory,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Handle returns the number of credits applied.
func (h ProcessLoyaltyCreditsCommandHandler) Handle(ctx context.Context, cmd ProcessLoyaltyCreditsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outbox := uow.LoyaltyOutbox()
	customers := uow.CustomerRepository()

	credits, err := outbox.ClaimPending(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}
	if len(credits) == 0 {
		return 0, nil
	}

	now := h.now()
	for _, credit := range credits {
		account, getErr := customers.GetOrCreateForUpdate(ctx, credit.UserID())
		if getErr != nil {
			return 0, getErr
		}

		if err = account.Apply(credit, now); err != nil {
			return 0, err
		}

		if err = customers.Save(ctx, account); err != nil {
			return 0, err
		}

		if err = outbox.MarkApplied(ctx, credit); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(credits), nil
}
