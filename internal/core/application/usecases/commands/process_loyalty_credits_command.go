package commands

import (
	"errors"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

const (
	DefaultLoyaltyBatchSize = 50
	maxLoyaltyBatchSize     = 500
)

var ErrProcessLoyaltyCreditsCommandIsNotConstructed = errors.New(
	"ProcessLoyaltyCreditsCommand must be created via NewProcessLoyaltyCreditsCommand constructor",
)

// ProcessLoyaltyCreditsCommand applies up to batchSize pending credits.
type ProcessLoyaltyCreditsCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

func NewProcessLoyaltyCreditsCommand(batchSize int) (ProcessLoyaltyCreditsCommand, error) {
	cmd := ProcessLoyaltyCreditsCommand{guard: guard.NewConstructorGuard()}
	if err := cmd.setBatchSize(batchSize); err != nil {
		return ProcessLoyaltyCreditsCommand{}, err
	}
	return cmd, nil
}

func (c ProcessLoyaltyCreditsCommand) Validate() error {
	return c.guard.Validate(ErrProcessLoyaltyCreditsCommandIsNotConstructed)
}

func (c ProcessLoyaltyCreditsCommand) BatchSize() int {
	return c.batchSize
}

func (c *ProcessLoyaltyCreditsCommand) setBatchSize(n int) error {
	if n < 1 || n > maxLoyaltyBatchSize {
		return errs.NewValueIsOutOfRangeError("batchSize", n, 1, maxLoyaltyBatchSize)
	}
	c.batchSize = n
	return nil
}
