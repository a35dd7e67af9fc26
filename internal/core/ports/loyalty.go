package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/loyalty"
)

// LoyaltyOutbox stores credits of delivered orders until they are applied.
type LoyaltyOutbox interface {
	// Enqueue stores a credit. It is a no-op when the order already has one.
	Enqueue(ctx context.Context, credit *loyalty.Credit) error

	// ClaimPending locks up to limit unapplied credits, oldest first, skipping
	// rows locked by concurrent workers.
	ClaimPending(ctx context.Context, limit int) ([]*loyalty.Credit, error)

	// MarkApplied records the applied time of a credit.
	MarkApplied(ctx context.Context, credit *loyalty.Credit) error
}

// CustomerRepository persists loyalty accounts.
type CustomerRepository interface {
	// GetOrCreateForUpdate loads and locks an account, creating an empty one
	// for customers without history.
	GetOrCreateForUpdate(ctx context.Context, userID int64) (*loyalty.Account, error)

	// Save inserts or updates the account balance.
	Save(ctx context.Context, account *loyalty.Account) error

	// TelegramChatID returns the chat used for notifications, if the
	// customer has one.
	TelegramChatID(ctx context.Context, userID int64) (int64, bool, error)
}
