// Package loyaltyrepo persists the loyalty credit outbox and customer
// balances.
package loyaltyrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/loyalty"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreditDTO is a row of the loyalty_credits table.
type CreditDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"`
	UserID    int64           `gorm:"not null"`
	Amount    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt time.Time       `gorm:"autoCreateTime:false"`
	AppliedAt *time.Time
}

func (CreditDTO) TableName() string {
	return "loyalty_credits"
}

// CustomerDTO is a row of the customers table.
type CustomerDTO struct {
	UserID        int64 `gorm:"primaryKey;autoIncrement:false"`
	TelegramID    *int64
	LoyaltyPoints int64
	TotalOrders   int64
	TotalSpent    decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	UpdatedAt     time.Time
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func creditFromDomain(c *loyalty.Credit) CreditDTO {
	return CreditDTO{
		ID:        c.ID().Raw(),
		OrderID:   c.OrderID().Raw(),
		UserID:    c.UserID(),
		Amount:    c.Amount(),
		CreatedAt: c.CreatedAt(),
		AppliedAt: c.AppliedAt(),
	}
}

func creditToDomain(dto CreditDTO) (*loyalty.Credit, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFrom(dto.OrderID)
	if err != nil {
		return nil, err
	}
	return loyalty.RestoreCredit(id, orderID, dto.UserID, dto.Amount, dto.CreatedAt, dto.AppliedAt)
}

func customerFromDomain(a *loyalty.Account) CustomerDTO {
	return CustomerDTO{
		UserID:        a.UserID(),
		TelegramID:    a.TelegramID(),
		LoyaltyPoints: a.Points(),
		TotalOrders:   a.TotalOrders(),
		TotalSpent:    a.TotalSpent(),
	}
}

func customerToDomain(dto CustomerDTO) (*loyalty.Account, error) {
	return loyalty.RestoreAccount(dto.UserID, dto.TelegramID, dto.LoyaltyPoints, dto.TotalOrders, dto.TotalSpent)
}
