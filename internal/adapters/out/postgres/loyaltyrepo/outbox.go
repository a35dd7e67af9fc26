package loyaltyrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/loyalty"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var errCreditIsNotApplied = errors.New("loyalty credit has no applied time")

// GormLoyaltyOutbox implements ports.LoyaltyOutbox on the loyalty_credits
// table.
type GormLoyaltyOutbox struct {
	db *gorm.DB
}

func NewGormLoyaltyOutbox(db *gorm.DB) *GormLoyaltyOutbox {
	return &GormLoyaltyOutbox{db: db}
}

// Enqueue inserts the credit unless the order already has one.
func (o *GormLoyaltyOutbox) Enqueue(ctx context.Context, credit *loyalty.Credit) error {
	if err := credit.Validate(); err != nil {
		return err
	}

	dto := creditFromDomain(credit)
	return o.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}},
			DoNothing: true,
		}).
		Create(&dto).Error
}

// ClaimPending selects unapplied credits oldest first with
// FOR UPDATE SKIP LOCKED. The locks are held until the transaction ends.
func (o *GormLoyaltyOutbox) ClaimPending(ctx context.Context, limit int) ([]*loyalty.Credit, error) {
	var dtos []CreditDTO
	err := o.db.WithContext(ctx).
		Clauses(clause.Locking{
			Strength: clause.LockingStrengthUpdate,
			Options:  clause.LockingOptionsSkipLocked,
		}).
		Where("applied_at IS NULL").
		Order("created_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	credits := make([]*loyalty.Credit, 0, len(dtos))
	for _, dto := range dtos {
		c, convErr := creditToDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		credits = append(credits, c)
	}

	return credits, nil
}

func (o *GormLoyaltyOutbox) MarkApplied(ctx context.Context, credit *loyalty.Credit) error {
	if err := credit.Validate(); err != nil {
		return err
	}
	if !credit.IsApplied() {
		return errCreditIsNotApplied
	}

	result := o.db.WithContext(ctx).
		Model(&CreditDTO{ID: credit.ID().Raw()}).
		Update("applied_at", credit.AppliedAt())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("loyaltyCredit", credit.ID().String())
	}

	return nil
}
