package loyaltyrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/loyalty"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCustomerRepository implements ports.CustomerRepository.
type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// GetOrCreateForUpdate locks the customer's row, inserting an empty one first
// when the customer has no history. Concurrent callers for the same user
// serialize on the row lock, so each sees the balance committed by the other.
//
// Example:
//
//	account, err := uow.CustomerRepository().GetOrCreateForUpdate(ctx, credit.UserID())
//	if err != nil {
//	    return err
//	}
//	if err := account.Apply(credit, now); err != nil {
//	    return err
//	}
//	return uow.CustomerRepository().Save(ctx, account)
func (r *GormCustomerRepository) GetOrCreateForUpdate(ctx context.Context, userID int64) (*loyalty.Account, error) {
	empty, err := loyalty.NewAccount(userID)
	if err != nil {
		return nil, err
	}

	dto := customerFromDomain(empty)
	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).
		Create(&dto).Error
	if err != nil {
		return nil, err
	}

	var locked CustomerDTO
	err = r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		First(&locked, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", userID)
		}
		return nil, err
	}

	return customerToDomain(locked)
}

// Save upserts the balance columns. The telegram id is owned by the bot
// registration flow and is never overwritten here.
func (r *GormCustomerRepository) Save(ctx context.Context, account *loyalty.Account) error {
	dto := customerFromDomain(account)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"loyalty_points",
				"total_orders",
				"total_spent",
				"updated_at",
			}),
		}).
		Create(&dto).Error
}

// TelegramChatID returns false when the customer is unknown or has not
// linked a chat.
func (r *GormCustomerRepository) TelegramChatID(ctx context.Context, userID int64) (int64, bool, error) {
	var dto CustomerDTO
	err := r.db.WithContext(ctx).
		Select("user_id", "telegram_id").
		First(&dto, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}

	if dto.TelegramID == nil {
		return 0, false, nil
	}
	return *dto.TelegramID, true, nil
}
