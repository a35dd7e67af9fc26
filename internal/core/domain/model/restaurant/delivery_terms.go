package restaurant

import (
	"errors"
	"fmt"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrDeliveryTermsAreNotConstructed = errors.New("DeliveryTerms must be created via NewDeliveryTerms constructor")

// DeliveryTerms are the per-restaurant inputs of delivery pricing.
type DeliveryTerms struct { //nolint:recvcheck //private setters use pointer receivers
	fee                   decimal.Decimal
	freeDeliveryThreshold decimal.Decimal
	maxDistanceKm         float64
	avgDeliveryMinutes    int
	guard                 guard.ConstructorGuard
}

func NewDeliveryTerms(
	fee decimal.Decimal,
	freeDeliveryThreshold decimal.Decimal,
	maxDistanceKm float64,
	avgDeliveryMinutes int,
) (DeliveryTerms, error) {
	t := DeliveryTerms{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		t.setFee(fee),
		t.setFreeDeliveryThreshold(freeDeliveryThreshold),
		t.setMaxDistanceKm(maxDistanceKm),
		t.setAvgDeliveryMinutes(avgDeliveryMinutes),
	); err != nil {
		return DeliveryTerms{}, err
	}

	return t, nil
}

func (t DeliveryTerms) Validate() error {
	return t.guard.Validate(ErrDeliveryTermsAreNotConstructed)
}

func (t DeliveryTerms) Fee() decimal.Decimal                   { return t.fee }
func (t DeliveryTerms) FreeDeliveryThreshold() decimal.Decimal { return t.freeDeliveryThreshold }
func (t DeliveryTerms) MaxDistanceKm() float64                 { return t.maxDistanceKm }
func (t DeliveryTerms) AvgDeliveryMinutes() int                { return t.avgDeliveryMinutes }

func (t *DeliveryTerms) setFee(fee decimal.Decimal) error {
	if fee.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("deliveryFee", fmt.Errorf("%s is negative", fee))
	}
	t.fee = fee
	return nil
}

func (t *DeliveryTerms) setFreeDeliveryThreshold(threshold decimal.Decimal) error {
	if threshold.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("freeDeliveryThreshold", fmt.Errorf("%s is negative", threshold))
	}
	t.freeDeliveryThreshold = threshold
	return nil
}

func (t *DeliveryTerms) setMaxDistanceKm(km float64) error {
	if !(km > 0) {
		return errs.NewValueIsInvalidErrorWithCause("maxDeliveryDistance", fmt.Errorf("%v is not greater than 0", km))
	}
	t.maxDistanceKm = km
	return nil
}

func (t *DeliveryTerms) setAvgDeliveryMinutes(minutes int) error {
	if minutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause("avgDeliveryTime", fmt.Errorf("%d is negative", minutes))
	}
	t.avgDeliveryMinutes = minutes
	return nil
}
