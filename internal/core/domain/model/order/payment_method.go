package order

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

type PaymentMethod string

const (
	PaymentCash          PaymentMethod = "cash"
	PaymentCard          PaymentMethod = "card"
	PaymentTelegramStars PaymentMethod = "telegram_stars"
	PaymentCrypto        PaymentMethod = "crypto"
)

// ParsePaymentMethod accepts the wire form. An empty string means cash.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	if s == "" {
		return PaymentCash, nil
	}
	pm := PaymentMethod(s)
	if err := pm.Validate(); err != nil {
		return "", err
	}
	return pm, nil
}

func (p PaymentMethod) Validate() error {
	switch p {
	case PaymentCash, PaymentCard, PaymentTelegramStars, PaymentCrypto:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod", fmt.Errorf("%q is not supported", string(p)))
	}
}

func (p PaymentMethod) String() string {
	return string(p)
}
