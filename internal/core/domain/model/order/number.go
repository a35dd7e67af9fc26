package order

import (
	"fmt"
	"regexp"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

const numberSuffixLen = 6

var numberPattern = regexp.MustCompile(`^ORD-\d{8}-[0-9A-F]{6}$`)

// Number is the human-readable order reference shown to customers,
// e.g. ORD-20250114-9F3A0C. Uniqueness is enforced by storage; callers
// regenerate on collision.
type Number string

// NewNumber derives a number from the calendar day of now (UTC) and the
// leading hex digits of seed.
func NewNumber(seed kernel.UUID, now time.Time) Number {
	return Number(fmt.Sprintf("ORD-%s-%s", now.UTC().Format("20060102"), seed.ShortCode(numberSuffixLen)))
}

func ParseNumber(s string) (Number, error) {
	if !numberPattern.MatchString(s) {
		return "", errs.NewValueIsInvalidErrorWithCause("orderNumber", fmt.Errorf("%q has unexpected format", s))
	}
	return Number(s), nil
}

func (n Number) String() string {
	return string(n)
}
