package kernel

import (
	"fmt"
	"strings"

	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, ParseUUID or UUIDFrom")

// UUID identifies orders, order lines and loyalty credits.
//
// The zero value is invalid; create instances with NewUUID, ParseUUID or
// UUIDFrom.
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random (version 4) identifier.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// ParseUUID parses the textual form accepted by github.com/google/uuid, which
// includes the braced and urn:uuid: variants. The nil UUID is rejected.
func ParseUUID(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("uuid", err)
	}
	return UUIDFrom(id)
}

// UUIDFrom wraps a persisted uuid.UUID.
func UUIDFrom(id uuid.UUID) (UUID, error) {
	u := UUID{id: id}
	if err := u.Validate(); err != nil {
		return UUID{}, err
	}
	return u, nil
}

func (u UUID) String() string {
	return u.id.String()
}

// Raw returns the underlying uuid.UUID for persistence adapters.
func (u UUID) Raw() uuid.UUID {
	return u.id
}

// ShortCode returns the first n hexadecimal digits of the identifier in
// upper case. n is clamped to [1, 32].
func (u UUID) ShortCode(n int) string {
	hex := strings.ReplaceAll(u.id.String(), "-", "")
	n = max(1, min(n, len(hex)))
	return strings.ToUpper(hex[:n])
}

func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}

// MarshalText lets UUID appear directly in JSON read models.
func (u UUID) MarshalText() ([]byte, error) {
	if err := u.Validate(); err != nil {
		return nil, fmt.Errorf("marshal uuid: %w", err)
	}
	return []byte(u.id.String()), nil
}
