// Package queries contains read operations of the ordering core. Order
// reads go through the repository ports so ownership rules stay in the
// domain; catalog and loyalty reads run SQL directly against the database.
package queries

import "fooddelivery/internal/pkg/errs"

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Page is an offset window over a sorted result set.
type Page struct {
	skip  int
	limit int
}

// NewPage validates an offset window. A zero limit selects DefaultPageLimit.
func NewPage(skip, limit int) (Page, error) {
	if skip < 0 {
		return Page{}, errs.NewValueIsOutOfRangeError("skip", skip, 0, "unbounded")
	}
	if limit == 0 {
		limit = DefaultPageLimit
	}
	if limit < 1 || limit > MaxPageLimit {
		return Page{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxPageLimit)
	}
	return Page{skip: skip, limit: limit}, nil
}

func (p Page) Skip() int  { return p.skip }
func (p Page) Limit() int { return p.limit }
