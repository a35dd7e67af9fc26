package queries

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListRestaurantsQueryIsNotConstructed = errors.New(
	"ListRestaurantsQuery must be created via NewListRestaurantsQuery constructor",
)

// ListRestaurantsQuery searches active restaurants, best rated first.
//
// When origin is set every result carries its distance from origin; with
// maxDistanceKm also set, farther restaurants are left out.
type ListRestaurantsQuery struct {
	search        string
	origin        *kernel.Coordinates
	maxDistanceKm *float64
	page          Page
	guard         guard.ConstructorGuard
}

func NewListRestaurantsQuery(
	search string,
	origin *kernel.Coordinates,
	maxDistanceKm *float64,
	skip, limit int,
) (ListRestaurantsQuery, error) {
	var err error
	if origin != nil {
		if vErr := origin.Validate(); vErr != nil {
			err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("origin", vErr))
		}
	}
	if maxDistanceKm != nil && *maxDistanceKm <= 0 {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError("maxDistanceKm", *maxDistanceKm, 0, "unbounded"))
	}
	page, pErr := NewPage(skip, limit)
	if err = errors.Join(err, pErr); err != nil {
		return ListRestaurantsQuery{}, err
	}

	return ListRestaurantsQuery{
		search:        strings.TrimSpace(search),
		origin:        origin,
		maxDistanceKm: maxDistanceKm,
		page:          page,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (q ListRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrListRestaurantsQueryIsNotConstructed)
}

func (q ListRestaurantsQuery) Search() string              { return q.search }
func (q ListRestaurantsQuery) Origin() *kernel.Coordinates { return q.origin }
func (q ListRestaurantsQuery) MaxDistanceKm() *float64     { return q.maxDistanceKm }
func (q ListRestaurantsQuery) Page() Page                  { return q.page }
func (q ListRestaurantsQuery) filtersByDistance() bool {
	return q.origin != nil && q.maxDistanceKm != nil
}

// RestaurantResponse is a catalog card of a restaurant.
type RestaurantResponse struct {
	ID                    int64
	Name                  string
	Description           string
	Phone                 string
	Address               string
	Latitude              float64
	Longitude             float64
	DeliveryFee           decimal.Decimal
	FreeDeliveryThreshold decimal.Decimal
	MaxDeliveryDistanceKm float64
	AvgDeliveryMinutes    int
	Rating                float64
	DistanceKm            *float64
}
