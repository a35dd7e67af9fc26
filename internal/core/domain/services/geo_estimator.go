package services

import (
	"errors"
	"fmt"
	"math"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"

	"github.com/shopspring/decimal"
)

const (
	// includedDistanceKm is covered by the flat delivery fee.
	includedDistanceKm = 5.0
	// minutesPerKm is the ETA added for every kilometre of distance.
	minutesPerKm = 2.0
)

// feePerExtraKm is charged for every kilometre past includedDistanceKm.
var feePerExtraKm = decimal.NewFromInt(20)

// ErrDeliveryUnavailable is returned when the destination is farther than the
// restaurant delivers.
var ErrDeliveryUnavailable = errors.New("delivery to this address is not available")

// DeliveryQuote is the outcome of a delivery estimate. DistanceKm is nil when
// no destination was given.
type DeliveryQuote struct {
	Fee        decimal.Decimal
	DistanceKm *float64
	ETAMinutes int
}

// GeoEstimator prices delivery from great-circle distance.
//
//	fee = 0                                   if subtotal >= free threshold
//	fee = flat + max(0, d - 5) * 20           if a destination is known
//	fee = flat                                otherwise
//	eta = avg delivery time + round(d * 2)
//
// Destinations beyond the restaurant's maximum distance are rejected unless
// the subtotal already earns free delivery.
type GeoEstimator struct{}

func NewGeoEstimator() GeoEstimator {
	return GeoEstimator{}
}

// Quote estimates delivery from r to destination. A nil destination yields
// the flat fee and the average delivery time.
func (g GeoEstimator) Quote(
	r *restaurant.Restaurant,
	subtotal decimal.Decimal,
	destination *kernel.Coordinates,
) (DeliveryQuote, error) {
	if err := r.Validate(); err != nil {
		return DeliveryQuote{}, err
	}

	if destination == nil {
		return g.QuoteDistance(r.Terms(), subtotal, nil)
	}

	d, err := r.Location().DistanceKm(*destination)
	if err != nil {
		return DeliveryQuote{}, err
	}
	return g.QuoteDistance(r.Terms(), subtotal, &d)
}

// QuoteDistance applies the pricing rules to an already known distance.
func (g GeoEstimator) QuoteDistance(
	terms restaurant.DeliveryTerms,
	subtotal decimal.Decimal,
	distanceKm *float64,
) (DeliveryQuote, error) {
	if err := terms.Validate(); err != nil {
		return DeliveryQuote{}, err
	}

	quote := DeliveryQuote{
		Fee:        terms.Fee(),
		ETAMinutes: terms.AvgDeliveryMinutes(),
	}

	free := subtotal.GreaterThanOrEqual(terms.FreeDeliveryThreshold())

	if distanceKm != nil {
		d := *distanceKm
		if !free && d > terms.MaxDistanceKm() {
			return DeliveryQuote{}, fmt.Errorf("%w: %.2f km exceeds %.2f km",
				ErrDeliveryUnavailable, d, terms.MaxDistanceKm())
		}

		extraKm := decimal.NewFromFloat(math.Max(0, d-includedDistanceKm))
		quote.Fee = terms.Fee().Add(extraKm.Mul(feePerExtraKm)).Round(2)
		quote.ETAMinutes = terms.AvgDeliveryMinutes() + int(math.Round(d*minutesPerKm))
		quote.DistanceKm = &d
	}

	if free {
		quote.Fee = decimal.Zero
	}

	return quote, nil
}
