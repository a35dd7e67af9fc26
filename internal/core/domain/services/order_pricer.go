package services

import (
	"context"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// RequestedLine is one position as submitted by the customer.
type RequestedLine struct {
	MenuItemID int64
	Quantity   int
	Comment    string
}

// PricedLine is a requested line matched to its catalog item.
type PricedLine struct {
	Item     *restaurant.MenuItem
	Quantity int
	Comment  string
	Total    decimal.Decimal
}

// PricedOrder is the validated and priced input of a new order.
type PricedOrder struct {
	Restaurant *restaurant.Restaurant
	Lines      []PricedLine
	Subtotal   decimal.Decimal
	Quote      DeliveryQuote
}

// OrderLines snapshots the priced lines into order lines, keeping the
// request order as position.
func (p PricedOrder) OrderLines() ([]*order.Line, error) {
	lines := make([]*order.Line, 0, len(p.Lines))
	for i, pl := range p.Lines {
		l, err := order.NewLine(
			kernel.NewUUID(),
			pl.Item.ID(),
			pl.Item.Name(),
			pl.Quantity,
			pl.Item.Price(),
			pl.Comment,
			i,
		)
		if err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, nil
}

// OrderPricer checks a requested order against the catalog and computes its
// subtotal and delivery quote. It never writes.
type OrderPricer struct {
	catalog ports.CatalogStore
	geo     GeoEstimator
}

func NewOrderPricer(catalog ports.CatalogStore, geo GeoEstimator) OrderPricer {
	return OrderPricer{catalog: catalog, geo: geo}
}

// Price fails with restaurant.ErrRestaurantNotFound for unknown or inactive
// restaurants, restaurant.ErrItemNotFound or restaurant.ErrItemUnavailable for
// bad lines, and ErrDeliveryUnavailable when the destination is out of range.
func (p OrderPricer) Price(
	ctx context.Context,
	restaurantID int64,
	requested []RequestedLine,
	destination *kernel.Coordinates,
) (PricedOrder, error) {
	if len(requested) == 0 {
		return PricedOrder{}, errs.NewValueIsRequiredError("lines")
	}

	r, err := p.catalog.GetRestaurant(ctx, restaurantID)
	if err != nil {
		return PricedOrder{}, err
	}
	if err = r.EnsureAcceptsOrders(); err != nil {
		return PricedOrder{}, err
	}

	priced := PricedOrder{
		Restaurant: r,
		Lines:      make([]PricedLine, 0, len(requested)),
		Subtotal:   decimal.Zero,
	}

	for _, rl := range requested {
		if rl.Quantity < 1 || rl.Quantity > order.MaxLineQuantity {
			return PricedOrder{}, errs.NewValueIsOutOfRangeError("quantity", rl.Quantity, 1, order.MaxLineQuantity)
		}

		item, itemErr := p.catalog.GetMenuItem(ctx, restaurantID, rl.MenuItemID)
		if itemErr != nil {
			return PricedOrder{}, itemErr
		}
		if item.RestaurantID() != restaurantID {
			return PricedOrder{}, fmt.Errorf("%w: item %d is not on the menu of restaurant %d",
				restaurant.ErrItemNotFound, rl.MenuItemID, restaurantID)
		}
		if itemErr = item.EnsureOrderable(); itemErr != nil {
			return PricedOrder{}, itemErr
		}

		total := item.Price().Mul(decimal.NewFromInt(int64(rl.Quantity)))
		priced.Subtotal = priced.Subtotal.Add(total)
		priced.Lines = append(priced.Lines, PricedLine{
			Item:     item,
			Quantity: rl.Quantity,
			Comment:  rl.Comment,
			Total:    total,
		})
	}

	priced.Quote, err = p.geo.Quote(r, priced.Subtotal, destination)
	if err != nil {
		return PricedOrder{}, err
	}

	return priced, nil
}
