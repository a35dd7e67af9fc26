package queries

import (
	"context"

	"fooddelivery/internal/core/ports"
)

// TrackOrderQueryHandler joins an order with its restaurant profile and
// lifecycle timeline.
type TrackOrderQueryHandler struct {
	orders  ports.OrderRepository
	catalog ports.CatalogStore
}

func NewTrackOrderQueryHandler(orders ports.OrderRepository, catalog ports.CatalogStore) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{
		orders:  orders,
		catalog: catalog,
	}
}

func (h TrackOrderQueryHandler) Handle(ctx context.Context, query TrackOrderQuery) (TrackingResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackingResponse{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return TrackingResponse{}, err
	}
	if err = o.EnsureOwnedBy(query.UserID()); err != nil {
		return TrackingResponse{}, err
	}

	// inactive restaurants still show up in tracking of their past orders
	r, err := h.catalog.GetRestaurant(ctx, o.RestaurantID())
	if err != nil {
		return TrackingResponse{}, err
	}

	profile := r.Profile()
	resp := TrackingResponse{
		OrderID:           o.ID().Raw(),
		Number:            o.Number().String(),
		Status:            o.Status().String(),
		RestaurantName:    profile.Name,
		RestaurantPhone:   profile.Phone,
		RestaurantAddress: profile.Address,
		DeliveryAddress:   o.Delivery().Address,
		EstimatedDelivery: o.Delivery().EstimatedAt,
		ActualDelivery:    o.Timestamps().ActualDeliveryAt,
	}

	timeline := o.Timeline()
	resp.Timeline = make([]TrackingMilestone, 0, len(timeline))
	for _, m := range timeline {
		resp.Timeline = append(resp.Timeline, TrackingMilestone{
			Name:    m.Name,
			Title:   m.Title,
			Reached: m.Reached,
			At:      m.At,
		})
	}
	return resp, nil
}
