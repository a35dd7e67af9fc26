package queries

import (
	"time"

	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderLineResponse is one line of an order as shown to its owner.
type OrderLineResponse struct {
	ID         uuid.UUID
	MenuItemID int64
	Name       string
	Quantity   int
	Price      decimal.Decimal
	Total      decimal.Decimal
	Comment    string
}

// OrderResponse is the owner's view of an order.
type OrderResponse struct {
	ID                uuid.UUID
	Number            string
	UserID            int64
	RestaurantID      int64
	Status            string
	PaymentMethod     string
	Subtotal          decimal.Decimal
	DeliveryFee       decimal.Decimal
	Discount          decimal.Decimal
	Total             decimal.Decimal
	DeliveryAddress   string
	DeliveryLatitude  *float64
	DeliveryLongitude *float64
	CustomerName      string
	CustomerPhone     string
	Comment           string
	EstimatedDelivery *time.Time
	ActualDelivery    *time.Time
	CreatedAt         time.Time
	Lines             []OrderLineResponse
}

// NewOrderResponse flattens an order aggregate.
func NewOrderResponse(o *order.Order) OrderResponse {
	delivery := o.Delivery()
	ts := o.Timestamps()

	resp := OrderResponse{
		ID:                o.ID().Raw(),
		Number:            o.Number().String(),
		UserID:            o.UserID(),
		RestaurantID:      o.RestaurantID(),
		Status:            o.Status().String(),
		PaymentMethod:     o.PaymentMethod().String(),
		Subtotal:          o.Subtotal(),
		DeliveryFee:       o.DeliveryFee(),
		Discount:          o.Discount(),
		Total:             o.Total(),
		DeliveryAddress:   delivery.Address,
		CustomerName:      o.Contact().Name,
		CustomerPhone:     o.Contact().Phone,
		Comment:           o.Comment(),
		EstimatedDelivery: delivery.EstimatedAt,
		ActualDelivery:    ts.ActualDeliveryAt,
		CreatedAt:         ts.CreatedAt,
		Lines:             make([]OrderLineResponse, 0, len(o.Lines())),
	}
	if c := delivery.Coordinates; c != nil {
		lat, lon := c.Latitude(), c.Longitude()
		resp.DeliveryLatitude = &lat
		resp.DeliveryLongitude = &lon
	}

	for _, l := range o.Lines() {
		resp.Lines = append(resp.Lines, OrderLineResponse{
			ID:         l.ID().Raw(),
			MenuItemID: l.MenuItemID(),
			Name:       l.Name(),
			Quantity:   l.Quantity(),
			Price:      l.UnitPrice(),
			Total:      l.Total(),
			Comment:    l.Comment(),
		})
	}
	return resp
}
