package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrTrackOrderQueryIsNotConstructed = errors.New(
	"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
)

// TrackOrderQuery builds the tracking view of an order for its owner.
type TrackOrderQuery struct {
	orderID kernel.UUID
	userID  int64
	guard   guard.ConstructorGuard
}

func NewTrackOrderQuery(orderID kernel.UUID, userID int64) (TrackOrderQuery, error) {
	if err := validateOwner(orderID, userID); err != nil {
		return TrackOrderQuery{}, err
	}
	return TrackOrderQuery{
		orderID: orderID,
		userID:  userID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

func (q TrackOrderQuery) OrderID() kernel.UUID { return q.orderID }
func (q TrackOrderQuery) UserID() int64        { return q.userID }

// TrackingMilestone is one step of the delivery timeline.
type TrackingMilestone struct {
	Name    string
	Title   string
	Reached bool
	At      *time.Time
}

// CourierResponse describes the assigned courier. Courier assignment is not
// implemented, so tracking always reports none.
type CourierResponse struct {
	Name  string
	Phone string
}

// TrackingResponse is what the customer sees while waiting for an order.
type TrackingResponse struct {
	OrderID           uuid.UUID
	Number            string
	Status            string
	RestaurantName    string
	RestaurantPhone   string
	RestaurantAddress string
	DeliveryAddress   string
	EstimatedDelivery *time.Time
	ActualDelivery    *time.Time
	Courier           *CourierResponse
	Timeline          []TrackingMilestone
}
