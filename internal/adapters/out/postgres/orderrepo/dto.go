// Package orderrepo maps the order aggregate to the orders and order_items
// tables.
package orderrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is a row of the orders table. Lines are loaded through the
// order_items association.
type OrderDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Number        string          `gorm:"column:order_number;type:varchar(32);uniqueIndex;not null"`
	UserID        int64           `gorm:"not null;index"`
	RestaurantID  int64           `gorm:"not null"`
	Status        string          `gorm:"type:varchar(16);not null"`
	PaymentMethod string          `gorm:"type:varchar(16);not null"`
	Subtotal      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DeliveryFee   decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Discount      decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Total         decimal.Decimal `gorm:"type:numeric(12,2);not null"`

	DeliveryAddress   string   `gorm:"not null"`
	DeliveryLatitude  *float64 `gorm:"column:delivery_latitude"`
	DeliveryLongitude *float64 `gorm:"column:delivery_longitude"`
	CustomerName      string
	CustomerPhone     string
	Comment           string

	EstimatedDeliveryTime *time.Time
	ActualDeliveryTime    *time.Time
	CreatedAt             time.Time `gorm:"autoCreateTime:false"`
	ConfirmedAt           *time.Time
	PreparingAt           *time.Time
	ReadyAt               *time.Time
	DeliveringAt          *time.Time
	DeliveredAt           *time.Time
	CancelledAt           *time.Time

	Lines []LineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO is a row of the order_items table.
type LineDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	MenuItemID int64           `gorm:"not null"`
	Name       string          `gorm:"type:varchar(255);not null"`
	Quantity   int             `gorm:"not null"`
	Price      decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Total      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Comment    string
	Position   int `gorm:"not null"`
}

func (LineDTO) TableName() string {
	return "order_items"
}

// statusColumns are the only columns rewritten after creation.
var statusColumns = []string{
	"status",
	"actual_delivery_time",
	"confirmed_at",
	"preparing_at",
	"ready_at",
	"delivering_at",
	"delivered_at",
	"cancelled_at",
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Raw()
	ts := o.Timestamps()
	delivery := o.Delivery()
	contact := o.Contact()

	dto := OrderDTO{
		ID:                    orderID,
		Number:                o.Number().String(),
		UserID:                o.UserID(),
		RestaurantID:          o.RestaurantID(),
		Status:                o.Status().String(),
		PaymentMethod:         o.PaymentMethod().String(),
		Subtotal:              o.Subtotal(),
		DeliveryFee:           o.DeliveryFee(),
		Discount:              o.Discount(),
		Total:                 o.Total(),
		DeliveryAddress:       delivery.Address,
		CustomerName:          contact.Name,
		CustomerPhone:         contact.Phone,
		Comment:               o.Comment(),
		EstimatedDeliveryTime: delivery.EstimatedAt,
		ActualDeliveryTime:    ts.ActualDeliveryAt,
		CreatedAt:             ts.CreatedAt,
		ConfirmedAt:           ts.ConfirmedAt,
		PreparingAt:           ts.PreparingAt,
		ReadyAt:               ts.ReadyAt,
		DeliveringAt:          ts.DeliveringAt,
		DeliveredAt:           ts.DeliveredAt,
		CancelledAt:           ts.CancelledAt,
	}

	if c := delivery.Coordinates; c != nil {
		lat, lon := c.Latitude(), c.Longitude()
		dto.DeliveryLatitude = &lat
		dto.DeliveryLongitude = &lon
	}

	lines := o.Lines()
	dto.Lines = make([]LineDTO, 0, len(lines))
	for _, l := range lines {
		dto.Lines = append(dto.Lines, LineDTO{
			ID:         l.ID().Raw(),
			OrderID:    orderID,
			MenuItemID: l.MenuItemID(),
			Name:       l.Name(),
			Quantity:   l.Quantity(),
			Price:      l.UnitPrice(),
			Total:      l.Total(),
			Comment:    l.Comment(),
			Position:   l.Position(),
		})
	}

	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}

	number, err := order.ParseNumber(dto.Number)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	paymentMethod, err := order.ParsePaymentMethod(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	delivery := order.Delivery{
		Address:     dto.DeliveryAddress,
		EstimatedAt: dto.EstimatedDeliveryTime,
	}
	if dto.DeliveryLatitude != nil && dto.DeliveryLongitude != nil {
		coords, coordsErr := kernel.NewCoordinates(*dto.DeliveryLatitude, *dto.DeliveryLongitude)
		if coordsErr != nil {
			return nil, coordsErr
		}
		delivery.Coordinates = &coords
	}

	lines := make([]*order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		l, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, l)
	}

	return order.RestoreOrder(order.State{
		ID:            id,
		Number:        number,
		UserID:        dto.UserID,
		RestaurantID:  dto.RestaurantID,
		Status:        status,
		PaymentMethod: paymentMethod,
		Subtotal:      dto.Subtotal,
		DeliveryFee:   dto.DeliveryFee,
		Discount:      dto.Discount,
		Total:         dto.Total,
		Delivery:      delivery,
		Contact:       order.Contact{Name: dto.CustomerName, Phone: dto.CustomerPhone},
		Comment:       dto.Comment,
		Lines:         lines,
		Timestamps: order.Timestamps{
			CreatedAt:        dto.CreatedAt,
			ConfirmedAt:      dto.ConfirmedAt,
			PreparingAt:      dto.PreparingAt,
			ReadyAt:          dto.ReadyAt,
			DeliveringAt:     dto.DeliveringAt,
			DeliveredAt:      dto.DeliveredAt,
			CancelledAt:      dto.CancelledAt,
			ActualDeliveryAt: dto.ActualDeliveryTime,
		},
	})
}

func lineToDomain(dto LineDTO) (*order.Line, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}
	return order.NewLine(id, dto.MenuItemID, dto.Name, dto.Quantity, dto.Price, dto.Comment, dto.Position)
}
