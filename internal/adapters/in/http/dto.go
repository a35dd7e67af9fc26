package http

import (
	"time"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Money values are serialised as decimal strings, e.g. "1050.5".

type NewOrderItem struct {
	MenuItemID int64  `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
	Comment    string `json:"comment,omitempty"`
}

type NewOrder struct {
	RestaurantID      int64          `json:"restaurant_id"`
	Items             []NewOrderItem `json:"items"`
	DeliveryAddress   string         `json:"delivery_address"`
	DeliveryLatitude  *float64       `json:"delivery_latitude,omitempty"`
	DeliveryLongitude *float64       `json:"delivery_longitude,omitempty"`
	CustomerName      string         `json:"customer_name,omitempty"`
	CustomerPhone     string         `json:"customer_phone,omitempty"`
	Comment           string         `json:"comment,omitempty"`
	PaymentMethod     string         `json:"payment_method,omitempty"`
}

type StatusUpdate struct {
	Status string `json:"status"`
}

type OrderItem struct {
	ID         uuid.UUID       `json:"id"`
	MenuItemID int64           `json:"menu_item_id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	Total      decimal.Decimal `json:"total"`
	Comment    string          `json:"comment,omitempty"`
}

type Order struct {
	ID                    uuid.UUID       `json:"id"`
	OrderNumber           string          `json:"order_number"`
	Status                string          `json:"status"`
	RestaurantID          int64           `json:"restaurant_id"`
	PaymentMethod         string          `json:"payment_method"`
	Subtotal              decimal.Decimal `json:"subtotal"`
	DeliveryFee           decimal.Decimal `json:"delivery_fee"`
	Discount              decimal.Decimal `json:"discount"`
	Total                 decimal.Decimal `json:"total"`
	DeliveryAddress       string          `json:"delivery_address"`
	DeliveryLatitude      *float64        `json:"delivery_latitude,omitempty"`
	DeliveryLongitude     *float64        `json:"delivery_longitude,omitempty"`
	CustomerName          string          `json:"customer_name,omitempty"`
	CustomerPhone         string          `json:"customer_phone,omitempty"`
	Comment               string          `json:"comment,omitempty"`
	EstimatedDeliveryTime *time.Time      `json:"estimated_delivery_time"`
	ActualDeliveryTime    *time.Time      `json:"actual_delivery_time"`
	CreatedAt             time.Time       `json:"created_at"`
	Items                 []OrderItem     `json:"items"`
}

type OrderSummary struct {
	ID                    uuid.UUID       `json:"id"`
	OrderNumber           string          `json:"order_number"`
	Status                string          `json:"status"`
	RestaurantID          int64           `json:"restaurant_id"`
	RestaurantName        string          `json:"restaurant_name"`
	ItemsCount            int             `json:"items_count"`
	Total                 decimal.Decimal `json:"total"`
	EstimatedDeliveryTime *time.Time      `json:"estimated_delivery_time"`
	CreatedAt             time.Time       `json:"created_at"`
}

type Milestone struct {
	Status    string     `json:"status"`
	Title     string     `json:"title"`
	Completed bool       `json:"completed"`
	Timestamp *time.Time `json:"timestamp"`
}

type Courier struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type Tracking struct {
	OrderID               uuid.UUID   `json:"order_id"`
	OrderNumber           string      `json:"order_number"`
	Status                string      `json:"status"`
	RestaurantName        string      `json:"restaurant_name"`
	RestaurantPhone       string      `json:"restaurant_phone"`
	RestaurantAddress     string      `json:"restaurant_address"`
	DeliveryAddress       string      `json:"delivery_address"`
	EstimatedDeliveryTime *time.Time  `json:"estimated_delivery_time"`
	ActualDeliveryTime    *time.Time  `json:"actual_delivery_time"`
	Courier               *Courier    `json:"courier"`
	Timeline              []Milestone `json:"timeline"`
}

type Restaurant struct {
	ID                    int64           `json:"id"`
	Name                  string          `json:"name"`
	Description           string          `json:"description"`
	Phone                 string          `json:"phone"`
	Address               string          `json:"address"`
	Latitude              float64         `json:"latitude"`
	Longitude             float64         `json:"longitude"`
	DeliveryFee           decimal.Decimal `json:"delivery_fee"`
	FreeDeliveryThreshold decimal.Decimal `json:"free_delivery_threshold"`
	MaxDeliveryDistance   float64         `json:"max_delivery_distance"`
	AvgDeliveryTime       int             `json:"avg_delivery_time"`
	Rating                float64         `json:"rating"`
	DistanceKm            *float64        `json:"distance_km,omitempty"`
}

type MenuItem struct {
	ID           int64           `json:"id"`
	RestaurantID int64           `json:"restaurant_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	IsAvailable  bool            `json:"is_available"`
	IsVegetarian bool            `json:"is_vegetarian"`
}

type Loyalty struct {
	UserID           int64           `json:"user_id"`
	Points           int64           `json:"loyalty_points"`
	TotalOrders      int64           `json:"total_orders"`
	TotalSpent       decimal.Decimal `json:"total_spent"`
	Tier             string          `json:"tier"`
	DiscountPercent  int             `json:"discount_percent"`
	NextTier         string          `json:"next_tier,omitempty"`
	OrdersToNextTier int64           `json:"orders_to_next_tier"`
}

func toOrder(o queries.OrderResponse) Order {
	items := make([]OrderItem, len(o.Lines))
	for i, l := range o.Lines {
		items[i] = OrderItem{
			ID:         l.ID,
			MenuItemID: l.MenuItemID,
			Name:       l.Name,
			Quantity:   l.Quantity,
			Price:      l.Price,
			Total:      l.Total,
			Comment:    l.Comment,
		}
	}

	return Order{
		ID:                    o.ID,
		OrderNumber:           o.Number,
		Status:                o.Status,
		RestaurantID:          o.RestaurantID,
		PaymentMethod:         o.PaymentMethod,
		Subtotal:              o.Subtotal,
		DeliveryFee:           o.DeliveryFee,
		Discount:              o.Discount,
		Total:                 o.Total,
		DeliveryAddress:       o.DeliveryAddress,
		DeliveryLatitude:      o.DeliveryLatitude,
		DeliveryLongitude:     o.DeliveryLongitude,
		CustomerName:          o.CustomerName,
		CustomerPhone:         o.CustomerPhone,
		Comment:               o.Comment,
		EstimatedDeliveryTime: o.EstimatedDelivery,
		ActualDeliveryTime:    o.ActualDelivery,
		CreatedAt:             o.CreatedAt,
		Items:                 items,
	}
}

func orderFromAggregate(o *order.Order) Order {
	return toOrder(queries.NewOrderResponse(o))
}

func toOrderSummary(o queries.OrderSummaryResponse) OrderSummary {
	return OrderSummary{
		ID:                    o.ID,
		OrderNumber:           o.Number,
		Status:                o.Status,
		RestaurantID:          o.RestaurantID,
		RestaurantName:        o.RestaurantName,
		ItemsCount:            o.ItemsCount,
		Total:                 o.Total,
		EstimatedDeliveryTime: o.EstimatedDelivery,
		CreatedAt:             o.CreatedAt,
	}
}

func toTracking(t queries.TrackingResponse) Tracking {
	timeline := make([]Milestone, len(t.Timeline))
	for i, m := range t.Timeline {
		timeline[i] = Milestone{
			Status:    m.Name,
			Title:     m.Title,
			Completed: m.Reached,
			Timestamp: m.At,
		}
	}

	var courier *Courier
	if t.Courier != nil {
		courier = &Courier{Name: t.Courier.Name, Phone: t.Courier.Phone}
	}

	return Tracking{
		OrderID:               t.OrderID,
		OrderNumber:           t.Number,
		Status:                t.Status,
		RestaurantName:        t.RestaurantName,
		RestaurantPhone:       t.RestaurantPhone,
		RestaurantAddress:     t.RestaurantAddress,
		DeliveryAddress:       t.DeliveryAddress,
		EstimatedDeliveryTime: t.EstimatedDelivery,
		ActualDeliveryTime:    t.ActualDelivery,
		Courier:               courier,
		Timeline:              timeline,
	}
}

func toRestaurant(r queries.RestaurantResponse) Restaurant {
	return Restaurant{
		ID:                    r.ID,
		Name:                  r.Name,
		Description:           r.Description,
		Phone:                 r.Phone,
		Address:               r.Address,
		Latitude:              r.Latitude,
		Longitude:             r.Longitude,
		DeliveryFee:           r.DeliveryFee,
		FreeDeliveryThreshold: r.FreeDeliveryThreshold,
		MaxDeliveryDistance:   r.MaxDeliveryDistanceKm,
		AvgDeliveryTime:       r.AvgDeliveryMinutes,
		Rating:                r.Rating,
		DistanceKm:            r.DistanceKm,
	}
}

func toMenuItem(m queries.MenuItemResponse) MenuItem {
	return MenuItem{
		ID:           m.ID,
		RestaurantID: m.RestaurantID,
		Name:         m.Name,
		Description:  m.Description,
		Price:        m.Price,
		IsAvailable:  m.IsAvailable,
		IsVegetarian: m.IsVegetarian,
	}
}

func toLoyalty(l queries.LoyaltyResponse) Loyalty {
	return Loyalty{
		UserID:           l.UserID,
		Points:           l.Points,
		TotalOrders:      l.TotalOrders,
		TotalSpent:       l.TotalSpent,
		Tier:             l.Tier,
		DiscountPercent:  l.DiscountPercent,
		NextTier:         l.NextTier,
		OrdersToNextTier: l.OrdersToNextTier,
	}
}
