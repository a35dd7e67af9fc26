package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var body NewOrder
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	destination, err := coordinates(body.DeliveryLatitude, body.DeliveryLongitude)
	if err != nil {
		return badRequest(c, err.Error())
	}

	paymentMethod, err := order.ParsePaymentMethod(body.PaymentMethod)
	if err != nil {
		return s.fail(c, err)
	}

	lines := make([]services.RequestedLine, len(body.Items))
	for i, item := range body.Items {
		lines[i] = services.RequestedLine{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
			Comment:    item.Comment,
		}
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		userID(c),
		body.RestaurantID,
		lines,
		body.DeliveryAddress,
		destination,
		paymentMethod,
		order.Contact{Name: body.CustomerName, Phone: body.CustomerPhone},
		body.Comment,
	)
	if err != nil {
		return s.fail(c, err)
	}
	cmd = cmd.WithIdempotencyKey(c.Request().Header.Get(HeaderIdempotencyKey))

	created, err := s.h.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, orderFromAggregate(created))
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(c echo.Context) error {
	skip, err := intQuery(c, "skip", 0)
	if err != nil {
		return badRequest(c, err.Error())
	}
	limit, err := intQuery(c, "limit", queries.DefaultPageLimit)
	if err != nil {
		return badRequest(c, err.Error())
	}

	query, err := queries.NewListUserOrdersQuery(userID(c), skip, limit)
	if err != nil {
		return s.fail(c, err)
	}

	orders, err := s.h.ListUserOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]OrderSummary, len(orders))
	for i, o := range orders {
		response[i] = toOrderSummary(o)
	}
	return c.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	id, err := uuidPath(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	query, err := queries.NewGetOrderQuery(id, userID(c))
	if err != nil {
		return s.fail(c, err)
	}

	o, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrder(o))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	id, err := uuidPath(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var body StatusUpdate
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	status, err := order.ParseStatus(body.Status)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, userID(c), status)
	if err != nil {
		return s.fail(c, err)
	}

	updated, err := s.h.UpdateOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, orderFromAggregate(updated))
}

// CancelOrder handles DELETE /api/v1/orders/:id.
func (s *Server) CancelOrder(c echo.Context) error {
	id, err := uuidPath(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(id, userID(c))
	if err != nil {
		return s.fail(c, err)
	}

	cancelled, err := s.h.CancelOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, orderFromAggregate(cancelled))
}

// TrackOrder handles GET /api/v1/orders/:id/track.
func (s *Server) TrackOrder(c echo.Context) error {
	id, err := uuidPath(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	query, err := queries.NewTrackOrderQuery(id, userID(c))
	if err != nil {
		return s.fail(c, err)
	}

	view, err := s.h.TrackOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toTracking(view))
}
