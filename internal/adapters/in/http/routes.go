package http

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewEcho builds the echo instance with all routes of s registered.
func NewEcho(s *Server, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(requestLogger(logger.With("component", "http_access")))

	RegisterRoutes(e, s)
	return e
}

func RegisterRoutes(e *echo.Echo, s *Server) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	v1 := e.Group("/api/v1")

	v1.GET("/restaurants", s.ListRestaurants)
	v1.GET("/restaurants/:id", s.GetRestaurant)
	v1.GET("/restaurants/:id/menu/items", s.ListMenuItems)

	orders := v1.Group("/orders", requireUser)
	orders.POST("", s.CreateOrder)
	orders.GET("", s.ListOrders)
	orders.GET("/:id", s.GetOrder)
	orders.PATCH("/:id/status", s.UpdateOrderStatus)
	orders.DELETE("/:id", s.CancelOrder)
	orders.GET("/:id/track", s.TrackOrder)

	v1.GET("/users/me/loyalty", s.GetLoyalty, requireUser)
}
