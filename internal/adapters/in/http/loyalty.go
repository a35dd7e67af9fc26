package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetLoyalty handles GET /api/v1/users/me/loyalty.
func (s *Server) GetLoyalty(c echo.Context) error {
	query, err := queries.NewGetLoyaltyQuery(userID(c))
	if err != nil {
		return s.fail(c, err)
	}

	l, err := s.h.GetLoyalty.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toLoyalty(l))
}
