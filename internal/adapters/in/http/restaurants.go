package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// ListRestaurants handles GET /api/v1/restaurants.
func (s *Server) ListRestaurants(c echo.Context) error {
	skip, err := intQuery(c, "skip", 0)
	if err != nil {
		return badRequest(c, err.Error())
	}
	limit, err := intQuery(c, "limit", queries.DefaultPageLimit)
	if err != nil {
		return badRequest(c, err.Error())
	}
	lat, err := floatQuery(c, "latitude")
	if err != nil {
		return badRequest(c, err.Error())
	}
	lon, err := floatQuery(c, "longitude")
	if err != nil {
		return badRequest(c, err.Error())
	}
	maxKm, err := floatQuery(c, "max_distance")
	if err != nil {
		return badRequest(c, err.Error())
	}
	origin, err := coordinates(lat, lon)
	if err != nil {
		return badRequest(c, err.Error())
	}

	query, err := queries.NewListRestaurantsQuery(c.QueryParam("search"), origin, maxKm, skip, limit)
	if err != nil {
		return s.fail(c, err)
	}

	restaurants, err := s.h.ListRestaurants.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]Restaurant, len(restaurants))
	for i, r := range restaurants {
		response[i] = toRestaurant(r)
	}
	return c.JSON(http.StatusOK, response)
}

// GetRestaurant handles GET /api/v1/restaurants/:id.
func (s *Server) GetRestaurant(c echo.Context) error {
	id, err := int64Path(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	query, err := queries.NewGetRestaurantQuery(id)
	if err != nil {
		return s.fail(c, err)
	}

	r, err := s.h.GetRestaurant.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toRestaurant(r))
}

// ListMenuItems handles GET /api/v1/restaurants/:id/menu/items.
func (s *Server) ListMenuItems(c echo.Context) error {
	id, err := int64Path(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	filter := queries.DefaultMenuFilter()
	filter.Search = c.QueryParam("search")
	if filter.VegetarianOnly, err = boolQuery(c, "vegetarian_only", false); err != nil {
		return badRequest(c, err.Error())
	}
	if filter.AvailableOnly, err = boolQuery(c, "available_only", true); err != nil {
		return badRequest(c, err.Error())
	}

	query, err := queries.NewListMenuItemsQuery(id, filter)
	if err != nil {
		return s.fail(c, err)
	}

	items, err := s.h.ListMenuItems.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]MenuItem, len(items))
	for i, item := range items {
		response[i] = toMenuItem(item)
	}
	return c.JSON(http.StatusOK, response)
}
