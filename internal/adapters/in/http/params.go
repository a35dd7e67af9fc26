package http

import (
	"fmt"
	"strconv"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

func intQuery(c echo.Context, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("query parameter %q must be an integer", name)
	}
	return v, nil
}

func floatQuery(c echo.Context, name string) (*float64, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("query parameter %q must be a number", name)
	}
	return &v, nil
}

func boolQuery(c echo.Context, name string, fallback bool) (bool, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("query parameter %q must be a boolean", name)
	}
	return v, nil
}

func int64Path(c echo.Context, name string) (int64, error) {
	v, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("path parameter %q must be a positive integer", name)
	}
	return v, nil
}

func uuidPath(c echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.ParseUUID(c.Param(name))
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("path parameter %q must be a UUID", name)
	}
	return id, nil
}

// coordinates returns nil unless both latitude and longitude are given.
func coordinates(lat, lon *float64) (*kernel.Coordinates, error) {
	if lat == nil && lon == nil {
		return nil, nil
	}
	if lat == nil || lon == nil {
		return nil, fmt.Errorf("latitude and longitude must be given together")
	}
	c, err := kernel.NewCoordinates(*lat, *lon)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
