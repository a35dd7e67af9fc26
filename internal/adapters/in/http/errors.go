package http

import (
	"errors"
	"log/slog"
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusFor maps use case errors to HTTP status codes. Catalog lookups made
// while pricing an order report missing items as 422, so item errors are
// checked before the generic not-found family.
func statusFor(err error) int {
	switch {
	case errors.Is(err, restaurant.ErrItemNotFound),
		errors.Is(err, restaurant.ErrItemUnavailable),
		errors.Is(err, services.ErrDeliveryUnavailable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, restaurant.ErrRestaurantNotFound),
		errors.Is(err, order.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrIllegalTransition),
		errors.Is(err, commands.ErrDuplicateRequest):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func messageFor(code int, err error) string {
	switch {
	case code == http.StatusInternalServerError:
		return "Internal server error"
	case errors.Is(err, order.ErrNotOwner):
		// do not reveal that the order exists
		return order.ErrOrderNotFound.Error()
	default:
		return err.Error()
	}
}

func (s *Server) fail(c echo.Context, err error) error {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "Request failed",
			"method", c.Request().Method, "path", c.Path(), "error", err)
	}
	return c.JSON(code, Error{Code: code, Message: messageFor(code, err)})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

// errorHandler renders echo's own errors (unknown route, wrong method,
// panics recovered by middleware) in the common error shape.
func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := "Internal server error"
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(code)
			}
		} else {
			logger.ErrorContext(c.Request().Context(), "Unhandled error", "path", c.Path(), "error", err)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, Error{Code: code, Message: message})
		}
		if err != nil {
			logger.ErrorContext(c.Request().Context(), "Failed to write error response", "error", err)
		}
	}
}
