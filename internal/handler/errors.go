package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/tripvista/travel-api/internal/service"
)

// toHTTPError maps service sentinel errors onto the HTTP taxonomy:
// invalid input 400, missing auth 401, missing record 404, conflicting
// state 409, anything else 500.
func toHTTPError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, service.ErrInvalidCatalogData),
		errors.Is(err, service.ErrInvalidBookingData),
		errors.Is(err, service.ErrInvalidContactData),
		errors.Is(err, service.ErrInvalidEmail):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrAuthRequired):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrPackageNotFound),
		errors.Is(err, service.ErrEventNotFound),
		errors.Is(err, service.ErrBookingNotFound),
		errors.Is(err, service.ErrContactNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrSlugTaken),
		errors.Is(err, service.ErrCategoryInUse),
		errors.Is(err, service.ErrBadTransition):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

// parseID parses a numeric path id; malformed ids are a 400, never a 404.
func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}
