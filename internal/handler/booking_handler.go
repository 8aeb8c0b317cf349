package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/tripvista/travel-api/internal/auth"
	"github.com/tripvista/travel-api/internal/dto"
	"github.com/tripvista/travel-api/internal/invoice"
	"github.com/tripvista/travel-api/internal/middleware"
	"github.com/tripvista/travel-api/internal/models"
	"github.com/tripvista/travel-api/internal/service"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(authed, admin *echo.Group) {
	authed.POST("/bookings", h.Create)
	authed.GET("/bookings", h.ListMine)
	authed.GET("/bookings/:id", h.Get)
	authed.GET("/bookings/:id/invoice", h.Invoice)

	admin.GET("/bookings", h.ListAll)
	admin.PATCH("/bookings/:id/status", h.UpdateStatus)
}

func (h *BookingHandler) Create(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	booking, err := h.svc.CreateBooking(c.Request().Context(), user, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAuthRequired):
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		case errors.Is(err, service.ErrInvalidEmail),
			errors.Is(err, service.ErrInvalidBookingData):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrPackageNotFound),
			errors.Is(err, service.ErrEventNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) Get(c echo.Context) error {
	booking, err := h.findVisible(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// Invoice renders the booking's PDF invoice.
func (h *BookingHandler) Invoice(c echo.Context) error {
	booking, err := h.findVisible(c)
	if err != nil {
		return err
	}

	inv := invoice.Build(booking)
	pdf, err := inv.RenderPDF()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="`+inv.Number+`.pdf"`)
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}

func (h *BookingHandler) ListMine(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	bookings, err := h.svc.ListUserBookings(c.Request().Context(), user.ID)
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.BookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = dto.ToBookingResponse(&b)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) ListAll(c echo.Context) error {
	var status *models.BookingStatus
	if s := c.QueryParam("status"); s != "" {
		bs := models.BookingStatus(s)
		status = &bs
	}

	bookings, err := h.svc.ListBookings(c.Request().Context(), status)
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.BookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = dto.ToBookingResponse(&b)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	id, err := parseBookingID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	// Only values outside the status enum are malformed input; a known
	// status that is not a legal next step is a transition conflict.
	switch req.Status {
	case models.StatusPending, models.StatusConfirmed, models.StatusCancelled:
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unknown booking status")
	}

	booking, err := h.svc.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// findVisible fetches the booking and enforces that customers only see
// their own; admins see all.
func (h *BookingHandler) findVisible(c echo.Context) (*models.Booking, error) {
	id, err := parseBookingID(c)
	if err != nil {
		return nil, err
	}

	booking, svcErr := h.svc.GetBooking(c.Request().Context(), id)
	if svcErr != nil {
		return nil, toHTTPError(svcErr)
	}

	user := middleware.CurrentUser(c)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	if user.Role != auth.RoleAdmin && booking.UserID != user.ID {
		return nil, echo.NewHTTPError(http.StatusForbidden, "not your booking")
	}
	return booking, nil
}

func parseBookingID(c echo.Context) (string, error) {
	raw := c.Param("id")
	if _, err := uuid.Parse(raw); err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}
	return raw, nil
}
