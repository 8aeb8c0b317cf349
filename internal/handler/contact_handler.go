package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/tripvista/travel-api/internal/dto"
	"github.com/tripvista/travel-api/internal/service"
)

type ContactHandler struct {
	svc service.ContactService
}

func NewContactHandler(svc service.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

func (h *ContactHandler) RegisterRoutes(public, admin *echo.Group) {
	public.POST("/contact", h.Create)

	admin.GET("/contact", h.List)
	admin.PATCH("/contact/:id/read", h.MarkRead)
	admin.DELETE("/contact/:id", h.Delete)
}

func (h *ContactHandler) Create(c echo.Context) error {
	var req dto.CreateContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	msg, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, msg)
}

func (h *ContactHandler) List(c echo.Context) error {
	msgs, err := h.svc.List(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, msgs)
}

func (h *ContactHandler) MarkRead(c echo.Context) error {
	id, err := parseContactID(c)
	if err != nil {
		return err
	}
	msg, svcErr := h.svc.MarkRead(c.Request().Context(), id)
	if svcErr != nil {
		return toHTTPError(svcErr)
	}
	return c.JSON(http.StatusOK, msg)
}

func (h *ContactHandler) Delete(c echo.Context) error {
	id, err := parseContactID(c)
	if err != nil {
		return err
	}
	if svcErr := h.svc.Delete(c.Request().Context(), id); svcErr != nil {
		return toHTTPError(svcErr)
	}
	return c.NoContent(http.StatusNoContent)
}

func parseContactID(c echo.Context) (string, error) {
	raw := c.Param("id")
	if _, err := uuid.Parse(raw); err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "invalid contact id")
	}
	return raw, nil
}
