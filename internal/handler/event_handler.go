package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/tripvista/travel-api/internal/dto"
	"github.com/tripvista/travel-api/internal/service"
)

type EventHandler struct {
	svc service.CatalogService
}

func NewEventHandler(svc service.CatalogService) *EventHandler {
	return &EventHandler{svc: svc}
}

func (h *EventHandler) RegisterRoutes(public, admin *echo.Group) {
	public.GET("/events", h.List)
	public.GET("/events/:id", h.Get)

	admin.POST("/events", h.Create)
	admin.PUT("/events/:id", h.Update)
	admin.DELETE("/events/:id", h.Delete)
}

func (h *EventHandler) List(c echo.Context) error {
	events, err := h.svc.ListEvents(c.Request().Context(), c.QueryParam("sort") == "asc")
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, events)
}

func (h *EventHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	event, err := h.svc.GetEvent(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Create(c echo.Context) error {
	var req dto.CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	event, err := h.svc.CreateEvent(c.Request().Context(), req)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, event)
}

func (h *EventHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	event, err := h.svc.UpdateEvent(c.Request().Context(), id, req)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteEvent(c.Request().Context(), id); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
