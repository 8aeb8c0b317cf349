package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/tripvista/travel-api/internal/dto"
	"github.com/tripvista/travel-api/internal/repository"
	"github.com/tripvista/travel-api/internal/service"
)

type PackageHandler struct {
	svc service.CatalogService
}

func NewPackageHandler(svc service.CatalogService) *PackageHandler {
	return &PackageHandler{svc: svc}
}

func (h *PackageHandler) RegisterRoutes(public, admin *echo.Group) {
	public.GET("/packages", h.List)
	public.GET("/packages/:id", h.Get)

	admin.POST("/packages", h.Create)
	admin.PUT("/packages/:id", h.Update)
	admin.DELETE("/packages/:id", h.Delete)
}

func (h *PackageHandler) List(c echo.Context) error {
	filter := repository.PackageFilter{
		Search:  c.QueryParam("search"),
		Tag:     c.QueryParam("tag"),
		SortAsc: c.QueryParam("sort") == "asc",
	}
	if raw := c.QueryParam("category_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid category_id")
		}
		filter.CategoryID = uint(id)
	}

	packages, err := h.svc.ListPackages(c.Request().Context(), filter)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, packages)
}

func (h *PackageHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	pkg, err := h.svc.GetPackage(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, pkg)
}

func (h *PackageHandler) Create(c echo.Context) error {
	var req dto.CreatePackageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	pkg, err := h.svc.CreatePackage(c.Request().Context(), req)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, pkg)
}

func (h *PackageHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdatePackageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	pkg, err := h.svc.UpdatePackage(c.Request().Context(), id, req)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, pkg)
}

func (h *PackageHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.DeletePackage(c.Request().Context(), id); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
