package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tripvista/travel-api/internal/dto"
	"github.com/tripvista/travel-api/internal/models"
	"github.com/tripvista/travel-api/internal/service"
)

func TestListCategories_Handler(t *testing.T) {
	svc := &mockCatalogService{
		listCategoriesFn: func(ctx context.Context) ([]models.PackageCategory, error) {
			return []models.PackageCategory{
				{ID: 1, Name: "Beach Holidays", Slug: "beach-holidays"},
				{ID: 2, Name: "City Breaks", Slug: "city-breaks"},
			}, nil
		},
	}

	c, rec := newBookingContext(t, http.MethodGet, "/api/v1/categories", "", nil)
	h := NewCategoryHandler(svc)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var categories []models.PackageCategory
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
	require.Len(t, categories, 2)
	assert.Equal(t, "beach-holidays", categories[0].Slug)
}

func TestGetCategory_Handler_MalformedID(t *testing.T) {
	h := NewCategoryHandler(&mockCatalogService{})
	c, _ := newBookingContext(t, http.MethodGet, "/api/v1/categories/abc", "", nil)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.Get(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestGetCategory_Handler_NotFound(t *testing.T) {
	svc := &mockCatalogService{
		getCategoryFn: func(ctx context.Context, id uint) (*models.PackageCategory, error) {
			return nil, service.ErrCategoryNotFound
		},
	}
	h := NewCategoryHandler(svc)
	c, _ := newBookingContext(t, http.MethodGet, "/api/v1/categories/99", "", nil)
	c.SetParamNames("id")
	c.SetParamValues("99")

	err := h.Get(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestGetCategoryBySlug_Handler(t *testing.T) {
	svc := &mockCatalogService{
		getCategoryBySlugFn: func(ctx context.Context, slug string) (*models.PackageCategory, error) {
			assert.Equal(t, "beach-holidays", slug)
			return &models.PackageCategory{ID: 1, Name: "Beach Holidays", Slug: slug}, nil
		},
	}
	h := NewCategoryHandler(svc)
	c, rec := newBookingContext(t, http.MethodGet, "/api/v1/categories/slug/beach-holidays", "", nil)
	c.SetParamNames("slug")
	c.SetParamValues("beach-holidays")

	require.NoError(t, h.GetBySlug(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateCategory_Handler_SlugConflict(t *testing.T) {
	svc := &mockCatalogService{
		createCategoryFn: func(ctx context.Context, req dto.CreateCategoryRequest) (*models.PackageCategory, error) {
			return nil, service.ErrSlugTaken
		},
	}
	h := NewCategoryHandler(svc)
	c, _ := newBookingContext(t, http.MethodPost, "/api/v1/admin/categories", `{"name":"Beach Holidays"}`, nil)

	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Code)
}

func TestCreateCategory_Handler_Success(t *testing.T) {
	svc := &mockCatalogService{
		createCategoryFn: func(ctx context.Context, req dto.CreateCategoryRequest) (*models.PackageCategory, error) {
			assert.Equal(t, "Beach Holidays", req.Name)
			return &models.PackageCategory{ID: 1, Name: req.Name, Slug: "beach-holidays"}, nil
		},
	}
	h := NewCategoryHandler(svc)
	c, rec := newBookingContext(t, http.MethodPost, "/api/v1/admin/categories", `{"name":"Beach Holidays"}`, nil)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestDeleteCategory_Handler_InUse(t *testing.T) {
	svc := &mockCatalogService{
		deleteCategoryFn: func(ctx context.Context, id uint) error {
			return service.ErrCategoryInUse
		},
	}
	h := NewCategoryHandler(svc)
	c, _ := newBookingContext(t, http.MethodDelete, "/api/v1/admin/categories/1", "", nil)
	c.SetParamNames("id")
	c.SetParamValues("1")

	err := h.Delete(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Code)
}

func TestDeleteCategory_Handler_Success(t *testing.T) {
	svc := &mockCatalogService{}
	h := NewCategoryHandler(svc)
	c, rec := newBookingContext(t, http.MethodDelete, "/api/v1/admin/categories/1", "", nil)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
