package handler

import (
	"context"

	"github.com/tripvista/travel-api/internal/dto"
	"github.com/tripvista/travel-api/internal/models"
	"github.com/tripvista/travel-api/internal/repository"
)

// mockCatalogService implements service.CatalogService with pluggable
// functions; unset functions return zero values.
type mockCatalogService struct {
	createCategoryFn    func(ctx context.Context, req dto.CreateCategoryRequest) (*models.PackageCategory, error)
	listCategoriesFn    func(ctx context.Context) ([]models.PackageCategory, error)
	getCategoryFn       func(ctx context.Context, id uint) (*models.PackageCategory, error)
	getCategoryBySlugFn func(ctx context.Context, slug string) (*models.PackageCategory, error)
	updateCategoryFn    func(ctx context.Context, id uint, req dto.UpdateCategoryRequest) (*models.PackageCategory, error)
	deleteCategoryFn    func(ctx context.Context, id uint) error

	createPackageFn func(ctx context.Context, req dto.CreatePackageRequest) (*models.Package, error)
	listPackagesFn  func(ctx context.Context, filter repository.PackageFilter) ([]models.Package, error)
	getPackageFn    func(ctx context.Context, id uint) (*models.Package, error)
	updatePackageFn func(ctx context.Context, id uint, req dto.UpdatePackageRequest) (*models.Package, error)
	deletePackageFn func(ctx context.Context, id uint) error

	createEventFn func(ctx context.Context, req dto.CreateEventRequest) (*models.Event, error)
	listEventsFn  func(ctx context.Context, sortAsc bool) ([]models.Event, error)
	getEventFn    func(ctx context.Context, id uint) (*models.Event, error)
	updateEventFn func(ctx context.Context, id uint, req dto.UpdateEventRequest) (*models.Event, error)
	deleteEventFn func(ctx context.Context, id uint) error
}

func (m *mockCatalogService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*models.PackageCategory, error) {
	if m.createCategoryFn != nil {
		return m.createCategoryFn(ctx, req)
	}
	return nil, nil
}
func (m *mockCatalogService) ListCategories(ctx context.Context) ([]models.PackageCategory, error) {
	if m.listCategoriesFn != nil {
		return m.listCategoriesFn(ctx)
	}
	return nil, nil
}
func (m *mockCatalogService) GetCategory(ctx context.Context, id uint) (*models.PackageCategory, error) {
	if m.getCategoryFn != nil {
		return m.getCategoryFn(ctx, id)
	}
	return nil, nil
}
func (m *mockCatalogService) GetCategoryBySlug(ctx context.Context, slug string) (*models.PackageCategory, error) {
	if m.getCategoryBySlugFn != nil {
		return m.getCategoryBySlugFn(ctx, slug)
	}
	return nil, nil
}
func (m *mockCatalogService) UpdateCategory(ctx context.Context, id uint, req dto.UpdateCategoryRequest) (*models.PackageCategory, error) {
	if m.updateCategoryFn != nil {
		return m.updateCategoryFn(ctx, id, req)
	}
	return nil, nil
}
func (m *mockCatalogService) DeleteCategory(ctx context.Context, id uint) error {
	if m.deleteCategoryFn != nil {
		return m.deleteCategoryFn(ctx, id)
	}
	return nil
}

func (m *mockCatalogService) CreatePackage(ctx context.Context, req dto.CreatePackageRequest) (*models.Package, error) {
	if m.createPackageFn != nil {
		return m.createPackageFn(ctx, req)
	}
	return nil, nil
}
func (m *mockCatalogService) ListPackages(ctx context.Context, filter repository.PackageFilter) ([]models.Package, error) {
	if m.listPackagesFn != nil {
		return m.listPackagesFn(ctx, filter)
	}
	return nil, nil
}
func (m *mockCatalogService) GetPackage(ctx context.Context, id uint) (*models.Package, error) {
	if m.getPackageFn != nil {
		return m.getPackageFn(ctx, id)
	}
	return nil, nil
}
func (m *mockCatalogService) UpdatePackage(ctx context.Context, id uint, req dto.UpdatePackageRequest) (*models.Package, error) {
	if m.updatePackageFn != nil {
		return m.updatePackageFn(ctx, id, req)
	}
	return nil, nil
}
func (m *mockCatalogService) DeletePackage(ctx context.Context, id uint) error {
	if m.deletePackageFn != nil {
		return m.deletePackageFn(ctx, id)
	}
	return nil
}

func (m *mockCatalogService) CreateEvent(ctx context.Context, req dto.CreateEventRequest) (*models.Event, error) {
	if m.createEventFn != nil {
		return m.createEventFn(ctx, req)
	}
	return nil, nil
}
func (m *mockCatalogService) ListEvents(ctx context.Context, sortAsc bool) ([]models.Event, error) {
	if m.listEventsFn != nil {
		return m.listEventsFn(ctx, sortAsc)
	}
	return nil, nil
}
func (m *mockCatalogService) GetEvent(ctx context.Context, id uint) (*models.Event, error) {
	if m.getEventFn != nil {
		return m.getEventFn(ctx, id)
	}
	return nil, nil
}
func (m *mockCatalogService) UpdateEvent(ctx context.Context, id uint, req dto.UpdateEventRequest) (*models.Event, error) {
	if m.updateEventFn != nil {
		return m.updateEventFn(ctx, id, req)
	}
	return nil, nil
}
func (m *mockCatalogService) DeleteEvent(ctx context.Context, id uint) error {
	if m.deleteEventFn != nil {
		return m.deleteEventFn(ctx, id)
	}
	return nil
}
