package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/tripvista/travel-api/internal/dto"
	"github.com/tripvista/travel-api/internal/models"
	"github.com/tripvista/travel-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound   = errors.New("category not found")
	ErrPackageNotFound    = errors.New("package not found")
	ErrEventNotFound      = errors.New("event not found")
	ErrSlugTaken          = errors.New("a category with the same slug already exists")
	ErrCategoryInUse      = errors.New("category is referenced by existing packages")
	ErrInvalidCatalogData = errors.New("invalid catalog data")
)

type CatalogService interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*models.PackageCategory, error)
	ListCategories(ctx context.Context) ([]models.PackageCategory, error)
	GetCategory(ctx context.Context, id uint) (*models.PackageCategory, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*models.PackageCategory, error)
	UpdateCategory(ctx context.Context, id uint, req dto.UpdateCategoryRequest) (*models.PackageCategory, error)
	DeleteCategory(ctx context.Context, id uint) error

	CreatePackage(ctx context.Context, req dto.CreatePackageRequest) (*models.Package, error)
	ListPackages(ctx context.Context, filter repository.PackageFilter) ([]models.Package, error)
	GetPackage(ctx context.Context, id uint) (*models.Package, error)
	UpdatePackage(ctx context.Context, id uint, req dto.UpdatePackageRequest) (*models.Package, error)
	DeletePackage(ctx context.Context, id uint) error

	CreateEvent(ctx context.Context, req dto.CreateEventRequest) (*models.Event, error)
	ListEvents(ctx context.Context, sortAsc bool) ([]models.Event, error)
	GetEvent(ctx context.Context, id uint) (*models.Event, error)
	UpdateEvent(ctx context.Context, id uint, req dto.UpdateEventRequest) (*models.Event, error)
	DeleteEvent(ctx context.Context, id uint) error
}

type catalogService struct {
	categoryRepo repository.CategoryRepository
	packageRepo  repository.PackageRepository
	eventRepo    repository.EventRepository
}

func NewCatalogService(
	categoryRepo repository.CategoryRepository,
	packageRepo repository.PackageRepository,
	eventRepo repository.EventRepository,
) CatalogService {
	return &catalogService{
		categoryRepo: categoryRepo,
		packageRepo:  packageRepo,
		eventRepo:    eventRepo,
	}
}

// --- Categories ---

func (s *catalogService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*models.PackageCategory, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidCatalogData)
	}

	slug := Slugify(req.Name)
	if slug == "" {
		return nil, fmt.Errorf("%w: name yields an empty slug", ErrInvalidCatalogData)
	}
	if err := s.checkSlugFree(ctx, slug, 0); err != nil {
		return nil, err
	}

	category := &models.PackageCategory{
		Name:        req.Name,
		Description: req.Description,
		Slug:        slug,
		ImageURL:    req.ImageURL,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		// The unique index backstops the point query under concurrency.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]models.PackageCategory, error) {
	return s.categoryRepo.FindAll(ctx)
}

func (s *catalogService) GetCategory(ctx context.Context, id uint) (*models.PackageCategory, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *catalogService) GetCategoryBySlug(ctx context.Context, slug string) (*models.PackageCategory, error) {
	category, err := s.categoryRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *catalogService) UpdateCategory(ctx context.Context, id uint, req dto.UpdateCategoryRequest) (*models.PackageCategory, error) {
	category, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != category.Name {
		slug := Slugify(*req.Name)
		if slug == "" {
			return nil, fmt.Errorf("%w: name yields an empty slug", ErrInvalidCatalogData)
		}
		if err := s.checkSlugFree(ctx, slug, id); err != nil {
			return nil, err
		}
		category.Name = *req.Name
		category.Slug = slug
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.ImageURL != nil {
		category.ImageURL = *req.ImageURL
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("update category: %w", err)
	}
	return category, nil
}

func (s *catalogService) DeleteCategory(ctx context.Context, id uint) error {
	if _, err := s.GetCategory(ctx, id); err != nil {
		return err
	}

	count, err := s.packageRepo.CountByCategory(ctx, id)
	if err != nil {
		return fmt.Errorf("count packages in category: %w", err)
	}
	if count > 0 {
		return ErrCategoryInUse
	}

	return s.categoryRepo.Delete(ctx, id)
}

func (s *catalogService) checkSlugFree(ctx context.Context, slug string, selfID uint) error {
	existing, err := s.categoryRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if existing.ID == selfID {
		return nil
	}
	return ErrSlugTaken
}

// --- Packages ---

func (s *catalogService) CreatePackage(ctx context.Context, req dto.CreatePackageRequest) (*models.Package, error) {
	if req.Name == "" || req.Price < 0 || req.CategoryID == 0 {
		return nil, fmt.Errorf("%w: name, non-negative price and category_id are required", ErrInvalidCatalogData)
	}

	category, err := s.GetCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	pkg := &models.Package{
		Name:         req.Name,
		Price:        req.Price,
		Description:  req.Description,
		Itinerary:    req.Itinerary,
		Included:     req.Included,
		Excluded:     req.Excluded,
		Tags:         req.Tags,
		ImageURLs:    req.ImageURLs,
		Destination:  req.Destination,
		Duration:     req.Duration,
		CategoryID:   category.ID,
		CategoryName: category.Name,
	}
	if err := s.packageRepo.Create(ctx, pkg); err != nil {
		return nil, fmt.Errorf("create package: %w", err)
	}
	return pkg, nil
}

func (s *catalogService) ListPackages(ctx context.Context, filter repository.PackageFilter) ([]models.Package, error) {
	return s.packageRepo.FindAll(ctx, filter)
}

func (s *catalogService) GetPackage(ctx context.Context, id uint) (*models.Package, error) {
	pkg, err := s.packageRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}
	return pkg, nil
}

func (s *catalogService) UpdatePackage(ctx context.Context, id uint, req dto.UpdatePackageRequest) (*models.Package, error) {
	pkg, err := s.GetPackage(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		pkg.Name = *req.Name
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidCatalogData)
		}
		pkg.Price = *req.Price
	}
	if req.Description != nil {
		pkg.Description = *req.Description
	}
	if req.Itinerary != nil {
		pkg.Itinerary = *req.Itinerary
	}
	if req.Included != nil {
		pkg.Included = *req.Included
	}
	if req.Excluded != nil {
		pkg.Excluded = *req.Excluded
	}
	if req.Tags != nil {
		pkg.Tags = *req.Tags
	}
	if req.ImageURLs != nil {
		pkg.ImageURLs = *req.ImageURLs
	}
	if req.Destination != nil {
		pkg.Destination = *req.Destination
	}
	if req.Duration != nil {
		pkg.Duration = *req.Duration
	}
	if req.CategoryID != nil && *req.CategoryID != pkg.CategoryID {
		category, err := s.GetCategory(ctx, *req.CategoryID)
		if err != nil {
			return nil, err
		}
		pkg.CategoryID = category.ID
		pkg.CategoryName = category.Name
	}

	if err := s.packageRepo.Update(ctx, pkg); err != nil {
		return nil, fmt.Errorf("update package: %w", err)
	}
	return pkg, nil
}

func (s *catalogService) DeletePackage(ctx context.Context, id uint) error {
	if _, err := s.GetPackage(ctx, id); err != nil {
		return err
	}
	return s.packageRepo.Delete(ctx, id)
}

// --- Events ---

func (s *catalogService) CreateEvent(ctx context.Context, req dto.CreateEventRequest) (*models.Event, error) {
	if req.Name == "" || req.Price < 0 || req.Date.IsZero() {
		return nil, fmt.Errorf("%w: name, non-negative price and date are required", ErrInvalidCatalogData)
	}

	event := &models.Event{
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		Price:       req.Price,
		Tags:        req.Tags,
		ImageURLs:   req.ImageURLs,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *catalogService) ListEvents(ctx context.Context, sortAsc bool) ([]models.Event, error) {
	return s.eventRepo.FindAll(ctx, sortAsc)
}

func (s *catalogService) GetEvent(ctx context.Context, id uint) (*models.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (s *catalogService) UpdateEvent(ctx context.Context, id uint, req dto.UpdateEventRequest) (*models.Event, error) {
	event, err := s.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Date != nil {
		event.Date = *req.Date
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidCatalogData)
		}
		event.Price = *req.Price
	}
	if req.Tags != nil {
		event.Tags = *req.Tags
	}
	if req.ImageURLs != nil {
		event.ImageURLs = *req.ImageURLs
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

func (s *catalogService) DeleteEvent(ctx context.Context, id uint) error {
	if _, err := s.GetEvent(ctx, id); err != nil {
		return err
	}
	return s.eventRepo.Delete(ctx, id)
}
