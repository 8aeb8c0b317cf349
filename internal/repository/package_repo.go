package repository

import (
	"context"
	"strconv"
	"strings"

	"github.com/tripvista/travel-api/internal/models"
	"gorm.io/gorm"
)

// PackageFilter narrows a package listing. Zero values mean "no filter".
type PackageFilter struct {
	Search     string
	CategoryID uint
	Tag        string
	SortAsc    bool
}

type PackageRepository interface {
	Create(ctx context.Context, pkg *models.Package) error
	FindAll(ctx context.Context, filter PackageFilter) ([]models.Package, error)
	FindByID(ctx context.Context, id uint) (*models.Package, error)
	CountByCategory(ctx context.Context, categoryID uint) (int64, error)
	Update(ctx context.Context, pkg *models.Package) error
	Delete(ctx context.Context, id uint) error
}

type packageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) PackageRepository {
	return &packageRepository{db: db}
}

func (r *packageRepository) Create(ctx context.Context, pkg *models.Package) error {
	return r.db.WithContext(ctx).Create(pkg).Error
}

func (r *packageRepository) FindAll(ctx context.Context, filter PackageFilter) ([]models.Package, error) {
	q := r.db.WithContext(ctx).Model(&models.Package{})

	if s := strings.TrimSpace(filter.Search); s != "" {
		like := "%" + s + "%"
		q = q.Where("name ILIKE ? OR destination ILIKE ? OR description ILIKE ?", like, like, like)
	}
	if filter.CategoryID != 0 {
		q = q.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Tag != "" {
		// jsonb containment against a one-element array matches any position.
		q = q.Where("tags::jsonb @> ?", "["+strconv.Quote(filter.Tag)+"]")
	}

	order := "created_at DESC"
	if filter.SortAsc {
		order = "created_at ASC"
	}

	var packages []models.Package
	if err := q.Order(order).Find(&packages).Error; err != nil {
		return nil, err
	}
	return packages, nil
}

func (r *packageRepository) FindByID(ctx context.Context, id uint) (*models.Package, error) {
	var pkg models.Package
	if err := r.db.WithContext(ctx).First(&pkg, id).Error; err != nil {
		return nil, err
	}
	return &pkg, nil
}

// CountByCategory reports how many packages reference a category; used to
// block deleting a category that is still in use.
func (r *packageRepository) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Package{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	return count, err
}

func (r *packageRepository) Update(ctx context.Context, pkg *models.Package) error {
	return r.db.WithContext(ctx).Save(pkg).Error
}

func (r *packageRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Package{}, id).Error
}
