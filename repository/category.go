package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gopress/gopress/models"
)

// CategoryRepository exposes post-category data-access operations.
type CategoryRepository interface {
	FindByID(ctx context.Context, id uint) (*models.PostCategory, error)
	FindAll(ctx context.Context) ([]models.PostCategory, error)
	Create(ctx context.Context, category *models.PostCategory) error
	Update(ctx context.Context, category *models.PostCategory) error
	Delete(ctx context.Context, id uint) error
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a category repository over the given store handle.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) FindByID(ctx context.Context, id uint) (*models.PostCategory, error) {
	var category models.PostCategory
	err := r.db.WithContext(ctx).First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindAll(ctx context.Context) ([]models.PostCategory, error) {
	var categories []models.PostCategory
	err := r.db.WithContext(ctx).Order("id DESC").Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) Create(ctx context.Context, category *models.PostCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) Update(ctx context.Context, category *models.PostCategory) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.PostCategory{}, id).Error
}
