package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gopress/gopress/models"
)

// PageViewRepository tracks hit counters for named static pages.
type PageViewRepository interface {
	Increment(ctx context.Context, page string) (*models.PageView, error)
	Find(ctx context.Context, page string) (*models.PageView, error)
	FindAll(ctx context.Context) ([]models.PageView, error)
}

type pageViewRepository struct {
	db *gorm.DB
}

// NewPageViewRepository creates a page-view repository over the given store handle.
func NewPageViewRepository(db *gorm.DB) PageViewRepository {
	return &pageViewRepository{db: db}
}

// Increment bumps the counter atomically; concurrent hits on the same page
// both land thanks to the upsert.
func (r *pageViewRepository) Increment(ctx context.Context, page string) (*models.PageView, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "page"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"count": gorm.Expr("count + 1")}),
	}).Create(&models.PageView{Page: page, Count: 1}).Error
	if err != nil {
		return nil, err
	}
	return r.Find(ctx, page)
}

func (r *pageViewRepository) Find(ctx context.Context, page string) (*models.PageView, error) {
	var pv models.PageView
	err := r.db.WithContext(ctx).Where("page = ?", page).First(&pv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pv, nil
}

func (r *pageViewRepository) FindAll(ctx context.Context) ([]models.PageView, error) {
	var pvs []models.PageView
	err := r.db.WithContext(ctx).Order("page ASC").Find(&pvs).Error
	return pvs, err
}
