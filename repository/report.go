package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gopress/gopress/models"
)

// ReportRepository covers the three report tables, which share one shape:
// create a report, list them for moderation, delete after review.
type ReportRepository[T any] interface {
	FindByID(ctx context.Context, id uint) (*T, error)
	FindAll(ctx context.Context) ([]T, error)
	Create(ctx context.Context, report *T) error
	Delete(ctx context.Context, id uint) error
}

type reportRepository[T any] struct {
	db *gorm.DB
}

// NewReportPostRepository creates the post-report repository.
func NewReportPostRepository(db *gorm.DB) ReportRepository[models.ReportPost] {
	return &reportRepository[models.ReportPost]{db: db}
}

// NewReportCommentRepository creates the comment-report repository.
func NewReportCommentRepository(db *gorm.DB) ReportRepository[models.ReportComment] {
	return &reportRepository[models.ReportComment]{db: db}
}

// NewReportChildCommentRepository creates the child-comment-report repository.
func NewReportChildCommentRepository(db *gorm.DB) ReportRepository[models.ReportChildComment] {
	return &reportRepository[models.ReportChildComment]{db: db}
}

func (r *reportRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var report T
	err := r.db.WithContext(ctx).First(&report, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository[T]) FindAll(ctx context.Context) ([]T, error) {
	var reports []T
	err := r.db.WithContext(ctx).Order("id DESC").Find(&reports).Error
	return reports, err
}

func (r *reportRepository[T]) Create(ctx context.Context, report *T) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *reportRepository[T]) Delete(ctx context.Context, id uint) error {
	var zero T
	return r.db.WithContext(ctx).Delete(&zero, id).Error
}
