package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gopress/gopress/models"
)

// ChildCommentRepository exposes child-comment data-access operations.
type ChildCommentRepository interface {
	FindByID(ctx context.Context, id uint) (*models.ChildComment, error)
	ListByComment(ctx context.Context, commentID uint) ([]models.ChildComment, error)
	Create(ctx context.Context, child *models.ChildComment) error
	Update(ctx context.Context, child *models.ChildComment) error
	Delete(ctx context.Context, id uint) error
}

type childCommentRepository struct {
	db *gorm.DB
}

// NewChildCommentRepository creates a child-comment repository over the given store handle.
func NewChildCommentRepository(db *gorm.DB) ChildCommentRepository {
	return &childCommentRepository{db: db}
}

func (r *childCommentRepository) FindByID(ctx context.Context, id uint) (*models.ChildComment, error) {
	var child models.ChildComment
	err := r.db.WithContext(ctx).First(&child, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &child, nil
}

func (r *childCommentRepository) ListByComment(ctx context.Context, commentID uint) ([]models.ChildComment, error) {
	var children []models.ChildComment
	err := r.db.WithContext(ctx).
		Preload("User", idOnlyUser).
		Where("comment_id = ?", commentID).
		Order("id DESC").
		Find(&children).Error
	return children, err
}

func (r *childCommentRepository) Create(ctx context.Context, child *models.ChildComment) error {
	return r.db.WithContext(ctx).Create(child).Error
}

func (r *childCommentRepository) Update(ctx context.Context, child *models.ChildComment) error {
	return r.db.WithContext(ctx).Save(child).Error
}

func (r *childCommentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.ChildComment{}, id).Error
}
