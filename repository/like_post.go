package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gopress/gopress/models"
)

// LikePostRepository exposes like data-access operations. Uniqueness per
// (postId,userId) is not enforced by the schema; FindByPostAndUser lets
// handlers check before creating.
type LikePostRepository interface {
	FindByPostAndUser(ctx context.Context, postID, userID uint) (*models.LikePost, error)
	ListByPost(ctx context.Context, postID uint) ([]models.LikePost, error)
	CountByPost(ctx context.Context, postID uint) (int64, error)
	Create(ctx context.Context, like *models.LikePost) error
	Delete(ctx context.Context, id uint) error
	DeleteByPostAndUser(ctx context.Context, postID, userID uint) error
}

type likePostRepository struct {
	db *gorm.DB
}

// NewLikePostRepository creates a like repository over the given store handle.
func NewLikePostRepository(db *gorm.DB) LikePostRepository {
	return &likePostRepository{db: db}
}

func (r *likePostRepository) FindByPostAndUser(ctx context.Context, postID, userID uint) (*models.LikePost, error) {
	var like models.LikePost
	err := r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		First(&like).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *likePostRepository) ListByPost(ctx context.Context, postID uint) ([]models.LikePost, error) {
	var likes []models.LikePost
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("id DESC").
		Find(&likes).Error
	return likes, err
}

func (r *likePostRepository) CountByPost(ctx context.Context, postID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.LikePost{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

func (r *likePostRepository) Create(ctx context.Context, like *models.LikePost) error {
	return r.db.WithContext(ctx).Create(like).Error
}

func (r *likePostRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.LikePost{}, id).Error
}

func (r *likePostRepository) DeleteByPostAndUser(ctx context.Context, postID, userID uint) error {
	return r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&models.LikePost{}).Error
}
