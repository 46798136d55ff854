package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/gopress/gopress/models"
)

// PostRepository exposes the post data-access operations. Finders for a
// single row return (nil, nil) when no row matches.
type PostRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Post, error)
	FindBySlug(ctx context.Context, slug string) (*models.Post, error)
	Create(ctx context.Context, post *models.Post) error
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, q PageQuery) ([]models.Post, int64, error)
	ListPromoted(ctx context.Context, q PageQuery) ([]models.Post, int64, error)
	ListByUser(ctx context.Context, userID uint, q PageQuery) ([]models.Post, int64, error)
	ListRelated(ctx context.Context, categoryID uint, q PageQuery) ([]models.Post, error)
	ListByCategory(ctx context.Context, categoryID uint, limit int) ([]models.Post, error)
	ListVip(ctx context.Context, limit int) ([]models.Post, error)
	Search(ctx context.Context, title string, q PageQuery) ([]models.Post, int64, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a post repository over the given store handle.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// idOnlyUser narrows the preloaded user association to its id, the listing
// context's visibility rule (password is excluded everywhere via json:"-").
func idOnlyUser(db *gorm.DB) *gorm.DB {
	return db.Select("id")
}

func namedCategory(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name")
}

func (r *postRepository) FindByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) FindBySlug(ctx context.Context, slug string) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).
		Preload("PostsCategory").
		Preload("Comments").
		Preload("User").
		Preload("LikePosts").
		Where("slug = ?", slug).
		First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Post{}, id).Error
}

func (r *postRepository) List(ctx context.Context, q PageQuery) ([]models.Post, int64, error) {
	return r.findAndCount(ctx, q, func(db *gorm.DB) *gorm.DB {
		return db.
			Preload("PostsCategory").
			Preload("Comments").
			Preload("User", idOnlyUser).
			Preload("LikePosts")
	})
}

func (r *postRepository) ListPromoted(ctx context.Context, q PageQuery) ([]models.Post, int64, error) {
	return r.findAndCount(ctx, q, func(db *gorm.DB) *gorm.DB {
		return db.
			Preload("PostsCategory").
			Preload("Comments").
			Preload("User", idOnlyUser).
			Where("promoted = ?", true)
	})
}

func (r *postRepository) ListByUser(ctx context.Context, userID uint, q PageQuery) ([]models.Post, int64, error) {
	return r.findAndCount(ctx, q, func(db *gorm.DB) *gorm.DB {
		return db.
			Preload("PostsCategory").
			Preload("User", idOnlyUser).
			Preload("LikePosts").
			Where("user_id = ?", userID)
	})
}

// ListRelated returns siblings sharing the category. Pagination fields are
// computed by the caller but the endpoint historically returns rows only,
// so no count is taken here.
func (r *postRepository) ListRelated(ctx context.Context, categoryID uint, q PageQuery) ([]models.Post, error) {
	col, err := orderColumn(q.SortBy, postSortColumns)
	if err != nil {
		return nil, err
	}
	var posts []models.Post
	err = r.db.WithContext(ctx).
		Preload("PostsCategory").
		Preload("Comments").
		Preload("User", idOnlyUser).
		Where("posts_category_id = ?", categoryID).
		Order(col + " DESC").
		Limit(q.Limit).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) ListByCategory(ctx context.Context, categoryID uint, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Preload("User", idOnlyUser).
		Preload("PostsCategory", namedCategory).
		Where("posts_category_id = ?", categoryID).
		Order("id DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) ListVip(ctx context.Context, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Preload("User", idOnlyUser).
		Preload("PostsCategory", namedCategory).
		Where("vip = ?", true).
		Order("id DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

// Search matches the title substring case-insensitively. LOWER() keeps the
// behavior identical across MySQL collations and the sqlite test driver.
func (r *postRepository) Search(ctx context.Context, title string, q PageQuery) ([]models.Post, int64, error) {
	pattern := "%" + strings.ToLower(title) + "%"
	return r.findAndCount(ctx, q, func(db *gorm.DB) *gorm.DB {
		return db.
			Preload("PostsCategory").
			Preload("User", idOnlyUser).
			Preload("LikePosts").
			Where("LOWER(title) LIKE ?", pattern)
	})
}

// findAndCount runs the shared count-then-page flow for a filtered query.
func (r *postRepository) findAndCount(ctx context.Context, q PageQuery, scope func(*gorm.DB) *gorm.DB) ([]models.Post, int64, error) {
	col, err := orderColumn(q.SortBy, postSortColumns)
	if err != nil {
		return nil, 0, err
	}

	query := scope(r.db.WithContext(ctx).Model(&models.Post{}))

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Post
	if err := paginate(query, col, q).Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, count, nil
}
