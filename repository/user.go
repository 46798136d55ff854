package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gopress/gopress/models"
)

// UserRepository exposes account data-access operations.
type UserRepository interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, q PageQuery) ([]models.User, int64, error)
}

var userSortColumns = map[string]string{
	"id":         "id",
	"username":   "username",
	"createdAt":  "created_at",
	"created_at": "created_at",
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a user repository over the given store handle.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.User{}, id).Error
}

func (r *userRepository) List(ctx context.Context, q PageQuery) ([]models.User, int64, error) {
	col, err := orderColumn(q.SortBy, userSortColumns)
	if err != nil {
		return nil, 0, err
	}

	query := r.db.WithContext(ctx).Model(&models.User{})

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	if err := paginate(query, col, q).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, count, nil
}
