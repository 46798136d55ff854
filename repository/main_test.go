package repository

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gopress/gopress/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.PostCategory{},
		&models.Post{},
		&models.Comment{},
		&models.ChildComment{},
		&models.LikePost{},
		&models.ReportPost{},
		&models.ReportComment{},
		&models.ReportChildComment{},
		&models.PageView{},
		&models.UploadedFile{},
	)
	if err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := models.User{Username: username, Password: "hash", Role: models.RoleUser}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return &user
}

func createTestCategory(t *testing.T, db *gorm.DB, name string) *models.PostCategory {
	t.Helper()
	category := models.PostCategory{Name: name}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("failed to create category: %v", err)
	}
	return &category
}

func createTestPost(t *testing.T, db *gorm.DB, title string, userID, categoryID uint, mutate ...func(*models.Post)) *models.Post {
	t.Helper()
	post := models.Post{
		Title:           title,
		Slug:            fmt.Sprintf("slug-%s-%d", title, userID),
		Content:         "content",
		ReadTime:        3,
		UserID:          userID,
		PostsCategoryID: categoryID,
	}
	for _, m := range mutate {
		m(&post)
	}
	if err := db.Create(&post).Error; err != nil {
		t.Fatalf("failed to create post: %v", err)
	}
	return &post
}
