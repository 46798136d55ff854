package controllers

import (
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gopress/gopress/models"
	"github.com/gopress/gopress/utils"
)

// MockController seeds the database with generated content. Development
// convenience only; the route is admin-guarded.
type MockController struct {
	db *gorm.DB
}

// NewMockController creates a MockController over the given store handle.
func NewMockController(db *gorm.DB) *MockController {
	gofakeit.Seed(time.Now().UnixNano())
	return &MockController{db: db}
}

type mockRequest struct {
	Users      int `json:"users"`
	Categories int `json:"categories"`
	Posts      int `json:"posts"`
	Comments   int `json:"comments"`
}

// Create generates fake users, categories, posts and comments. Counts come
// from the body; zero values fall back to small defaults.
func (m *MockController) Create(ctx *gin.Context) {
	var req mockRequest
	_ = ctx.ShouldBindJSON(&req)
	if req.Users <= 0 {
		req.Users = 5
	}
	if req.Categories <= 0 {
		req.Categories = 3
	}
	if req.Posts <= 0 {
		req.Posts = 20
	}
	if req.Comments <= 0 {
		req.Comments = 40
	}

	db := m.db.WithContext(ctx.Request.Context())

	hash, err := utils.HashPassword("password")
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}

	users := make([]models.User, 0, req.Users)
	for i := 0; i < req.Users; i++ {
		users = append(users, models.User{
			Username: fmt.Sprintf("%s%d", gofakeit.Username(), rand.Intn(10000)),
			Password: hash,
			Role:     models.RoleUser,
		})
	}
	if err := db.Create(&users).Error; err != nil {
		utils.InternalError(ctx, err)
		return
	}

	categories := make([]models.PostCategory, 0, req.Categories)
	for i := 0; i < req.Categories; i++ {
		categories = append(categories, models.PostCategory{
			Name: fmt.Sprintf("%s %d", gofakeit.Hobby(), rand.Intn(10000)),
		})
	}
	if err := db.Create(&categories).Error; err != nil {
		utils.InternalError(ctx, err)
		return
	}

	posts := make([]models.Post, 0, req.Posts)
	for i := 0; i < req.Posts; i++ {
		title := gofakeit.Sentence(5)
		posts = append(posts, models.Post{
			Title:           title,
			Slug:            utils.Slugify(fmt.Sprintf("%s %d", title, i)),
			Description:     gofakeit.Sentence(12),
			Content:         gofakeit.Paragraph(2, 4, 8, "\n"),
			Image:           fmt.Sprintf("https://picsum.photos/seed/%s/800/450", gofakeit.UUID()),
			Promoted:        rand.Intn(5) == 0,
			Vip:             rand.Intn(8) == 0,
			ReadTime:        1 + rand.Intn(15),
			PostsCategoryID: categories[rand.Intn(len(categories))].ID,
			UserID:          users[rand.Intn(len(users))].ID,
		})
	}
	if err := db.Create(&posts).Error; err != nil {
		utils.InternalError(ctx, err)
		return
	}

	comments := make([]models.Comment, 0, req.Comments)
	for i := 0; i < req.Comments; i++ {
		comments = append(comments, models.Comment{
			Content: gofakeit.Sentence(10),
			PostID:  posts[rand.Intn(len(posts))].ID,
			UserID:  users[rand.Intn(len(users))].ID,
		})
	}
	if err := db.Create(&comments).Error; err != nil {
		utils.InternalError(ctx, err)
		return
	}

	utils.InvalidatePostCaches()
	ctx.JSON(http.StatusCreated, gin.H{
		"users":      len(users),
		"categories": len(categories),
		"posts":      len(posts),
		"comments":   len(comments),
	})
}
