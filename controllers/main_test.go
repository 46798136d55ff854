package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gopress/gopress/middleware"
	"github.com/gopress/gopress/models"
	"github.com/gopress/gopress/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	t.Setenv("JWT_SECRET", "controller-test-secret")

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

// newTestRouter registers the same route shapes the production router mounts,
// without its logging and CORS layers.
func newTestRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	api := r.Group("/api")
	auth := middleware.AuthRequired()
	admin := middleware.AdminRequired()

	postController := NewPostController(db)
	userController := NewUserController(db)
	commentController := NewCommentController(db)
	likePostController := NewLikePostController(db)
	staticPageController := NewStaticPageController(db)

	api.GET("/posts", postController.List)
	api.GET("/posts/:slug", postController.Read)
	api.GET("/search-posts", postController.Search)
	api.GET("/user-posts/:userId", postController.PostsByUserID)
	api.GET("/category-posts/:postsCategoryId", postController.PostsByCategory)
	api.GET("/vip-posts", postController.PostsVip)
	api.POST("/posts/:userId", auth, postController.Create)
	api.PUT("/posts/:postId/:userId", auth, postController.Update)
	api.DELETE("/posts/:postId/:userId", auth, postController.Remove)
	api.DELETE("/admin/posts/:postId", auth, admin, postController.RemoveByAdmin)

	api.POST("/register", userController.Register)
	api.POST("/login", userController.Login)
	api.GET("/users", userController.List)
	api.GET("/users/:userId", userController.Read)

	api.GET("/comments/:postId", commentController.ListByPost)
	api.POST("/comments/:postId", auth, commentController.Create)

	api.GET("/like-posts/:postId", likePostController.ListByPost)
	api.POST("/like-posts/:postId", auth, likePostController.Create)
	api.DELETE("/like-posts/:postId", auth, likePostController.Remove)

	api.PUT("/static-pages/:page", staticPageController.Visit)

	return r
}

func createTestUser(t *testing.T, db *gorm.DB, username, role string) *models.User {
	t.Helper()
	hash, err := utils.HashPassword("password123")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := models.User{Username: username, Password: hash, Role: role}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return &user
}

func bearerToken(t *testing.T, user *models.User) string {
	t.Helper()
	token, err := utils.GenerateToken(user.ID, user.Username, user.Role, time.Hour)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return "Bearer " + token
}

func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response body %q: %v", w.Body.String(), err)
	}
	return out
}
