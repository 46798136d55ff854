package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gopress/gopress/config"
	"github.com/gopress/gopress/controllers"
	"github.com/gopress/gopress/middleware"
	"github.com/gopress/gopress/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Replace default console logger with file-based zap logger
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.Static("/static", "./static")

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	postController := controllers.NewPostController(db)
	userController := controllers.NewUserController(db)
	categoryController := controllers.NewCategoryController(db)
	commentController := controllers.NewCommentController(db)
	childCommentController := controllers.NewChildCommentController(db)
	likePostController := controllers.NewLikePostController(db)
	reportPostController := controllers.NewReportPostController(db)
	reportCommentController := controllers.NewReportCommentController(db)
	reportChildCommentController := controllers.NewReportChildCommentController(db)
	staticPageController := controllers.NewStaticPageController(db)
	uploadController := controllers.NewUploadController(db)
	mockController := controllers.NewMockController(db)

	api := r.Group("/api")
	auth := middleware.AuthRequired()
	admin := middleware.AdminRequired()
	limited := middleware.RateLimitMiddleware()

	// Post endpoints live directly under /api, mirroring the public site's
	// URL scheme. fetch-by-slug and the discovery feeds are public.
	api.GET("/posts", postController.List)
	api.GET("/posts/:slug", postController.Read)
	api.GET("/trend-posts", postController.TrendPosts)
	api.GET("/vip-posts", postController.PostsVip)
	api.GET("/search-posts", postController.Search)
	api.GET("/category-posts/:postsCategoryId", postController.PostsByCategory)
	api.GET("/related-posts/:postId", postController.PostsRelated)
	api.GET("/user-posts/:userId", postController.PostsByUserID)
	api.POST("/posts/:userId", auth, limited, postController.Create)
	api.PUT("/posts/:postId/:userId", auth, limited, postController.Update)
	api.DELETE("/posts/:postId/:userId", auth, limited, postController.Remove)
	api.DELETE("/admin/posts/:postId", auth, admin, postController.RemoveByAdmin)

	api.POST("/register", limited, userController.Register)
	api.POST("/login", limited, userController.Login)

	users := api.Group("/users")
	users.GET("", userController.List)
	users.GET("/:userId", userController.Read)
	users.PUT("/:userId", auth, limited, userController.Update)
	users.DELETE("/:userId", auth, admin, userController.Remove)

	categories := api.Group("/post-categories")
	categories.GET("", categoryController.List)
	categories.GET("/:postsCategoryId", categoryController.Read)
	categories.POST("", auth, admin, categoryController.Create)
	categories.PUT("/:postsCategoryId", auth, admin, categoryController.Update)
	categories.DELETE("/:postsCategoryId", auth, admin, categoryController.Remove)

	comments := api.Group("/comments")
	comments.GET("/:postId", commentController.ListByPost)
	comments.POST("/:postId", auth, limited, commentController.Create)
	comments.PUT("/:commentId", auth, limited, commentController.Update)
	comments.DELETE("/:commentId", auth, limited, commentController.Remove)

	childComments := api.Group("/child-comments")
	childComments.GET("/:commentId", childCommentController.ListByComment)
	childComments.POST("/:commentId", auth, limited, childCommentController.Create)
	childComments.PUT("/:childCommentId", auth, limited, childCommentController.Update)
	childComments.DELETE("/:childCommentId", auth, limited, childCommentController.Remove)

	likePosts := api.Group("/like-posts")
	likePosts.GET("/:postId", likePostController.ListByPost)
	likePosts.POST("/:postId", auth, limited, likePostController.Create)
	likePosts.DELETE("/:postId", auth, limited, likePostController.Remove)

	reportPosts := api.Group("/report-posts")
	reportPosts.GET("", auth, admin, reportPostController.List)
	reportPosts.GET("/:id", auth, admin, reportPostController.Read)
	reportPosts.POST("", auth, limited, reportPostController.Create)
	reportPosts.DELETE("/:id", auth, admin, reportPostController.Remove)

	reportComments := api.Group("/report-comments")
	reportComments.GET("", auth, admin, reportCommentController.List)
	reportComments.GET("/:id", auth, admin, reportCommentController.Read)
	reportComments.POST("", auth, limited, reportCommentController.Create)
	reportComments.DELETE("/:id", auth, admin, reportCommentController.Remove)

	reportChildComments := api.Group("/report-child-comments")
	reportChildComments.GET("", auth, admin, reportChildCommentController.List)
	reportChildComments.GET("/:id", auth, admin, reportChildCommentController.Read)
	reportChildComments.POST("", auth, limited, reportChildCommentController.Create)
	reportChildComments.DELETE("/:id", auth, admin, reportChildCommentController.Remove)

	staticPages := api.Group("/static-pages")
	staticPages.GET("", auth, admin, staticPageController.List)
	staticPages.GET("/:page", staticPageController.Read)
	staticPages.PUT("/:page", staticPageController.Visit)

	api.POST("/upload", auth, limited, uploadController.Create)
	api.POST("/mocks", auth, admin, mockController.Create)

	return r
}
