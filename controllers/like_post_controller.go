package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gopress/gopress/models"
	"github.com/gopress/gopress/repository"
	"github.com/gopress/gopress/utils"
)

// LikePostController serves post likes. The schema does not enforce one
// like per (post,user); Create checks first, which two concurrent likes can
// still slip past. Accepted, matching the upstream schema.
type LikePostController struct {
	likes repository.LikePostRepository
	posts repository.PostRepository
}

// NewLikePostController creates a LikePostController over the given store handle.
func NewLikePostController(db *gorm.DB) *LikePostController {
	return &LikePostController{
		likes: repository.NewLikePostRepository(db),
		posts: repository.NewPostRepository(db),
	}
}

// ListByPost returns the likes of a post together with their count.
func (l *LikePostController) ListByPost(ctx *gin.Context) {
	postID, ok := paramUint(ctx, "postId")
	if !ok {
		utils.BadRequest(ctx, "invalid post id")
		return
	}

	likes, err := l.likes.ListByPost(ctx.Request.Context(), postID)
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}
	count := int64(len(likes))
	ctx.JSON(http.StatusOK, utils.ListResponse{Data: likes, TotalPages: 1, CurrentPage: 1, Count: &count})
}

// Create records the token user's like on a post.
func (l *LikePostController) Create(ctx *gin.Context) {
	postID, ok := paramUint(ctx, "postId")
	if !ok {
		utils.BadRequest(ctx, "invalid post id")
		return
	}
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Message(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	post, err := l.posts.FindByID(ctx.Request.Context(), postID)
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}
	if post == nil {
		utils.NotFound(ctx, "No post found")
		return
	}

	existing, err := l.likes.FindByPostAndUser(ctx.Request.Context(), postID, userID)
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}
	if existing != nil {
		ctx.JSON(http.StatusOK, existing)
		return
	}

	like := models.LikePost{PostID: postID, UserID: userID}
	if err := l.likes.Create(ctx.Request.Context(), &like); err != nil {
		utils.InternalError(ctx, err)
		return
	}

	utils.InvalidatePostCaches()
	ctx.JSON(http.StatusOK, like)
}

// Remove withdraws the token user's like from a post.
func (l *LikePostController) Remove(ctx *gin.Context) {
	postID, ok := paramUint(ctx, "postId")
	if !ok {
		utils.BadRequest(ctx, "invalid post id")
		return
	}
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Message(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := l.likes.DeleteByPostAndUser(ctx.Request.Context(), postID, userID); err != nil {
		utils.InternalError(ctx, err)
		return
	}

	utils.InvalidatePostCaches()
	ctx.Status(http.StatusNoContent)
}
