package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gopress/gopress/models"
	"github.com/gopress/gopress/repository"
	"github.com/gopress/gopress/utils"
)

// CommentController serves top-level comments on posts.
type CommentController struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
}

// NewCommentController creates a CommentController over the given store handle.
func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{
		comments: repository.NewCommentRepository(db),
		posts:    repository.NewPostRepository(db),
	}
}

type commentRequest struct {
	Content string `json:"content" binding:"required"`
}

// ListByPost returns a post's comments with their children, newest first.
func (c *CommentController) ListByPost(ctx *gin.Context) {
	postID, ok := paramUint(ctx, "postId")
	if !ok {
		utils.BadRequest(ctx, "invalid post id")
		return
	}

	comments, err := c.comments.ListByPost(ctx.Request.Context(), postID)
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, comments)
}

// Create adds a comment to an existing post on behalf of the token user.
func (c *CommentController) Create(ctx *gin.Context) {
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

	var req commentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, "invalid request payload")
		return
	}

	post, err := c.posts.FindByID(ctx.Request.Context(), postID)
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}
	if post == nil {
		utils.NotFound(ctx, "No post found")
		return
	}

	comment := models.Comment{
		PostID:  post.ID,
		UserID:  userID,
		Content: utils.Sanitize(req.Content),
	}
	if err := c.comments.Create(ctx.Request.Context(), &comment); err != nil {
		utils.InternalError(ctx, err)
		return
	}

	utils.InvalidatePostCaches()
	ctx.JSON(http.StatusOK, comment)
}

// Update rewrites a comment's content. Owner only.
func (c *CommentController) Update(ctx *gin.Context) {
	commentID, ok := paramUint(ctx, "commentId")
	if !ok {
		utils.BadRequest(ctx, "invalid comment id")
		return
	}
	userID, _ := getUserID(ctx)

	var req commentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, "invalid request payload")
		return
	}

	comment, err := c.comments.FindByID(ctx.Request.Context(), commentID)
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}
	if comment == nil {
		utils.NotFound(ctx, "No comment found")
		return
	}
	if comment.UserID != userID {
		utils.BadRequest(ctx, "You are not the owner")
		return
	}

	comment.Content = utils.Sanitize(req.Content)
	if err := c.comments.Update(ctx.Request.Context(), comment); err != nil {
		utils.InternalError(ctx, err)
		return
	}

	utils.InvalidatePostCaches()
	ctx.JSON(http.StatusOK, comment)
}

// Remove deletes a comment. Owner or admin.
func (c *CommentController) Remove(ctx *gin.Context) {
	commentID, ok := paramUint(ctx, "commentId")
	if !ok {
		utils.BadRequest(ctx, "invalid comment id")
		return
	}
	userID, _ := getUserID(ctx)

	comment, err := c.comments.FindByID(ctx.Request.Context(), commentID)
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}
	if comment == nil {
		utils.NotFound(ctx, "No comment found")
		return
	}
	if comment.UserID != userID && !isAdmin(ctx) {
		utils.BadRequest(ctx, "You are not the owner")
		return
	}

	if err := c.comments.Delete(ctx.Request.Context(), comment.ID); err != nil {
		utils.InternalError(ctx, err)
		return
	}

	utils.InvalidatePostCaches()
	ctx.Status(http.StatusNoContent)
}
