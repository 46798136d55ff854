package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gopress/gopress/models"
	"github.com/gopress/gopress/repository"
	"github.com/gopress/gopress/utils"
)

// ChildCommentController serves replies to comments, one nesting level deep.
type ChildCommentController struct {
	children repository.ChildCommentRepository
	comments repository.CommentRepository
}

// NewChildCommentController creates a ChildCommentController over the given store handle.
func NewChildCommentController(db *gorm.DB) *ChildCommentController {
	return &ChildCommentController{
		children: repository.NewChildCommentRepository(db),
		comments: repository.NewCommentRepository(db),
	}
}

// ListByComment returns a comment's replies, newest first.
func (c *ChildCommentController) ListByComment(ctx *gin.Context) {
	commentID, ok := paramUint(ctx, "commentId")
	if !ok {
		utils.BadRequest(ctx, "invalid comment id")
		return
	}

	children, err := c.children.ListByComment(ctx.Request.Context(), commentID)
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, children)
}

// Create adds a reply to an existing comment on behalf of the token user.
func (c *ChildCommentController) Create(ctx *gin.Context) {
	commentID, ok := paramUint(ctx, "commentId")
	if !ok {
		utils.BadRequest(ctx, "invalid comment id")
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

	parent, err := c.comments.FindByID(ctx.Request.Context(), commentID)
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}
	if parent == nil {
		utils.NotFound(ctx, "No comment found")
		return
	}

	child := models.ChildComment{
		CommentID: parent.ID,
		UserID:    userID,
		Content:   utils.Sanitize(req.Content),
	}
	if err := c.children.Create(ctx.Request.Context(), &child); err != nil {
		utils.InternalError(ctx, err)
		return
	}

	utils.InvalidatePostCaches()
	ctx.JSON(http.StatusOK, child)
}

// Update rewrites a reply's content. Owner only.
func (c *ChildCommentController) Update(ctx *gin.Context) {
	childID, ok := paramUint(ctx, "childCommentId")
	if !ok {
		utils.BadRequest(ctx, "invalid child comment id")
		return
	}
	userID, _ := getUserID(ctx)

	var req commentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, "invalid request payload")
		return
	}

	child, err := c.children.FindByID(ctx.Request.Context(), childID)
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}
	if child == nil {
		utils.NotFound(ctx, "No child comment found")
		return
	}
	if child.UserID != userID {
		utils.BadRequest(ctx, "You are not the owner")
		return
	}

	child.Content = utils.Sanitize(req.Content)
	if err := c.children.Update(ctx.Request.Context(), child); err != nil {
		utils.InternalError(ctx, err)
		return
	}

	utils.InvalidatePostCaches()
	ctx.JSON(http.StatusOK, child)
}

// Remove deletes a reply. Owner or admin.
func (c *ChildCommentController) Remove(ctx *gin.Context) {
	childID, ok := paramUint(ctx, "childCommentId")
	if !ok {
		utils.BadRequest(ctx, "invalid child comment id")
		return
	}
	userID, _ := getUserID(ctx)

	child, err := c.children.FindByID(ctx.Request.Context(), childID)
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}
	if child == nil {
		utils.NotFound(ctx, "No child comment found")
		return
	}
	if child.UserID != userID && !isAdmin(ctx) {
		utils.BadRequest(ctx, "You are not the owner")
		return
	}

	if err := c.children.Delete(ctx.Request.Context(), child.ID); err != nil {
		utils.InternalError(ctx, err)
		return
	}

	utils.InvalidatePostCaches()
	ctx.Status(http.StatusNoContent)
}
