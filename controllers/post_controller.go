package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gopress/gopress/models"
	"github.com/gopress/gopress/repository"
	"github.com/gopress/gopress/utils"
)

// Default page sizes per listing endpoint.
const (
	defaultListLimit     = 10
	defaultTrendLimit    = 8
	defaultSearchLimit   = 8
	defaultRelatedLimit  = 4
	defaultCategoryLimit = 4
	defaultVipLimit      = 3
)

// PostController serves the post CRUD and filtered-listing endpoints.
type PostController struct {
	posts repository.PostRepository
	users repository.UserRepository
}

// NewPostController creates a PostController over the given store handle.
func NewPostController(db *gorm.DB) *PostController {
	return &PostController{
		posts: repository.NewPostRepository(db),
		users: repository.NewUserRepository(db),
	}
}

// postRequest is the full field set for create and update. Updates are
// full-replace: every field is written, so title and content are required
// to keep an omitted field from silently clearing a column.
type postRequest struct {
	Title           string `json:"title" binding:"required,min=1"`
	Description     string `json:"description"`
	Content         string `json:"content" binding:"required"`
	Image           string `json:"image"`
	Promoted        bool   `json:"promoted"`
	Vip             bool   `json:"vip"`
	ReadTime        int    `json:"read_time"`
	PostsCategoryID uint   `json:"postsCategoryId" binding:"required"`
}

// Read returns one post by slug with its category, comments, author and likes.
func (p *PostController) Read(ctx *gin.Context) {
	slug := ctx.Param("slug")

	cacheKey := utils.CacheKeyPostBySlug + slug
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	post, err := p.posts.FindBySlug(ctx.Request.Context(), slug)
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}
	if post == nil {
		utils.NotFound(ctx, "No post found")
		return
	}

	utils.CacheSetJSON(cacheKey, post, time.Hour)
	ctx.JSON(http.StatusOK, post)
}

// Create inserts a post owned by the path user, deriving the slug from the title.
func (p *PostController) Create(ctx *gin.Context) {
	userID, ok := paramUint(ctx, "userId")
	if !ok {
		utils.BadRequest(ctx, "invalid user id")
		return
	}

	var req postRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, "invalid request payload")
		return
	}

	post := models.Post{
		Title:           strings.TrimSpace(req.Title),
		Slug:            utils.Slugify(req.Title),
		Description:     req.Description,
		Content:         utils.Sanitize(req.Content),
		Image:           req.Image,
		Promoted:        req.Promoted,
		Vip:             req.Vip,
		ReadTime:        req.ReadTime,
		PostsCategoryID: req.PostsCategoryID,
		UserID:          userID,
	}

	if err := p.posts.Create(ctx.Request.Context(), &post); err != nil {
		utils.InternalError(ctx, err)
		return
	}

	utils.InvalidatePostCaches()
	ctx.JSON(http.StatusOK, post)
}

// Update overwrites every field of an existing post and recomputes its slug.
func (p *PostController) Update(ctx *gin.Context) {
	postID, ok := paramUint(ctx, "postId")
	if !ok {
		utils.BadRequest(ctx, "invalid post id")
		return
	}
	userID, ok := paramUint(ctx, "userId")
	if !ok {
		utils.BadRequest(ctx, "invalid user id")
		return
	}

	var req postRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, "invalid request payload")
		return
	}

	post, err := p.posts.FindByID(ctx.Request.Context(), postID)
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}
	if post == nil {
		utils.NotFound(ctx, "No post found")
		return
	}

	post.Title = strings.TrimSpace(req.Title)
	post.Slug = utils.Slugify(req.Title)
	post.Description = req.Description
	post.Content = utils.Sanitize(req.Content)
	post.Image = req.Image
	post.Promoted = req.Promoted
	post.Vip = req.Vip
	post.ReadTime = req.ReadTime
	post.PostsCategoryID = req.PostsCategoryID
	post.UserID = userID

	if err := p.posts.Update(ctx.Request.Context(), post); err != nil {
		utils.InternalError(ctx, err)
		return
	}

	utils.InvalidatePostCaches()
	ctx.JSON(http.StatusOK, post)
}

// Remove deletes a post if the path user owns it.
func (p *PostController) Remove(ctx *gin.Context) {
	postID, ok := paramUint(ctx, "postId")
	if !ok {
		utils.BadRequest(ctx, "invalid post id")
		return
	}
	userID, ok := paramUint(ctx, "userId")
	if !ok {
		utils.BadRequest(ctx, "invalid user id")
		return
	}

	post, err := p.posts.FindByID(ctx.Request.Context(), postID)
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}
	if post == nil {
		utils.NotFound(ctx, "No post found")
		return
	}

	user, err := p.users.FindByID(ctx.Request.Context(), userID)
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}
	if user == nil || user.ID != post.UserID {
		utils.BadRequest(ctx, "You are not the owner")
		return
	}

	if err := p.posts.Delete(ctx.Request.Context(), post.ID); err != nil {
		utils.InternalError(ctx, err)
		return
	}

	utils.InvalidatePostCaches()
	ctx.Status(http.StatusNoContent)
}

// RemoveByAdmin deletes a post unconditionally.
func (p *PostController) RemoveByAdmin(ctx *gin.Context) {
	postID, ok := paramUint(ctx, "postId")
	if !ok {
		utils.BadRequest(ctx, "invalid post id")
		return
	}

	if err := p.posts.Delete(ctx.Request.Context(), postID); err != nil {
		utils.InternalError(ctx, err)
		return
	}

	utils.InvalidatePostCaches()
	ctx.Status(http.StatusNoContent)
}

// List returns the paginated post listing with the full envelope.
func (p *PostController) List(ctx *gin.Context) {
	q := parsePageQuery(ctx, defaultListLimit)

	posts, count, err := p.posts.List(ctx.Request.Context(), q)
	if err != nil {
		listError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, utils.ListResponse{
		Data:        posts,
		TotalPages:  repository.TotalPages(count, q.Limit),
		CurrentPage: q.Page,
		Count:       &count,
	})
}

// categoryPostView shadows the category id column, which the category and
// vip feeds do not serialize; the embedded association still carries it.
type categoryPostView struct {
	models.Post
	PostsCategoryID uint `json:"postsCategoryId,omitempty"`
}

func categoryPostViews(posts []models.Post) []categoryPostView {
	views := make([]categoryPostView, len(posts))
	for i, post := range posts {
		views[i] = categoryPostView{Post: post}
	}
	return views
}

// PostsByCategory returns the newest posts of a category, capped at 4.
func (p *PostController) PostsByCategory(ctx *gin.Context) {
	categoryID, ok := paramUint(ctx, "postsCategoryId")
	if !ok {
		utils.BadRequest(ctx, "invalid category id")
		return
	}

	cacheKey := fmt.Sprintf("%s%d", utils.CacheKeyCategory, categoryID)
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	posts, err := p.posts.ListByCategory(ctx.Request.Context(), categoryID, defaultCategoryLimit)
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}

	views := categoryPostViews(posts)
	utils.CacheSetJSON(cacheKey, views, time.Hour)
	ctx.JSON(http.StatusOK, views)
}

// TrendPosts returns promoted posts, paginated.
func (p *PostController) TrendPosts(ctx *gin.Context) {
	q := parsePageQuery(ctx, defaultTrendLimit)

	cacheKey := fmt.Sprintf("%spage=%d:limit=%d:sort=%s", utils.CacheKeyTrend, q.Page, q.Limit, q.SortBy)
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	posts, count, err := p.posts.ListPromoted(ctx.Request.Context(), q)
	if err != nil {
		listError(ctx, err)
		return
	}

	resp := utils.ListResponse{
		Data:        posts,
		TotalPages:  repository.TotalPages(count, q.Limit),
		CurrentPage: q.Page,
	}
	utils.CacheSetJSON(cacheKey, resp, time.Hour)
	ctx.JSON(http.StatusOK, resp)
}

// PostsRelated returns siblings sharing the post's category. Pagination is
// computed but only the rows are returned, matching the historical wire shape.
func (p *PostController) PostsRelated(ctx *gin.Context) {
	postID, ok := paramUint(ctx, "postId")
	if !ok {
		utils.BadRequest(ctx, "invalid post id")
		return
	}
	q := parsePageQuery(ctx, defaultRelatedLimit)

	post, err := p.posts.FindByID(ctx.Request.Context(), postID)
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}
	if post == nil {
		utils.NotFound(ctx, "No post found")
		return
	}

	posts, err := p.posts.ListRelated(ctx.Request.Context(), post.PostsCategoryID, q)
	if err != nil {
		listError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": posts})
}

// PostsVip returns the newest vip posts, capped at 3.
func (p *PostController) PostsVip(ctx *gin.Context) {
	if b, ok := utils.CacheGetBytes(utils.CacheKeyVip); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	posts, err := p.posts.ListVip(ctx.Request.Context(), defaultVipLimit)
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}

	views := categoryPostViews(posts)
	utils.CacheSetJSON(utils.CacheKeyVip, views, time.Hour)
	ctx.JSON(http.StatusOK, views)
}

// Search returns posts whose title contains the query substring, case-insensitively.
func (p *PostController) Search(ctx *gin.Context) {
	q := parsePageQuery(ctx, defaultSearchLimit)
	title := ctx.Query("title")

	posts, count, err := p.posts.Search(ctx.Request.Context(), title, q)
	if err != nil {
		listError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, utils.ListResponse{
		Data:        posts,
		TotalPages:  repository.TotalPages(count, q.Limit),
		CurrentPage: q.Page,
	})
}

// PostsByUserID returns posts owned by the path user, paginated.
func (p *PostController) PostsByUserID(ctx *gin.Context) {
	userID, ok := paramUint(ctx, "userId")
	if !ok {
		utils.BadRequest(ctx, "invalid user id")
		return
	}
	q := parsePageQuery(ctx, defaultListLimit)

	posts, count, err := p.posts.ListByUser(ctx.Request.Context(), userID, q)
	if err != nil {
		listError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, utils.ListResponse{
		Data:        posts,
		TotalPages:  repository.TotalPages(count, q.Limit),
		CurrentPage: q.Page,
	})
}
