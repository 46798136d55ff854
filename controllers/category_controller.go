package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gopress/gopress/models"
	"github.com/gopress/gopress/repository"
	"github.com/gopress/gopress/utils"
)

// CategoryController serves the post-category CRUD endpoints.
type CategoryController struct {
	categories repository.CategoryRepository
}

// NewCategoryController creates a CategoryController over the given store handle.
func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{categories: repository.NewCategoryRepository(db)}
}

type categoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=128"`
}

// List returns all categories, newest first.
func (c *CategoryController) List(ctx *gin.Context) {
	categories, err := c.categories.FindAll(ctx.Request.Context())
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, categories)
}

// Read returns one category.
func (c *CategoryController) Read(ctx *gin.Context) {
	id, ok := paramUint(ctx, "postsCategoryId")
	if !ok {
		utils.BadRequest(ctx, "invalid category id")
		return
	}

	category, err := c.categories.FindByID(ctx.Request.Context(), id)
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}
	if category == nil {
		utils.NotFound(ctx, "No category found")
		return
	}
	ctx.JSON(http.StatusOK, category)
}

// Create inserts a category.
func (c *CategoryController) Create(ctx *gin.Context) {
	var req categoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, "invalid request payload")
		return
	}

	category := models.PostCategory{Name: strings.TrimSpace(req.Name)}
	if err := c.categories.Create(ctx.Request.Context(), &category); err != nil {
		utils.InternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, category)
}

// Update renames a category.
func (c *CategoryController) Update(ctx *gin.Context) {
	id, ok := paramUint(ctx, "postsCategoryId")
	if !ok {
		utils.BadRequest(ctx, "invalid category id")
		return
	}

	var req categoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, "invalid request payload")
		return
	}

	category, err := c.categories.FindByID(ctx.Request.Context(), id)
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}
	if category == nil {
		utils.NotFound(ctx, "No category found")
		return
	}

	category.Name = strings.TrimSpace(req.Name)
	if err := c.categories.Update(ctx.Request.Context(), category); err != nil {
		utils.InternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, category)
}

// Remove deletes a category.
func (c *CategoryController) Remove(ctx *gin.Context) {
	id, ok := paramUint(ctx, "postsCategoryId")
	if !ok {
		utils.BadRequest(ctx, "invalid category id")
		return
	}

	if err := c.categories.Delete(ctx.Request.Context(), id); err != nil {
		utils.InternalError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
