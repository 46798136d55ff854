package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gopress/gopress/repository"
	"github.com/gopress/gopress/utils"
)

// StaticPageController tracks hit counters for named static pages (about,
// contact, terms and the like).
type StaticPageController struct {
	views repository.PageViewRepository
}

// NewStaticPageController creates a StaticPageController over the given store handle.
func NewStaticPageController(db *gorm.DB) *StaticPageController {
	return &StaticPageController{views: repository.NewPageViewRepository(db)}
}

// Visit bumps the counter for a page and returns the new value.
func (s *StaticPageController) Visit(ctx *gin.Context) {
	page := ctx.Param("page")
	if page == "" {
		utils.BadRequest(ctx, "invalid page name")
		return
	}
	pv, err := s.views.Increment(ctx.Request.Context(), page)
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, pv)
}

// Read returns a page counter without bumping it.
func (s *StaticPageController) Read(ctx *gin.Context) {
	page := ctx.Param("page")
	pv, err := s.views.Find(ctx.Request.Context(), page)
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}
	if pv == nil {
		utils.NotFound(ctx, "No page found")
		return
	}
	ctx.JSON(http.StatusOK, pv)
}

// List returns all page counters. Admin only.
func (s *StaticPageController) List(ctx *gin.Context) {
	pvs, err := s.views.FindAll(ctx.Request.Context())
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}
	count := int64(len(pvs))
	ctx.JSON(http.StatusOK, utils.ListResponse{Data: pvs, TotalPages: 1, CurrentPage: 1, Count: &count})
}
