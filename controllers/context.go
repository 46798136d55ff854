// Package controllers contains the gin request handlers, one controller per
// route family. Controllers orchestrate repositories and shape the JSON
// response envelope; they hold no state beyond their injected dependencies.
package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gopress/gopress/middleware"
	"github.com/gopress/gopress/models"
	"github.com/gopress/gopress/repository"
	"github.com/gopress/gopress/utils"
)

// parsePageQuery reads page/limit/sortBy query params, applying the
// endpoint's default limit. sortBy validation happens in the repository.
func parsePageQuery(ctx *gin.Context, defaultLimit int) repository.PageQuery {
	q := repository.PageQuery{Page: 1, Limit: defaultLimit, SortBy: ctx.Query("sortBy")}
	if p, err := strconv.Atoi(ctx.Query("page")); err == nil && p > 0 {
		q.Page = p
	}
	if l, err := strconv.Atoi(ctx.Query("limit")); err == nil && l > 0 && l <= 100 {
		q.Limit = l
	}
	return q
}

// listError maps a rejected sortBy to 400 and everything else to 500.
// Shared by every paginated listing handler.
func listError(ctx *gin.Context, err error) {
	if errors.Is(err, repository.ErrInvalidSortColumn) {
		utils.BadRequest(ctx, "invalid sortBy value")
		return
	}
	utils.InternalError(ctx, err)
}

// paramUint parses a numeric path parameter.
func paramUint(ctx *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}

func getUserID(ctx *gin.Context) (uint, bool) {
	value, exists := ctx.Get(middleware.ContextUserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}

func isAdmin(ctx *gin.Context) bool {
	value, exists := ctx.Get(middleware.ContextRoleKey)
	if !exists {
		return false
	}
	role, _ := value.(string)
	return role == models.RoleAdmin
}
