package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListResponse is the envelope every paginated listing returns.
// Count is only populated by the full post listing.
type ListResponse struct {
	Data        interface{} `json:"data"`
	TotalPages  int         `json:"totalPages"`
	CurrentPage int         `json:"currentPage"`
	Count       *int64      `json:"count,omitempty"`
}

// Message writes a terminal {"message": ...} response with the given status.
// Every error path uses this single shape.
func Message(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, gin.H{"message": message})
}

// BadRequest writes a 400 validation or ownership error.
func BadRequest(ctx *gin.Context, message string) {
	Message(ctx, http.StatusBadRequest, message)
}

// NotFound writes a terminal 404.
func NotFound(ctx *gin.Context, message string) {
	Message(ctx, http.StatusNotFound, message)
}

// InternalError logs the underlying error and writes a 500.
func InternalError(ctx *gin.Context, err error) {
	if Sugar != nil {
		Sugar.Errorw("request failed", "path", ctx.FullPath(), "err", err)
	}
	Message(ctx, http.StatusInternalServerError, err.Error())
}
