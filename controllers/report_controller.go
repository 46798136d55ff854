package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gopress/gopress/models"
	"github.com/gopress/gopress/repository"
	"github.com/gopress/gopress/utils"
)

type reportRequest struct {
	TargetID uint   `json:"targetId" binding:"required"`
	Reason   string `json:"reason" binding:"required"`
}

// ReportController serves one of the three report tables. The tables only
// differ in which column names the reported entity, so one controller
// parameterized by the model and a row builder covers all of them.
type ReportController[T any] struct {
	reports repository.ReportRepository[T]
	build   func(targetID, userID uint, reason string) T
}

// NewReportPostController creates the controller behind /api/report-posts.
func NewReportPostController(db *gorm.DB) *ReportController[models.ReportPost] {
	return &ReportController[models.ReportPost]{
		reports: repository.NewReportPostRepository(db),
		build: func(targetID, userID uint, reason string) models.ReportPost {
			return models.ReportPost{PostID: targetID, UserID: userID, Reason: reason}
		},
	}
}

// NewReportCommentController creates the controller behind /api/report-comments.
func NewReportCommentController(db *gorm.DB) *ReportController[models.ReportComment] {
	return &ReportController[models.ReportComment]{
		reports: repository.NewReportCommentRepository(db),
		build: func(targetID, userID uint, reason string) models.ReportComment {
			return models.ReportComment{CommentID: targetID, UserID: userID, Reason: reason}
		},
	}
}

// NewReportChildCommentController creates the controller behind /api/report-child-comments.
func NewReportChildCommentController(db *gorm.DB) *ReportController[models.ReportChildComment] {
	return &ReportController[models.ReportChildComment]{
		reports: repository.NewReportChildCommentRepository(db),
		build: func(targetID, userID uint, reason string) models.ReportChildComment {
			return models.ReportChildComment{ChildCommentID: targetID, UserID: userID, Reason: reason}
		},
	}
}

// List returns every open report, newest first. Admin only.
func (r *ReportController[T]) List(ctx *gin.Context) {
	reports, err := r.reports.FindAll(ctx.Request.Context())
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}
	count := int64(len(reports))
	ctx.JSON(http.StatusOK, utils.ListResponse{Data: reports, TotalPages: 1, CurrentPage: 1, Count: &count})
}

// Read returns a single report by id. Admin only.
func (r *ReportController[T]) Read(ctx *gin.Context) {
	id, ok := paramUint(ctx, "id")
	if !ok {
		utils.BadRequest(ctx, "invalid report id")
		return
	}
	report, err := r.reports.FindByID(ctx.Request.Context(), id)
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}
	if report == nil {
		utils.NotFound(ctx, "No report found")
		return
	}
	ctx.JSON(http.StatusOK, report)
}

// Create files a report on behalf of the token user.
func (r *ReportController[T]) Create(ctx *gin.Context) {
	var req reportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, "targetId and reason are required")
		return
	}
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Message(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	report := r.build(req.TargetID, userID, req.Reason)
	if err := r.reports.Create(ctx.Request.Context(), &report); err != nil {
		utils.InternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, report)
}

// Remove dismisses a reviewed report. Admin only.
func (r *ReportController[T]) Remove(ctx *gin.Context) {
	id, ok := paramUint(ctx, "id")
	if !ok {
		utils.BadRequest(ctx, "invalid report id")
		return
	}
	if err := r.reports.Delete(ctx.Request.Context(), id); err != nil {
		utils.InternalError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
