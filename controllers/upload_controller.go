package controllers

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gopress/gopress/config"
	"github.com/gopress/gopress/models"
	"github.com/gopress/gopress/utils"
)

// maxUploadSize caps a single upload at 50MB.
const maxUploadSize = 50 * 1024 * 1024

// UploadController stores image uploads under static/uploads/<yyyy>/<mm>/<dd>/
// and records each file so the cleanup worker can expire it.
type UploadController struct {
	db *gorm.DB
}

// NewUploadController creates an UploadController over the given store handle.
func NewUploadController(db *gorm.DB) *UploadController {
	return &UploadController{db: db}
}

// Create accepts a multipart upload under the "file" field and returns its
// public URL. The stored name is a UUID so client filenames never reach disk.
func (u *UploadController) Create(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Message(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	file, header, err := ctx.Request.FormFile("file")
	if err != nil {
		utils.BadRequest(ctx, "no file uploaded")
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		utils.BadRequest(ctx, "file size exceeds 50MB")
		return
	}

	now := time.Now()
	baseDir := filepath.Join(".", "static", "uploads", now.Format("2006"), now.Format("01"), now.Format("02"))
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		utils.InternalError(ctx, err)
		return
	}

	name := uuid.NewString() + filepath.Ext(filepath.Base(header.Filename))
	dstPath := filepath.Join(baseDir, name)

	out, err := os.Create(dstPath)
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}
	defer out.Close()

	// Re-check the limit while copying; Content-Length can lie.
	written, err := io.Copy(out, &io.LimitedReader{R: file, N: maxUploadSize + 1})
	if err != nil || written > maxUploadSize {
		_ = out.Close()
		_ = os.Remove(dstPath)
		if written > maxUploadSize {
			utils.BadRequest(ctx, "file size exceeds 50MB")
			return
		}
		utils.InternalError(ctx, err)
		return
	}

	url := fmt.Sprintf("/static/uploads/%s/%s/%s/%s", now.Format("2006"), now.Format("01"), now.Format("02"), name)
	absPath, _ := filepath.Abs(dstPath)
	expireAt := now.Add(time.Duration(config.Get().UploadTTLMinutes) * time.Minute)

	record := models.UploadedFile{
		UserID:   userID,
		FilePath: absPath,
		URL:      url,
		Size:     written,
		ExpireAt: expireAt,
	}
	if err := u.db.WithContext(ctx.Request.Context()).Create(&record).Error; err != nil {
		_ = os.Remove(dstPath)
		utils.InternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, record)
}
