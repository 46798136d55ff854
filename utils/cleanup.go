package utils

import (
	"context"
	"os"
	"time"

	"gorm.io/gorm"

	"github.com/gopress/gopress/models"
)

// StartUploadCleaner launches a background goroutine that periodically
// deletes expired uploaded files until ctx is cancelled. Best-effort:
// failures are logged and the next round retries.
func StartUploadCleaner(ctx context.Context, db *gorm.DB, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			var items []models.UploadedFile
			if err := db.Where("expire_at <= ?", time.Now()).Limit(100).Find(&items).Error; err != nil {
				if Sugar != nil {
					Sugar.Warnf("upload cleaner query failed: %v", err)
				}
				continue
			}
			for _, it := range items {
				if it.FilePath != "" {
					_ = os.Remove(it.FilePath)
				}
				// Remove the row regardless of file deletion outcome
				if err := db.Delete(&models.UploadedFile{}, it.ID).Error; err != nil {
					if Sugar != nil {
						Sugar.Warnf("upload cleaner delete row failed: %v", err)
					}
				}
			}
		}
	}()
}
