package utils

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gopress/gopress/models"
)

func setupCleanerTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := db.AutoMigrate(&models.UploadedFile{}); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	return db
}

func countUploads(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.UploadedFile{}).Count(&count).Error)
	return count
}

func TestUploadCleanerRemovesExpiredFiles(t *testing.T) {
	db := setupCleanerTestDB(t)

	path := filepath.Join(t.TempDir(), "expired.bin")
	require.NoError(t, os.WriteFile(path, []byte("payload"), 0644))

	expired := models.UploadedFile{
		UserID:   1,
		FilePath: path,
		URL:      "/static/uploads/expired.bin",
		Size:     7,
		ExpireAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, db.Create(&expired).Error)

	fresh := models.UploadedFile{
		UserID:   1,
		FilePath: filepath.Join(t.TempDir(), "fresh.bin"),
		URL:      "/static/uploads/fresh.bin",
		ExpireAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, db.Create(&fresh).Error)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	StartUploadCleaner(ctx, db, 10*time.Millisecond)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) && countUploads(t, db) > 1 {
		time.Sleep(10 * time.Millisecond)
	}

	assert.EqualValues(t, 1, countUploads(t, db), "only the expired row should be removed")
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "expired file should be deleted from disk")

	var remaining models.UploadedFile
	require.NoError(t, db.First(&remaining).Error)
	assert.Equal(t, fresh.ID, remaining.ID)
}

func TestUploadCleanerStopsOnCancel(t *testing.T) {
	db := setupCleanerTestDB(t)

	ctx, cancel := context.WithCancel(context.Background())
	StartUploadCleaner(ctx, db, 10*time.Millisecond)
	cancel()
	// Let any round already in flight finish before seeding the row.
	time.Sleep(100 * time.Millisecond)

	expired := models.UploadedFile{
		UserID:   1,
		URL:      "/static/uploads/left-behind.bin",
		ExpireAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, db.Create(&expired).Error)

	time.Sleep(150 * time.Millisecond)
	assert.EqualValues(t, 1, countUploads(t, db), "a cancelled cleaner must not touch new rows")
}
