package main

import (
	"context"
	"time"

	"github.com/gopress/gopress/config"
	"github.com/gopress/gopress/models"
	"github.com/gopress/gopress/routes"
	"github.com/gopress/gopress/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(
		&models.User{},
		&models.PostCategory{},
		&models.Post{},
		&models.Comment{},
		&models.ChildComment{},
		&models.LikePost{},
		&models.ReportPost{},
		&models.ReportComment{},
		&models.ReportChildComment{},
		&models.PageView{},
		&models.UploadedFile{},
	)
	defer config.CloseDatabase()

	r := routes.SetupRouter(db)

	// Background cleanup for expired uploads (best-effort); stops with the server.
	cleanerCtx, stopCleaner := context.WithCancel(context.Background())
	defer stopCleaner()
	utils.StartUploadCleaner(cleanerCtx, db, 5*time.Minute)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
