package main

import (
	"log"

	"github.com/sb-infra/sbinfra-backend/config"
	"github.com/sb-infra/sbinfra-backend/internal/bootstrap"
	"github.com/sb-infra/sbinfra-backend/internal/storage/jsonfile"
	"github.com/sb-infra/sbinfra-backend/internal/uploads"
	cronjob "github.com/sb-infra/sbinfra-backend/internal/uploads/cron"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	store := jsonfile.New(cfg.Storage.DataDir)
	uploadStore := uploads.NewStore(cfg.Storage.UploadsDir)

	router, projectService := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "sbinfra-backend",
		Version:     cfg.App.Version,
		AdminSecret: cfg.Admin.Secret,
		Store:       store,
		Uploads:     uploadStore,
	})

	cronjob.NewScheduler(uploadStore, projectService).Start()

	log.Printf(">> SB Infra backend running at http://localhost:%s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
