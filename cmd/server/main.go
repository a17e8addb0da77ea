package main

import (
	"net/http"

	"HeritagePartage/internal/config"
	"HeritagePartage/internal/handlers"
	"HeritagePartage/internal/middleware"
	"HeritagePartage/internal/repo"
	"HeritagePartage/internal/service"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	sugar := logger.Sugar()
	middleware.SetLogger(sugar)
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	itemRepo := repo.NewItemRepository(gormDB)
	photoRepo := repo.NewPhotoRepository(gormDB)
	commentRepo := repo.NewCommentRepository(gormDB)
	prefRepo := repo.NewPreferenceRepository(gormDB)

	photoMaxBytes := cfg.PhotoMaxSizeMB * 1024 * 1024
	userService := service.NewUserService(userRepo)
	itemService := service.NewItemService(itemRepo, photoRepo, prefRepo, userRepo, photoMaxBytes)
	commentService := service.NewCommentService(commentRepo, itemRepo, userRepo)
	preferenceService := service.NewPreferenceService(prefRepo, itemRepo, userRepo, commentRepo)

	h := handlers.NewHandler(userService, itemService, commentService, preferenceService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
		"PhotoMaxSizeMB", cfg.PhotoMaxSizeMB,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
