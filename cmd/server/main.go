package main

import (
	"BrainDump/internal/auth"
	"BrainDump/internal/config"
	"BrainDump/internal/handlers"
	"BrainDump/internal/middleware"
	"BrainDump/internal/repo"
	"BrainDump/internal/service"
	"net/http"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
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
	contentRepo := repo.NewContentRepository(gormDB)
	linkRepo := repo.NewLinkRepository(gormDB)

	userService := service.NewUserService(userRepo)
	contentService := service.NewContentService(contentRepo, sugar)
	shareService := service.NewShareService(linkRepo, userRepo, contentRepo, sugar)

	tokens := auth.NewTokenService(cfg.AuthSecret)

	h := handlers.NewHandler(userService, contentService, shareService, tokens, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"CORSOrigin", cfg.CORSOrigin,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
