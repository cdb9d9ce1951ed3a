package main

import (
	"fmt"
	"log"
	"os"

	accountapp "short_video_service/internal/account/app"
	accountrepo "short_video_service/internal/account/repository"
	"short_video_service/internal/api/handlers"
	"short_video_service/internal/api/router"
	catalogapp "short_video_service/internal/catalog/app"
	catalogrepo "short_video_service/internal/catalog/repository"
	"short_video_service/pkg/config"
	"short_video_service/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiber_log "github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
)

func main() {
	logger.Log = logger.Initialize(config.EnvConfig.CatalogService, config.EnvConfig.CatalogServiceLogPath)
	cfg := config.LoadConfig[config.Catalog](config.EnvConfig.CatalogService, config.EnvConfig.CatalogServiceYAMLPath)

	// 目錄在啟動時播種一次，之後唯讀
	videoRepo := catalogrepo.NewVideoRepo(catalogrepo.SeedVideos())
	summarizer := catalogapp.NewSummaryGenerator(cfg.SummaryDelay, cfg.AIModel)
	catalogUsecase := catalogapp.NewCatalogUseCase(videoRepo, summarizer)
	videoHandler := handlers.NewVideoHandler(catalogUsecase)

	accountRepo := accountrepo.NewAccountRepository()
	accountUsecase := accountapp.NewAccountUseCase(accountRepo)
	accountHandler := handlers.NewAccountHandler(accountUsecase)

	// 创建 Fiber 应用
	r := fiber.New()

	// 前端在另一個 origin，開 CORS
	r.Use(cors.New())

	// 添加日志中间件
	file, err := os.OpenFile(fmt.Sprintf("%s/access.log", config.EnvConfig.CatalogServiceLogPath), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer file.Close()

	r.Use(fiber_log.New(fiber_log.Config{
		Output: file,
	}))

	// 注册路由
	router.RegisterRoutes(r, accountHandler, videoHandler)

	port := cfg.Port
	if port == "" {
		port = config.EnvConfig.CatalogServicePort
	}
	logger.Log.Info(fmt.Sprintf("CatalogService listening on : %s", port))

	if err := r.Listen(cfg.IP + ":" + port); err != nil {
		logger.Log.Fatal("Server failed to start", zap.Error(err))
	}
}
