package router

import (
	"short_video_service/internal/api/handlers"
	"short_video_service/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// RegisterRoutes 註冊目錄服務的路由
// @title Short Video Catalog Service API
// @version 1.0
// @description API documentation for Short Video Catalog Service
// @host localhost:5000
// @BasePath /
func RegisterRoutes(app *fiber.App, accountHandler *handlers.AccountHandler, videoHandler *handlers.VideoHandler) {
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Use(middlewares.RequestID())

	api := app.Group("/api")
	api.Get("/health", handlers.HealthCheck)
	api.Post("/debug", handlers.DebugLogFlag)

	authRoutes := api.Group("/auth")
	authRoutes.Post("/signup", accountHandler.Signup)
	authRoutes.Post("/login", accountHandler.Login)

	videoRoutes := api.Group("/videos")
	videoRoutes.Get("/", videoHandler.ListVideos)
	// categories 要先於 :id，避免被萬用參數吃掉
	videoRoutes.Get("/categories", videoHandler.GetCategories)
	videoRoutes.Get("/:id", videoHandler.GetVideo)
	videoRoutes.Get("/:id/recommendations", videoHandler.GetRecommendations)
	videoRoutes.Post("/:id/summarize", videoHandler.Summarize)
}
