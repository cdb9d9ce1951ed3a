package handlers

import (
	"short_video_service/internal/catalog/app"
	"short_video_service/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// VideoHandler 處理影片目錄相關的 HTTP 請求
type VideoHandler struct {
	Usecase app.CatalogUseCase
}

// NewVideoHandler 創建新的 VideoHandler
func NewVideoHandler(usecase app.CatalogUseCase) *VideoHandler {
	return &VideoHandler{
		Usecase: usecase,
	}
}

// ListVideos 列出或搜尋影片
// @Summary List videos, optionally filtered
// @Description Without query params returns the full catalog in seed order
// @Tags Videos
// @Produce json
// @Param q query string false "keyword matched against title or description"
// @Param category query string false "exact category, or All to disable the filter"
// @Success 200 {object} map[string]interface{} "videos in catalog order"
// @Router /api/videos [get]
func (h *VideoHandler) ListVideos(c *fiber.Ctx) error {
	keyword := c.Query("q")
	category := c.Query("category")

	videos := h.Usecase.Search(c.UserContext(), keyword, category)
	return c.JSON(fiber.Map{"videos": videos})
}

// GetCategories 返回目錄內的類別清單
// @Summary List catalog categories
// @Description Deduplicated categories in catalog order, prefixed with "All"
// @Tags Videos
// @Produce json
// @Success 200 {object} map[string]interface{} "category names"
// @Router /api/videos/categories [get]
func (h *VideoHandler) GetCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"categories": h.Usecase.Categories(c.UserContext())})
}

// GetVideo get video by id
// @Summary Get a single video
// @Tags Videos
// @Produce json
// @Param id path string true "video id"
// @Success 200 {object} map[string]interface{} "video record"
// @Failure 404 {object} map[string]string "unknown id"
// @Router /api/videos/{id} [get]
func (h *VideoHandler) GetVideo(c *fiber.Ctx) error {
	video, err := h.Usecase.GetVideo(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(statusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"video": video})
}

// GetRecommendations get recommendations
// @Summary Recommend up to 3 videos to watch next
// @Description Same-category videos first, then catalog-order fill
// @Tags Videos
// @Produce json
// @Param id path string true "video id"
// @Success 200 {object} map[string]interface{} "ordered recommendations"
// @Failure 404 {object} map[string]string "unknown id"
// @Router /api/videos/{id}/recommendations [get]
func (h *VideoHandler) GetRecommendations(c *fiber.Ctx) error {
	recommendations, err := h.Usecase.Recommend(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(statusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"recommendations": recommendations})
}

// Summarize 產生影片摘要
// @Summary Generate an AI-style summary for a video
// @Description Response completes after the simulated inference delay
// @Tags Videos
// @Produce json
// @Param id path string true "video id"
// @Success 200 {object} map[string]interface{} "summary with metadata"
// @Failure 404 {object} map[string]string "unknown id"
// @Router /api/videos/{id}/summarize [post]
func (h *VideoHandler) Summarize(c *fiber.Ctx) error {
	id := c.Params("id")
	result, err := h.Usecase.Summarize(c.UserContext(), id)
	if err != nil {
		return c.Status(statusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}

	logger.Log.Debug("summary generated", zap.String("video_id", id))
	return c.JSON(result)
}
