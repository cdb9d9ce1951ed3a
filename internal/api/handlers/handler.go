package handlers

import (
	"fmt"
	"strconv"

	errprocess "short_video_service/pkg/err"
	"short_video_service/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// statusOf 服務錯誤類別對應 HTTP 狀態碼
// 註冊失敗（含重複帳號）依契約回 400
func statusOf(err error) int {
	kind, ok := errprocess.KindOf(err)
	if !ok {
		return fiber.StatusInternalServerError
	}
	switch kind {
	case errprocess.KindValidation, errprocess.KindConflict:
		return fiber.StatusBadRequest
	case errprocess.KindAuth:
		return fiber.StatusUnauthorized
	case errprocess.KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// HealthCheck check api connect start
// @Summary Check catalog service status
// @Description Returns a simple confirmation message
// @Tags Shared
// @Produce json
// @Success 200 {object} map[string]string "service status"
// @Router /api/health [get]
func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "OK",
		"message": "Server is running",
	})
}

// DebugLogFlag toggle debug log flag
// @Summary Toggle Debug Log Flag
// @Description Enable or disable debug logging
// @Tags Shared
// @Param status query bool true "Debug status"
// @Success 200 {string} string "debug mode updated"
// @Failure 400 {string} string "Invalid status value"
// @Router /api/debug [post]
func DebugLogFlag(c *fiber.Ctx) error {
	statusStr := c.Query("status")
	logger.Log.Info("debug", zap.String("status", statusStr))
	status, err := strconv.ParseBool(statusStr)
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	logger.Log.SetDebugMode(status)
	return c.SendString(fmt.Sprintf("debug mode is : %t", status))
}
