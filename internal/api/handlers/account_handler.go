package handlers

import (
	"short_video_service/internal/account/app"
	"short_video_service/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AccountHandler 處理帳號相關的 HTTP 請求
type AccountHandler struct {
	Usecase app.AccountUseCase
}

// NewAccountHandler 創建新的 AccountHandler
func NewAccountHandler(usecase app.AccountUseCase) *AccountHandler {
	return &AccountHandler{
		Usecase: usecase,
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Signup 註冊新帳號
// @Summary Register a new account
// @Description Creates an account when the username is not taken
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body credentialsRequest true "username and password"
// @Success 201 {object} map[string]interface{} "created account without password"
// @Failure 400 {object} map[string]string "missing field or duplicate username"
// @Router /api/auth/signup [post]
func (h *AccountHandler) Signup(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Username and password are required"})
	}

	logger.Log.Debug("Signup request", zap.String("username", req.Username))

	account, err := h.Usecase.Register(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return c.Status(statusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}

	// Account 的 Password 不序列化，回應不含密碼欄位
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created successfully",
		"user":    account,
	})
}

// Login 帳號登入
// @Summary Log in with username and password
// @Description Both fields must match a stored account exactly
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body credentialsRequest true "username and password"
// @Success 200 {object} map[string]interface{} "account without password"
// @Failure 401 {object} map[string]string "credential mismatch"
// @Router /api/auth/login [post]
func (h *AccountHandler) Login(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	logger.Log.Debug("Login request", zap.String("username", req.Username))

	account, err := h.Usecase.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return c.Status(statusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    account,
	})
}
