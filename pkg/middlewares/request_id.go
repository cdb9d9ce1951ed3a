package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// HeaderRequestID response header carrying the request id
	HeaderRequestID = "X-Request-Id"

	// LocalRequestID get request id from c.Locals name
	LocalRequestID = "RequestID"
)

// RequestID 為每個請求標記一個 uuid，供日誌追蹤
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		c.Locals(LocalRequestID, id)
		c.Set(HeaderRequestID, id)
		return c.Next()
	}
}
