package routes

import (
	"github.com/gofiber/fiber/v2"
)

// GetStatus indica que la aplicación está viva, sin tocar el API remoto
func GetStatus(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"active": true,
	})
}
