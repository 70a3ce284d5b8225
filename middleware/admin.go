package middleware

import (
	"rent-a-car-web/models"

	"github.com/gofiber/fiber/v2"
)

// IsAdmin protege las acciones reservadas a administradores (confirmar y
// finalizar reservas). Requiere LoadUser antes en la cadena.
func IsAdmin(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok || user.Type != models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Solo los administradores pueden realizar esta acción",
		})
	}

	return c.Next()
}
