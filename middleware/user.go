package middleware

import (
	"rent-a-car-web/models"
	"rent-a-car-web/pkg"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// LoadUser comprueba que la sesión contiene un usuario completo con un rol
// conocido y lo deja en el contexto para el resto de handlers
func LoadUser(c *fiber.Ctx) error {
	token := c.Locals("jwt").(*jwt.Token)

	user, err := pkg.GetUserFromToken(token.Raw)
	if err != nil || user.ID == 0 {
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	if user.Type != models.RoleClient && user.Type != models.RoleAdmin {
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	c.Locals("user", user)
	return c.Next()
}
