package middleware

import (
	"rent-a-car-web/config"
	"rent-a-car-web/pkg"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// Protected exige una cookie de sesión válida. Sin ella se vuelve al login.
func Protected(c *fiber.Ctx) error {
	return jwtware.New(jwtware.Config{
		SigningKey:  jwtware.SigningKey{Key: []byte(config.LoadConfig().JwtSecret)},
		ContextKey:  "jwt",
		TokenLookup: "cookie:" + pkg.SessionCookie,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Redirect("/", fiber.StatusSeeOther)
		},
	})(c)
}
