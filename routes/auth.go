package routes

import (
	"net/http"
	"time"

	"rent-a-car-web/models"
	"rent-a-car-web/pkg"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// LoginPage muestra el formulario de inicio de sesión
func LoginPage(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{"Email": ""})
}

// Login valida las credenciales contra el API y crea la cookie de sesión
func Login(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	user, err := API.Login(email, password)
	if err != nil {
		// Credenciales incorrectas o fallo del API, el usuario solo ve el mensaje fijo
		logrus.WithError(err).Warn("Inicio de sesión rechazado")
		return c.Status(http.StatusUnauthorized).Render("login", fiber.Map{
			"Error": "Invalid email or password",
			"Email": email,
		})
	}

	if err := setSessionCookie(c, *user); err != nil {
		logrus.WithError(err).Error("Error al crear la sesión")
		return c.Status(http.StatusInternalServerError).Render("login", fiber.Map{
			"Error": "Invalid email or password",
			"Email": email,
		})
	}

	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}

// RegisterPage muestra el formulario de registro
func RegisterPage(c *fiber.Ctx) error {
	return c.Render("register", fiber.Map{"Email": "", "Name": "", "Dni": ""})
}

// Register registra un nuevo usuario contra el API. Si falla no se crea la
// sesión y se vuelve a mostrar el formulario.
func Register(c *fiber.Ctx) error {
	email := c.FormValue("email")
	name := c.FormValue("name")
	password := c.FormValue("password")
	dni := c.FormValue("dni")

	user, err := API.Register(email, name, password, dni)
	if err != nil {
		logrus.WithError(err).Warn("Registro rechazado")
		return c.Status(http.StatusBadRequest).Render("register", fiber.Map{
			"Error": "An error occurred while registering the user",
			"Email": email,
			"Name":  name,
			"Dni":   dni,
		})
	}

	if err := setSessionCookie(c, *user); err != nil {
		logrus.WithError(err).Error("Error al crear la sesión")
		return c.Status(http.StatusInternalServerError).Render("register", fiber.Map{
			"Error": "An error occurred while registering the user",
			"Email": email,
			"Name":  name,
			"Dni":   dni,
		})
	}

	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}

// Logout elimina la cookie de sesión y vuelve al login
func Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     pkg.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.Redirect("/", fiber.StatusSeeOther)
}

func setSessionCookie(c *fiber.Ctx, user models.User) error {
	token, err := pkg.GenerateSessionToken(user)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     pkg.SessionCookie,
		Value:    token,
		Expires:  time.Now().Add(pkg.TokenExpiration),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return nil
}
