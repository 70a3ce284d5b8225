package routes

import (
	"rent-a-car-web/api"
	"rent-a-car-web/middleware"

	"github.com/gofiber/fiber/v2"
)

// API es el gateway hacia el API remoto de reservas, se inyecta en Setup
var API *api.Client

// Setup registra todas las rutas de la aplicación
func Setup(app *fiber.App, client *api.Client) {
	API = client

	/* -----------------------------------------------------------------
	|                                                                   |
	|                              AUTH                                 |
	|                                                                   |
	------------------------------------------------------------------- */
	app.Get("/", LoginPage)
	app.Post("/login", Login)
	app.Get("/register", RegisterPage)
	app.Post("/register", Register)
	app.Get("/logout", Logout)

	// Status
	app.Get("/status", GetStatus)

	/* -----------------------------------------------------------------
	|                                                                   |
	|                            DASHBOARD                              |
	|                                                                   |
	------------------------------------------------------------------- */
	dashboard := app.Group("/dashboard")
	dashboard.Use(middleware.Protected)
	dashboard.Use(middleware.LoadUser)

	dashboard.Get("/", Dashboard)
	dashboard.Get("/bookings/:id", BookingDetail)
	// Transiciones del ciclo de vida
	dashboard.Post("/bookings/:id/cancel", CancelBooking)
	dashboard.Post("/bookings/:id/confirm", middleware.IsAdmin, ConfirmBooking) // ADMIN
	dashboard.Post("/bookings/:id/finish", middleware.IsAdmin, FinishBooking)   // ADMIN
	// Mensajes y feedback
	dashboard.Post("/bookings/:id/message", SendMessage)
	dashboard.Post("/bookings/:id/feedback", SendFeedback)

	/* -----------------------------------------------------------------
	|                                                                   |
	|                             SEARCH                                |
	|                                                                   |
	------------------------------------------------------------------- */
	search := app.Group("/search")
	search.Use(middleware.Protected)
	search.Use(middleware.LoadUser)

	search.Get("/", SearchPage)
	search.Post("/", Search)
	search.Post("/book", BookVehicle)
}
