package routes

import (
	"fmt"

	"rent-a-car-web/models"
	"rent-a-car-web/pkg"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// fetchBookings recarga la lista completa de reservas desde el API. Es el
// único mecanismo de consistencia: tras cada mutación se vuelve a pedir todo.
func fetchBookings(user models.User) ([]models.Booking, error) {
	if user.Type == models.RoleAdmin {
		return API.AdminBookings()
	}
	return API.Bookings(user.ID)
}

// Dashboard muestra la tabla de reservas del usuario (o todas si es admin)
func Dashboard(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	bookings, err := fetchBookings(user)
	if err != nil {
		// Sin detalle para el usuario, la tabla simplemente sale vacía
		logrus.WithError(err).Warn("Error al obtener las reservas")
		bookings = nil
	}

	return c.Render("dashboard", fiber.Map{
		"User":       user,
		"Bookings":   bookings,
		"ShowSearch": user.Type == models.RoleClient,
	})
}

// BookingDetail muestra el detalle de una reserva: datos del vehículo,
// botones de transición según (rol, estado), mensajes y feedback.
// El API no expone la reserva suelta, así que se recarga la lista y se busca.
func BookingDetail(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	}

	bookings, err := fetchBookings(user)
	if err != nil {
		logrus.WithError(err).Warn("Error al obtener las reservas")
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	}

	booking, found := findBooking(bookings, id)
	if !found {
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	}

	return c.Render("booking", fiber.Map{
		"User":        user,
		"Booking":     booking,
		"CanCancel":   pkg.CanDo(user.Type, booking.Status, pkg.ActionCancel),
		"CanConfirm":  pkg.CanDo(user.Type, booking.Status, pkg.ActionConfirm),
		"CanFinish":   pkg.CanDo(user.Type, booking.Status, pkg.ActionFinish),
		"CanMessage":  pkg.CanSendMessage(user.Type),
		"CanFeedback": pkg.CanSendFeedback(user.Type, booking),
	})
}

// CancelBooking solicita reservado -> cancelado y recarga el detalle
func CancelBooking(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	}

	// Solo el cliente dueño puede cancelar, el admin usa confirmar/finalizar
	if user.Type != models.RoleClient {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Solo el cliente puede cancelar su reserva",
		})
	}

	if err := API.CancelBooking(user.ID, id); err != nil {
		logrus.WithError(err).Warn("Error al cancelar la reserva")
	}

	return redirectToBooking(c, id)
}

// ConfirmBooking solicita reservado -> confirmado (solo admin)
func ConfirmBooking(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	}

	if err := API.ConfirmBooking(user.ID, id); err != nil {
		logrus.WithError(err).Warn("Error al confirmar la reserva")
	}

	return redirectToBooking(c, id)
}

// FinishBooking solicita confirmado -> finalizado (solo admin)
func FinishBooking(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	}

	if err := API.FinishBooking(user.ID, id); err != nil {
		logrus.WithError(err).Warn("Error al finalizar la reserva")
	}

	return redirectToBooking(c, id)
}

// SendMessage añade un mensaje al hilo de la reserva (solo clientes)
func SendMessage(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	}

	message := c.FormValue("message")
	if message == "" || !pkg.CanSendMessage(user.Type) {
		return redirectToBooking(c, id)
	}

	if err := API.SendMessage(user.ID, id, message); err != nil {
		logrus.WithError(err).Warn("Error al enviar el mensaje")
	}

	return redirectToBooking(c, id)
}

// SendFeedback adjunta el feedback a una reserva finalizada sin feedback previo
func SendFeedback(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	}

	feedback := c.FormValue("feedback")
	if feedback == "" {
		return redirectToBooking(c, id)
	}

	// La invariante de feedback se comprueba contra el estado recargado
	bookings, err := fetchBookings(user)
	if err != nil {
		logrus.WithError(err).Warn("Error al obtener las reservas")
		return redirectToBooking(c, id)
	}
	booking, found := findBooking(bookings, id)
	if !found || !pkg.CanSendFeedback(user.Type, booking) {
		return redirectToBooking(c, id)
	}

	if err := API.SendFeedback(user.ID, id, feedback); err != nil {
		logrus.WithError(err).Warn("Error al enviar el feedback")
	}

	return redirectToBooking(c, id)
}

func findBooking(bookings []models.Booking, id int) (models.Booking, bool) {
	for _, b := range bookings {
		if b.ID == id {
			return b, true
		}
	}
	return models.Booking{}, false
}

// redirectToBooking vuelve al detalle, cuyo GET recarga la lista completa
func redirectToBooking(c *fiber.Ctx, id int) error {
	return c.Redirect(fmt.Sprintf("/dashboard/bookings/%d", id), fiber.StatusSeeOther)
}
