package routes

import (
	"strconv"

	"rent-a-car-web/config"
	"rent-a-car-web/models"
	"rent-a-car-web/pkg"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type searchForm struct {
	PickUpDate      string
	DropOffDate     string
	PickUpLocation  string
	DropOffLocation string
	From            string // fecha normalizada y formateada para el API
	To              string
}

// parseSearchForm normaliza la ventana de búsqueda: recogida a las 09:00 y
// devolución a las 23:59 locales, ubicaciones con valor por defecto si vienen vacías
func parseSearchForm(c *fiber.Ctx) (searchForm, error) {
	form := searchForm{
		PickUpDate:      c.FormValue("pick_up_date"),
		DropOffDate:     c.FormValue("drop_off_date"),
		PickUpLocation:  c.FormValue("pick_up_location"),
		DropOffLocation: c.FormValue("drop_off_location"),
	}

	defaultLocation := config.LoadConfig().DefaultLocation
	if form.PickUpLocation == "" {
		form.PickUpLocation = defaultLocation
	}
	if form.DropOffLocation == "" {
		form.DropOffLocation = defaultLocation
	}

	pickUp, err := pkg.ParseInputDate(form.PickUpDate)
	if err != nil {
		return form, err
	}
	dropOff, err := pkg.ParseInputDate(form.DropOffDate)
	if err != nil {
		return form, err
	}

	form.From = pkg.FormatAPITime(pkg.NormalizePickUp(pickUp))
	form.To = pkg.FormatAPITime(pkg.NormalizeDropOff(dropOff))
	return form, nil
}

// SearchPage muestra el formulario de búsqueda de vehículos disponibles
func SearchPage(c *fiber.Ctx) error {
	defaultLocation := config.LoadConfig().DefaultLocation
	return c.Render("search", fiber.Map{
		"PickUpDate":      "",
		"DropOffDate":     "",
		"PickUpLocation":  defaultLocation,
		"DropOffLocation": defaultLocation,
	})
}

// Search consulta los vehículos disponibles en la ventana normalizada
func Search(c *fiber.Ctx) error {
	form, err := parseSearchForm(c)
	if err != nil {
		return c.Render("search", fiber.Map{
			"Error":           "No results! :c",
			"PickUpDate":      form.PickUpDate,
			"DropOffDate":     form.DropOffDate,
			"PickUpLocation":  form.PickUpLocation,
			"DropOffLocation": form.DropOffLocation,
		})
	}

	vehicles, err := API.AvailableVehicles(form.From, form.To)
	if err != nil || len(vehicles) == 0 {
		if err != nil {
			logrus.WithError(err).Warn("Error al buscar vehículos disponibles")
		}
		return c.Render("search", fiber.Map{
			"Error":           "No results! :c",
			"PickUpDate":      form.PickUpDate,
			"DropOffDate":     form.DropOffDate,
			"PickUpLocation":  form.PickUpLocation,
			"DropOffLocation": form.DropOffLocation,
		})
	}

	return c.Render("search", fiber.Map{
		"Vehicles":        vehicles,
		"PickUpDate":      form.PickUpDate,
		"DropOffDate":     form.DropOffDate,
		"PickUpLocation":  form.PickUpLocation,
		"DropOffLocation": form.DropOffLocation,
	})
}

// BookVehicle crea la reserva con la misma ventana y ubicaciones de la búsqueda
func BookVehicle(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	vehicleID, err := strconv.Atoi(c.FormValue("vehicle_id"))
	if err != nil {
		return c.Redirect("/search", fiber.StatusSeeOther)
	}

	form, err := parseSearchForm(c)
	if err != nil {
		return c.Redirect("/search", fiber.StatusSeeOther)
	}

	_, err = API.CreateBooking(user.ID, vehicleID, form.From, form.To, form.PickUpLocation, form.DropOffLocation)
	if err != nil {
		// Como en la búsqueda, el fallo no muestra detalle, solo se queda donde está
		logrus.WithError(err).Warn("Error al crear la reserva")
		return c.Redirect("/search", fiber.StatusSeeOther)
	}

	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}
