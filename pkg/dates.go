package pkg

import "time"

const (
	// Formato de fechas que espera el API, con milisegundos y offset numérico
	apiTimeLayout = "2006-01-02T15:04:05.000-07:00"
	// Formato con el que se muestran las fechas en las vistas
	displayTimeLayout = "02 Jan 2006 15:04"
	// Formato de los inputs de fecha de los formularios
	inputDateLayout = "2006-01-02"
)

// NormalizePickUp fija la recogida a las 09:00:00 locales del día indicado,
// sin importar la hora que trajera la fecha
func NormalizePickUp(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 9, 0, 0, 0, date.Location())
}

// NormalizeDropOff fija la devolución a las 23:59:00 locales del día indicado
func NormalizeDropOff(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 0, 0, date.Location())
}

// FormatAPITime formatea una fecha para las consultas y cuerpos del API
func FormatAPITime(t time.Time) string {
	return t.Format(apiTimeLayout)
}

// ParseInputDate interpreta la fecha de un formulario en la zona horaria local
func ParseInputDate(value string) (time.Time, error) {
	return time.ParseInLocation(inputDateLayout, value, time.Local)
}

// FormatDisplayTime formatea una fecha ISO del API para mostrarla en las
// vistas. Si no se puede interpretar se devuelve tal cual.
func FormatDisplayTime(value string) string {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return value
	}
	return t.Format(displayTimeLayout)
}
