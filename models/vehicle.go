package models

// Vehicle es un resultado de solo lectura del API, el cliente nunca lo modifica
type Vehicle struct {
	ID               int     `json:"id"`
	Status           string  `json:"status"`
	Brand            string  `json:"brand"`
	BrandModel       string  `json:"brand_model"`
	TransmissionType string  `json:"transmission_type"`
	Year             int     `json:"year"`
	Type             string  `json:"type"`
	HourlyFare       float64 `json:"hourly_fare"`
}
