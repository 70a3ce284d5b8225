package models

import "strings"

type Message struct {
	ID        int    `json:"id"`
	CreatedAt string `json:"created_at"`
	BookingID int    `json:"booking_id"`
	Message   string `json:"message"`
}

type Booking struct {
	ID              int       `json:"id"`
	CreatedAt       string    `json:"created_at"`
	UpdatedAt       string    `json:"updated_at"`
	Status          string    `json:"status"`
	UserID          int       `json:"user_id"`
	Vehicle         Vehicle   `json:"vehicle"`
	Observations    string    `json:"observations"`
	Feedback        *string   `json:"feedback"`
	Rating          *float64  `json:"rating"`
	StartDate       string    `json:"start_date"`
	EndDate         string    `json:"end_date"`
	PickUpLocation  string    `json:"pick_up_location"`
	DropOffLocation string    `json:"drop_off_location"`
	HourlyFare      float64   `json:"hourly_fare"`
	TotalAmount     float64   `json:"total_amount"`
	Messages        []Message `json:"messages"`
}

// Estados del ciclo de vida de una reserva, el servidor es la autoridad
const (
	StatusReserved  = "reservado"
	StatusConfirmed = "confirmado"
	StatusFinished  = "finalizado"
	StatusCancelled = "cancelado"
)

// HasFeedback indica si la reserva ya tiene feedback adjunto
func (b Booking) HasFeedback() bool {
	return b.Feedback != nil && *b.Feedback != ""
}

// StatusColor devuelve la clase de color del badge según el estado
func StatusColor(status string) string {
	switch strings.ToLower(status) {
	case StatusReserved:
		return "bg-yellow-500"
	case StatusFinished:
		return "bg-green-500"
	case StatusCancelled:
		return "bg-red-500"
	case StatusConfirmed:
		return "bg-blue-500"
	default:
		return "bg-gray-500"
	}
}
