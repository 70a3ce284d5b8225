package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"rent-a-car-web/models"

	simplejson "github.com/bitly/go-simplejson"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Client habla con el API remoto de reservas. Una llamada por operación, sin
// reintentos, sin caché y sin lotes: tras cada mutación la vista vuelve a
// pedir la lista completa.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{},
	}
}

// do ejecuta una petición HTTP contra el API y deserializa la respuesta en out.
// Un fallo de transporte devuelve el error envuelto; una respuesta no exitosa
// devuelve un *StatusError con el detalle que traiga el cuerpo.
func (c *Client) do(method, path string, query url.Values, body interface{}, out interface{}) error {
	requestID := uuid.NewString()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error al serializar el cuerpo: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	endpoint := c.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequest(method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("error al crear la petición: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := logrus.WithFields(logrus.Fields{
		"request_id": requestID,
		"method":     method,
		"path":       path,
	})

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		log.WithError(err).Error("Fallo de transporte contra el API")
		return fmt.Errorf("error al llamar al API: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.WithError(err).Error("Error al leer la respuesta del API")
		return fmt.Errorf("error al leer la respuesta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{Code: resp.StatusCode, Message: errorMessage(data)}
		log.WithField("status", resp.StatusCode).Warn("Respuesta no exitosa del API")
		return statusErr
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			log.WithError(err).Error("Error al deserializar la respuesta del API")
			return fmt.Errorf("error al deserializar la respuesta: %w", err)
		}
	}

	log.WithField("status", resp.StatusCode).Debug("Petición al API completada")
	return nil
}

// errorMessage extrae el detalle de error del cuerpo si lo hay. El API no
// documenta el formato, así que se busca de forma tolerante.
func errorMessage(data []byte) string {
	js, err := simplejson.NewJson(data)
	if err != nil {
		return ""
	}
	if msg, err := js.Get("error").String(); err == nil {
		return msg
	}
	if msg, err := js.Get("message").String(); err == nil {
		return msg
	}
	return ""
}

// Login inicia sesión con email y contraseña
func (c *Client) Login(email, password string) (*models.User, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}
	var user models.User
	if err := c.do(http.MethodPost, "/users/login", nil, body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Register registra un nuevo usuario y devuelve su sesión
func (c *Client) Register(email, name, password, dni string) (*models.User, error) {
	body := map[string]string{
		"email":    email,
		"name":     name,
		"password": password,
		"dni":      dni,
	}
	var user models.User
	if err := c.do(http.MethodPost, "/users", nil, body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Bookings obtiene las reservas del usuario indicado
func (c *Client) Bookings(userID int) ([]models.Booking, error) {
	query := url.Values{}
	query.Set("user_id", strconv.Itoa(userID))
	var bookings []models.Booking
	if err := c.do(http.MethodGet, "/bookings", query, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// AdminBookings obtiene todas las reservas (solo administradores)
func (c *Client) AdminBookings() ([]models.Booking, error) {
	var bookings []models.Booking
	if err := c.do(http.MethodGet, "/bookings/admin", nil, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

type bookingActionRequest struct {
	ID     int `json:"id"`
	UserID int `json:"user_id"`
}

// CancelBooking solicita la transición reservado -> cancelado
func (c *Client) CancelBooking(userID, bookingID int) error {
	return c.do(http.MethodPatch, "/bookings/cancel", nil, bookingActionRequest{ID: bookingID, UserID: userID}, nil)
}

// ConfirmBooking solicita la transición reservado -> confirmado
func (c *Client) ConfirmBooking(userID, bookingID int) error {
	return c.do(http.MethodPatch, "/bookings/confirm", nil, bookingActionRequest{ID: bookingID, UserID: userID}, nil)
}

// FinishBooking solicita la transición confirmado -> finalizado
func (c *Client) FinishBooking(userID, bookingID int) error {
	return c.do(http.MethodPatch, "/bookings/finish", nil, bookingActionRequest{ID: bookingID, UserID: userID}, nil)
}

// SendMessage añade un mensaje al hilo de la reserva
func (c *Client) SendMessage(userID, bookingID int, message string) error {
	body := map[string]interface{}{
		"id":      bookingID,
		"user_id": userID,
		"message": message,
	}
	return c.do(http.MethodPost, "/bookings/message", nil, body, nil)
}

// SendFeedback adjunta el feedback a una reserva finalizada
func (c *Client) SendFeedback(userID, bookingID int, feedback string) error {
	body := map[string]interface{}{
		"id":       bookingID,
		"user_id":  userID,
		"feedback": feedback,
	}
	return c.do(http.MethodPatch, "/bookings/feedback", nil, body, nil)
}

// AvailableVehicles consulta los vehículos disponibles en la ventana indicada.
// Las fechas van ya normalizadas y formateadas para el API.
func (c *Client) AvailableVehicles(from, to string) ([]models.Vehicle, error) {
	query := url.Values{}
	query.Set("from", from)
	query.Set("to", to)
	var vehicles []models.Vehicle
	if err := c.do(http.MethodGet, "/bookings/available-vehicles", query, nil, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// CreateBooking crea una reserva con la misma ventana y ubicaciones de la búsqueda
func (c *Client) CreateBooking(userID, vehicleID int, startDate, endDate, pickUpLocation, dropOffLocation string) (*models.Booking, error) {
	body := map[string]interface{}{
		"user_id":           userID,
		"vehicle_id":        vehicleID,
		"start_date":        startDate,
		"end_date":          endDate,
		"pick_up_location":  pickUpLocation,
		"drop_off_location": dropOffLocation,
	}
	var booking models.Booking
	if err := c.do(http.MethodPost, "/bookings", nil, body, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}
