package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"rent-a-car-web/models"
)

func TestLoginSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/users/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
			return
		}
		if body["email"] != "ana@example.com" || body["password"] != "secret" {
			t.Errorf("unexpected body: %v", body)
		}
		json.NewEncoder(w).Encode(models.User{ID: 7, Email: body["email"], Name: "Ana", Type: models.RoleClient})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	user, err := client.Login("ana@example.com", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.ID != 7 || user.Type != models.RoleClient {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestLoginRejectedReturnsStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Usuario o contraseña incorrectos"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Login("ana@example.com", "wrong")
	if err == nil {
		t.Fatalf("expected error")
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *StatusError, got %T", err)
	}
	if statusErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", statusErr.Code)
	}
	if statusErr.Message != "Usuario o contraseña incorrectos" {
		t.Fatalf("expected error detail from body, got %q", statusErr.Message)
	}
}

func TestBookingsQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bookings" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("user_id") != "7" {
			t.Errorf("unexpected user_id: %s", r.URL.Query().Get("user_id"))
		}
		json.NewEncoder(w).Encode([]models.Booking{{ID: 1, Status: models.StatusReserved}})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	bookings, err := client.Bookings(7)
	if err != nil {
		t.Fatalf("Bookings: %v", err)
	}
	if len(bookings) != 1 || bookings[0].Status != models.StatusReserved {
		t.Fatalf("unexpected bookings: %+v", bookings)
	}
}

func TestAdminBookingsPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bookings/admin" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]models.Booking{})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.AdminBookings(); err != nil {
		t.Fatalf("AdminBookings: %v", err)
	}
}

func TestAvailableVehiclesQuery(t *testing.T) {
	from := "2024-06-01T09:00:00.000-03:00"
	to := "2024-06-03T23:59:00.000-03:00"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bookings/available-vehicles" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("from") != from {
			t.Errorf("unexpected from: %s", r.URL.Query().Get("from"))
		}
		if r.URL.Query().Get("to") != to {
			t.Errorf("unexpected to: %s", r.URL.Query().Get("to"))
		}
		json.NewEncoder(w).Encode([]models.Vehicle{{ID: 2, Brand: "Toyota"}})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	vehicles, err := client.AvailableVehicles(from, to)
	if err != nil {
		t.Fatalf("AvailableVehicles: %v", err)
	}
	if len(vehicles) != 1 || vehicles[0].Brand != "Toyota" {
		t.Fatalf("unexpected vehicles: %+v", vehicles)
	}
}

func TestCancelBookingRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/bookings/cancel" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]int
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
			return
		}
		if body["id"] != 3 || body["user_id"] != 7 {
			t.Errorf("unexpected body: %v", body)
		}
		json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if err := client.CancelBooking(7, 3); err != nil {
		t.Fatalf("CancelBooking: %v", err)
	}
}

func TestCreateBookingBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/bookings" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
			return
		}
		if body["user_id"].(float64) != 7 || body["vehicle_id"].(float64) != 2 {
			t.Errorf("unexpected ids: %v", body)
		}
		if body["pick_up_location"] != "Agency" || body["drop_off_location"] != "Agency" {
			t.Errorf("unexpected locations: %v", body)
		}
		if body["start_date"] != "2024-06-01T09:00:00.000-03:00" {
			t.Errorf("unexpected start_date: %v", body["start_date"])
		}
		json.NewEncoder(w).Encode(models.Booking{ID: 9, Status: models.StatusReserved})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	booking, err := client.CreateBooking(7, 2, "2024-06-01T09:00:00.000-03:00", "2024-06-03T23:59:00.000-03:00", "Agency", "Agency")
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if booking.ID != 9 {
		t.Fatalf("unexpected booking: %+v", booking)
	}
}

func TestSendMessageRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/bookings/message" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
			return
		}
		if body["message"] != "hola" {
			t.Errorf("unexpected message: %v", body)
		}
		json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if err := client.SendMessage(7, 3, "hola"); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
}

func TestTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL)
	_, err := client.Bookings(7)
	if err == nil {
		t.Fatalf("expected transport error")
	}

	// Un fallo de transporte no es una respuesta del API
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		t.Fatalf("expected plain error, got StatusError %v", statusErr)
	}
}
