package routes

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"rent-a-car-web/api"
	"rent-a-car-web/models"
	"rent-a-car-web/pkg"
	"rent-a-car-web/views"

	"github.com/gofiber/fiber/v2"
)

func newTestApp(remote *httptest.Server) *fiber.App {
	app := fiber.New(fiber.Config{
		Views: views.NewEngine(),
	})
	Setup(app, api.NewClient(remote.URL))
	return app
}

func sessionCookie(t *testing.T, user models.User) *http.Cookie {
	t.Helper()
	token, err := pkg.GenerateSessionToken(user)
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}
	return &http.Cookie{Name: pkg.SessionCookie, Value: token}
}

func postForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(data)
}

func findCookie(resp *http.Response, name string) *http.Cookie {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}
