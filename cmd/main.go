package main

import (
	"rent-a-car-web/api"
	"rent-a-car-web/config"
	"rent-a-car-web/routes"
	"rent-a-car-web/views"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.LoadConfig()

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	// Sin la URL del API de reservas la aplicación no puede hacer nada
	if cfg.ApiBaseURL == "" {
		logrus.Fatal("API base URL not set")
	}

	app := fiber.New(fiber.Config{
		Views: views.NewEngine(),
	})

	client := api.NewClient(cfg.ApiBaseURL)
	routes.Setup(app, client)

	logrus.Infof("Server is running on port %s (API: %s)", cfg.Port, cfg.ApiBaseURL)
	logrus.Fatal(app.Listen(":" + cfg.Port))
}
