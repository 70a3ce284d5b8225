package views

import (
	"embed"
	"net/http"

	"rent-a-car-web/models"
	"rent-a-car-web/pkg"

	"github.com/gofiber/template/html/v2"
)

//go:embed *.html
var files embed.FS

// NewEngine crea el motor de plantillas embebidas de la aplicación
func NewEngine() *html.Engine {
	engine := html.NewFileSystem(http.FS(files), ".html")
	engine.AddFunc("formatDate", pkg.FormatDisplayTime)
	engine.AddFunc("statusColor", models.StatusColor)
	return engine
}
