// Package web contiene las páginas HTML públicas y privadas. Las
// plantillas son mínimas: el frontend real vive fuera de este servicio.
package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/marketlink/marketlink-api/internal/session"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates devuelve las plantillas de la aplicación, listas para
// registrar en el router con SetHTMLTemplate.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/*.html"))
}

// Home renderiza la página de inicio pública.
func Home(c *gin.Context) {
	render(c, "home.html", gin.H{})
}

// Planes renderiza la página pública de planes.
func Planes(c *gin.Context) {
	render(c, "planes.html", gin.H{})
}

// Dashboard renderiza el panel privado con los datos de la sesión.
func Dashboard(c *gin.Context) {
	s := sessions.Default(c)
	render(c, "dashboard.html", gin.H{
		"Email":   sessionString(s, session.KeyEmail, "demo@marketlink.com"),
		"Company": sessionString(s, session.KeyCompany, "MarketLink"),
	})
}

// DashboardPlanes renderiza la vista privada de planes.
func DashboardPlanes(c *gin.Context) {
	render(c, "dashboard-planes.html", gin.H{})
}

// Soporte renderiza la página de soporte.
func Soporte(c *gin.Context) {
	render(c, "soporte.html", gin.H{})
}

// Profile renderiza el perfil de la cuenta.
func Profile(c *gin.Context) {
	s := sessions.Default(c)
	render(c, "profile.html", gin.H{
		"Email":   sessionString(s, session.KeyEmail, "demo@ejemplo.com"),
		"Company": sessionString(s, session.KeyCompany, "Empresa Demo"),
	})
}

func render(c *gin.Context, name string, data gin.H) {
	data["Flashes"] = session.TakeFlashes(sessions.Default(c))
	c.HTML(http.StatusOK, name, data)
}

// sessionString lee un valor de sesión con un valor por defecto
// defensivo; con la sesión validada por el middleware no debería faltar.
func sessionString(s sessions.Session, key, fallback string) string {
	if v, ok := s.Get(key).(string); ok && v != "" {
		return v
	}
	return fallback
}
