package auth

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/marketlink/marketlink-api/internal/config"
	"github.com/marketlink/marketlink-api/internal/session"
)

// Identificador de cuenta ficticio usado por el modo diseño.
const demoUserID = "demo_mongo_id"

const loginRequiredMessage = "Primero debes iniciar sesión."

// Manager agrupa los handlers de autenticación y sus dependencias.
type Manager struct {
	cfg  *config.Config
	repo Repository
}

// NewManager crea el manager de autenticación.
func NewManager(cfg *config.Config, repo Repository) *Manager {
	return &Manager{cfg: cfg, repo: repo}
}

// RegisterPage renderiza el formulario de registro.
func (m *Manager) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{
		"Flashes": session.TakeFlashes(sessions.Default(c)),
	})
}

// Register procesa el alta de una cuenta de empresa.
func (m *Manager) Register(c *gin.Context) {
	company := strings.TrimSpace(c.PostForm("company"))
	email := strings.ToLower(strings.TrimSpace(c.PostForm("email")))
	password := c.PostForm("password")

	s := sessions.Default(c)

	if company == "" || email == "" || password == "" {
		m.flashRedirect(c, s, "error", "Completa todos los campos.", "/register")
		return
	}

	if m.cfg.DesignMode {
		s.Set(session.KeyUserID, demoUserID)
		s.Set(session.KeyEmail, email)
		s.Set(session.KeyCompany, company)
		session.AddFlash(s, "success", "✅ (MongoDB simulado) Cuenta creada con éxito.")
		m.saveAndRedirect(c, s, "/dashboard")
		return
	}

	ctx := c.Request.Context()

	_, err := m.repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		m.flashRedirect(c, s, "error", "Ese correo ya está registrado.", "/register")
		return
	case !errors.Is(err, ErrNotFound):
		log.Printf("register: lookup failed: %v", err)
		m.flashRedirect(c, s, "error", "Error al crear cuenta. Intenta de nuevo.", "/register")
		return
	}

	hash, err := HashPassword(password)
	if err != nil {
		log.Printf("register: hash failed: %v", err)
		m.flashRedirect(c, s, "error", "Error al crear cuenta. Intenta de nuevo.", "/register")
		return
	}

	account := &Account{
		Company:      company,
		Email:        email,
		PasswordHash: hash,
	}
	if err := m.repo.Insert(ctx, account); err != nil {
		log.Printf("register: insert failed: %v", err)
		m.flashRedirect(c, s, "error", "Error al crear cuenta. Intenta de nuevo.", "/register")
		return
	}

	m.flashRedirect(c, s, "success", "✅ Cuenta creada con éxito. Ahora puedes iniciar sesión.", "/login")
}

// LoginPage renderiza el formulario de inicio de sesión.
func (m *Manager) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Flashes": session.TakeFlashes(sessions.Default(c)),
	})
}

// Login procesa el inicio de sesión.
func (m *Manager) Login(c *gin.Context) {
	email := strings.ToLower(strings.TrimSpace(c.PostForm("email")))
	password := c.PostForm("password")

	s := sessions.Default(c)

	if m.cfg.DesignMode {
		if email == "" || password == "" {
			m.flashRedirect(c, s, "error", "Completa todos los campos.", "/login")
			return
		}
		s.Set(session.KeyUserID, demoUserID)
		s.Set(session.KeyEmail, email)
		s.Set(session.KeyCompany, demoCompany(email))
		session.AddFlash(s, "success", "✅ (MongoDB simulado) Inicio de sesión exitoso.")
		m.saveAndRedirect(c, s, "/dashboard")
		return
	}

	account, err := m.repo.FindByEmail(c.Request.Context(), email)
	switch {
	case errors.Is(err, ErrNotFound):
		// Mismo mensaje que una contraseña incorrecta para no revelar
		// qué correos existen.
		m.flashRedirect(c, s, "error", "Correo o contraseña incorrectos.", "/login")
		return
	case err != nil:
		log.Printf("login: lookup failed: %v", err)
		m.flashRedirect(c, s, "error", "Error al iniciar sesión. Intenta de nuevo.", "/login")
		return
	}

	if !CheckPassword(password, account.PasswordHash) {
		m.flashRedirect(c, s, "error", "Correo o contraseña incorrectos.", "/login")
		return
	}

	s.Set(session.KeyUserID, account.ID.Hex())
	s.Set(session.KeyEmail, account.Email)
	s.Set(session.KeyCompany, account.Company)
	session.AddFlash(s, "success", "✅ Inicio de sesión exitoso.")
	m.saveAndRedirect(c, s, "/dashboard")
}

// Logout cierra la sesión. Es idempotente.
func (m *Manager) Logout(c *gin.Context) {
	s := sessions.Default(c)
	s.Clear()
	session.AddFlash(s, "info", "✅ Sesión cerrada.")
	m.saveAndRedirect(c, s, "/")
}

// RequireLogin devuelve el middleware que protege las páginas privadas:
// sin sesión redirige a /login con un aviso.
func (m *Manager) RequireLogin() gin.HandlerFunc {
	return m.requireLogin(loginRequiredMessage)
}

// RequireLoginMessage es RequireLogin con un aviso personalizado.
func (m *Manager) RequireLoginMessage(message string) gin.HandlerFunc {
	return m.requireLogin(message)
}

func (m *Manager) requireLogin(message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := sessions.Default(c)
		userID, ok := s.Get(session.KeyUserID).(string)
		if !ok || userID == "" {
			session.AddFlash(s, "warning", message)
			if err := s.Save(); err != nil {
				log.Printf("session save failed: %v", err)
			}
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		// Renueva la ventana de inactividad en cada página protegida.
		s.Set(session.KeyUserID, userID)
		if err := s.Save(); err != nil {
			log.Printf("session save failed: %v", err)
		}
		c.Next()
	}
}

func (m *Manager) flashRedirect(c *gin.Context, s sessions.Session, category, message, location string) {
	session.AddFlash(s, category, message)
	m.saveAndRedirect(c, s, location)
}

func (m *Manager) saveAndRedirect(c *gin.Context, s sessions.Session, location string) {
	if err := s.Save(); err != nil {
		log.Printf("session save failed: %v", err)
	}
	c.Redirect(http.StatusFound, location)
}

// demoCompany deriva un nombre de empresa de muestra a partir del correo.
func demoCompany(email string) string {
	local, _, _ := strings.Cut(email, "@")
	if local == "" {
		return "MarketLink"
	}
	return strings.ToUpper(local[:1]) + local[1:]
}
