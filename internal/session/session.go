// Package session define el almacén de sesiones firmadas en disco y los
// helpers para los datos que la aplicación guarda en la sesión.
package session

import (
	"encoding/gob"
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	gorilla "github.com/gorilla/sessions"
)

// CookieName es el nombre de la cookie de sesión. La cookie solo
// transporta el identificador firmado; los datos viven en disco.
const CookieName = "ml_session"

// Claves de los valores guardados en la sesión.
const (
	KeyUserID  = "user_id"
	KeyEmail   = "email"
	KeyCompany = "company"
)

// IdleLifetimeSeconds es la vida de una sesión permanente desde la
// última escritura.
const IdleLifetimeSeconds = 1800

type filesystemStore struct {
	*gorilla.FilesystemStore
}

// NewFilesystemStore crea un almacén de sesiones respaldado por archivos
// en path (vacío usa el directorio temporal del SO), firmado con secret.
func NewFilesystemStore(path, secret string) sessions.Store {
	fs := gorilla.NewFilesystemStore(path, []byte(secret))
	// Ajusta también la validez del códec de firmado, no solo la cookie.
	fs.MaxAge(IdleLifetimeSeconds)
	return &filesystemStore{fs}
}

func (s *filesystemStore) Options(options sessions.Options) {
	s.FilesystemStore.Options = options.ToGorillaOptions()
}

// DefaultOptions devuelve las opciones de la cookie de sesión. Todas
// las sesiones llevan la ventana de inactividad: el backend en disco
// interpreta MaxAge <= 0 como orden de borrar la sesión, así que una
// cookie de navegador pura no es expresable con él.
func DefaultOptions(secure bool) sessions.Options {
	return sessions.Options{
		Path:     "/",
		MaxAge:   IdleLifetimeSeconds,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// Flash es un mensaje de un solo uso mostrado en la siguiente página.
type Flash struct {
	Category string // error, success, warning, info
	Message  string
}

func init() {
	// Los valores de sesión se serializan con gob.
	gob.Register(Flash{})
}

// AddFlash encola un mensaje flash en la sesión. El llamador debe
// guardar la sesión después.
func AddFlash(s sessions.Session, category, message string) {
	s.AddFlash(Flash{Category: category, Message: message})
}

// TakeFlashes devuelve y consume los mensajes flash pendientes.
func TakeFlashes(s sessions.Session) []Flash {
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	// Flashes elimina los mensajes de la sesión; persiste la eliminación.
	if err := s.Save(); err != nil {
		log.Printf("session save failed: %v", err)
	}

	flashes := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			flashes = append(flashes, f)
		}
	}
	return flashes
}
