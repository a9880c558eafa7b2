package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/marketlink/marketlink-api/internal/session"
)

func newPagesRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.SetHTMLTemplate(Templates())

	store := session.NewFilesystemStore(t.TempDir(), "clave-de-prueba")
	store.Options(session.DefaultOptions(false))
	router.Use(sessions.Sessions(session.CookieName, store))

	router.GET("/", Home)
	router.GET("/planes", Planes)
	router.GET("/dashboard", Dashboard)
	router.GET("/profile", Profile)
	return router
}

func TestPublicPages(t *testing.T) {
	router := newPagesRouter(t)

	for _, path := range []string{"/", "/planes"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("%s: unexpected status: %d", path, rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
			t.Errorf("%s: unexpected content type: %s", path, ct)
		}
	}
}

func TestDashboardFallbackValues(t *testing.T) {
	// Sin valores en la sesión se muestran los datos de demostración.
	router := newPagesRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "demo@marketlink.com") || !strings.Contains(body, "MarketLink") {
		t.Errorf("expected fallback values, got: %s", body)
	}
}

func TestProfileFallbackValues(t *testing.T) {
	router := newPagesRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/profile", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "demo@ejemplo.com") || !strings.Contains(body, "Empresa Demo") {
		t.Errorf("expected fallback values, got: %s", body)
	}
}
