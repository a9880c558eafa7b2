// Package main es el punto de entrada del servidor de la API.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/marketlink/marketlink-api/internal/auth"
	"github.com/marketlink/marketlink-api/internal/config"
	"github.com/marketlink/marketlink-api/internal/session"
	"github.com/marketlink/marketlink-api/internal/store"
	"github.com/marketlink/marketlink-api/internal/usuarios"
	"github.com/marketlink/marketlink-api/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Conexión al almacén: se abre al arrancar y se cierra al apagar.
	// En modo diseño no hay MongoDB; los repositorios viven en memoria.
	var st *store.Store
	var accountRepo auth.Repository
	var usuarioRepo usuarios.Repository
	if cfg.DesignMode {
		log.Print("DESIGN_MODE enabled: using in-memory repositories")
		accountRepo = auth.NewMemoryRepository()
		usuarioRepo = usuarios.NewMemoryRepository()
	} else {
		st, err = store.Open(ctx, cfg.MongoURI, cfg.DBName)
		if err != nil {
			log.Fatalf("Failed to open document store: %v", err)
		}
		accountRepo = auth.NewMongoRepository(st.Users())
		usuarioRepo = usuarios.NewMongoRepository(st.Usuarios())
	}

	router := gin.Default()
	router.SetHTMLTemplate(web.Templates())

	// Almacén de sesiones firmadas en disco; la cookie solo lleva el id.
	sessionStore := session.NewFilesystemStore(cfg.SessionDir, cfg.SessionSecret)
	sessionStore.Options(session.DefaultOptions(cfg.GinMode == gin.ReleaseMode))
	router.Use(sessions.Sessions(session.CookieName, sessionStore))

	router.Use(cors.New(corsConfig(cfg)))
	router.Use(requestID())

	setupRoutes(router, cfg, st, accountRepo, usuarioRepo)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Starting API server on %s (mode: %s)", srv.Addr, cfg.GinMode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Print("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
	if st != nil {
		if err := st.Close(shutdownCtx); err != nil {
			log.Printf("Store close: %v", err)
		}
	}
}

// corsConfig construye la política CORS. Con "*" se permite cualquier
// origen sin credenciales; con una lista explícita se permiten cookies.
func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	origins := strings.Split(cfg.CORSAllowedOrigins, ",")
	if len(origins) == 1 && origins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
		corsCfg.AllowCredentials = true
	}
	corsCfg.AllowHeaders = []string{
		"Origin",
		"Content-Type",
		"Accept",
		"Authorization",
	}
	return corsCfg
}

// requestID asigna un identificador a cada petición para correlacionar
// los registros del servidor con las respuestas.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-Id", id)
		c.Next()
	}
}

// handleHealth verifica la conectividad con el almacén.
func handleHealth(cfg *config.Config, st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.DesignMode {
			c.JSON(http.StatusOK, gin.H{
				"db":   "MongoDB (simulado)",
				"mode": "DESIGN_MODE",
			})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := st.Ping(ctx); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"db":    "down",
				"error": err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"db":     "ok",
			"engine": "MongoDB",
		})
	}
}

// handlePing responde la verificación básica de la API.
func handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "API MarketLink OK"})
}

// setupRoutes registra todas las rutas de la aplicación.
func setupRoutes(router *gin.Engine, cfg *config.Config, st *store.Store, accountRepo auth.Repository, usuarioRepo usuarios.Repository) {
	router.GET("/health", handleHealth(cfg, st))
	router.GET("/ping", handlePing)

	// Páginas públicas
	router.GET("/", web.Home)
	router.GET("/planes", web.Planes)

	// Autenticación de cuentas de empresa
	authManager := auth.NewManager(cfg, accountRepo)
	router.GET("/register", authManager.RegisterPage)
	router.POST("/register", authManager.Register)
	router.GET("/login", authManager.LoginPage)
	router.POST("/login", authManager.Login)
	router.GET("/logout", authManager.Logout)
	router.POST("/logout", authManager.Logout)

	// Páginas privadas
	router.GET("/dashboard", authManager.RequireLogin(), web.Dashboard)
	router.GET("/dashboard/planes", authManager.RequireLogin(), web.DashboardPlanes)
	router.GET("/profile", authManager.RequireLogin(), web.Profile)
	router.GET("/soporte",
		authManager.RequireLoginMessage("Inicia sesión para ver soporte."),
		web.Soporte,
	)

	// API JSON del recurso "usuarios"
	usuarios.NewHandler(usuarioRepo).Routes(router)
}
