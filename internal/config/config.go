// Package config carga la configuración desde variables de entorno y la
// expone al resto de la aplicación.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config contiene la configuración de la aplicación.
type Config struct {
	// Almacén de documentos
	MongoURI string // URI de conexión a MongoDB
	DBName   string // Nombre de la base de datos

	// Sesiones
	SessionSecret string // Clave de firmado de la cookie de sesión
	SessionDir    string // Directorio de sesiones en disco (vacío = temporal del SO)

	// Servidor
	Port    string // Puerto del servidor HTTP
	GinMode string // Modo de ejecución de Gin (debug, release, test)

	// CORS
	CORSAllowedOrigins string // Orígenes permitidos (separados por coma, "*" = todos)

	// Modo diseño: simula el almacén sin conectarse a MongoDB
	DesignMode bool
}

// Load lee la configuración desde el entorno.
// Si existe un archivo .env lo carga primero.
func Load() (*Config, error) {
	loadEnvFile()

	config := &Config{
		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:   getEnv("DB_NAME", "marketlink_db"),

		SessionSecret: getEnv("SESSION_SECRET", "clave-secreta"),
		SessionDir:    getEnv("SESSION_DIR", ""),

		Port:    getEnv("PORT", "5000"),
		GinMode: getEnv("GIN_MODE", "debug"),

		CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),

		DesignMode: getEnv("DESIGN_MODE", "0") == "1",
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func loadEnvFile() {
	if err := godotenv.Load(); err == nil {
		return
	}

	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	parent := filepath.Dir(cwd)
	if parent == "" || parent == cwd {
		return
	}

	_ = godotenv.Load(filepath.Join(parent, ".env"))
}

// Validate verifica que la configuración sea válida.
func (c *Config) Validate() error {
	// En desarrollo la clave por defecto es aceptable; en producción no.
	if c.GinMode == "release" {
		if c.SessionSecret == "" || c.SessionSecret == "clave-secreta" {
			return fmt.Errorf("SESSION_SECRET is required in release mode")
		}
		if !c.DesignMode && c.MongoURI == "" {
			return fmt.Errorf("MONGO_URI is required in release mode")
		}
	}

	return nil
}

// getEnv obtiene una variable de entorno o el valor por defecto si no existe.
func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
