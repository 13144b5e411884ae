package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo).
type Config struct {
	App   AppConfig
	HTTP  HTTPConfig
	API   APIConfig
	Cache CacheConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
	// PublicBaseURL URL absoluta bajo la que se sirve esta aplicación;
	// es lo que codifican los códigos QR de las etiquetas.
	PublicBaseURL string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// APIConfig configuración del API remoto de productos.
type APIConfig struct {
	// BaseURL raíz del API, incluida la versión (ej. http://host:3000/api/v1).
	BaseURL string
	Timeout time.Duration
}

// CacheConfig configuración de la caché de lecturas.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// Load lee la configuración desde variables de entorno (y opcionalmente
// desde archivo). Las env vars tienen prioridad. Nombres esperados:
// APP_ENV, HTTP_PORT, API_BASE_URL, PUBLIC_BASE_URL, CACHE_TTL_SECONDS, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:           getString(v, "APP_ENV", "development"),
			Name:          getString(v, "APP_NAME", "drinktrace-admin"),
			PublicBaseURL: getString(v, "PUBLIC_BASE_URL", "http://localhost:8080"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		API: APIConfig{
			BaseURL: getString(v, "API_BASE_URL", "http://localhost:3000/api/v1/"),
			Timeout: time.Duration(getInt(v, "API_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		Cache: CacheConfig{
			Size: getInt(v, "CACHE_SIZE", 256),
			TTL:  time.Duration(getInt(v, "CACHE_TTL_SECONDS", 60)) * time.Second,
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
