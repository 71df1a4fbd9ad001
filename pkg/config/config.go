// Package config lee la configuración de la aplicación vía Viper, con
// prioridad: variables de entorno > archivo .env/config.env > defaults.
package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación.
type Config struct {
	App  AppConfig
	HTTP HTTPConfig
	Repo RepoConfig
	DB   DBConfig
}

// AppConfig configuración general.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
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

// RepoConfig selecciona el repositorio de persistencia.
//
// Driver "rest": el colaborador REST externo (estilo json-server) en BaseURL;
// dos escrituras independientes por movimiento, sin transacción.
// Driver "postgres": almacenamiento propio sobre PostgreSQL con escrituras
// transaccionales.
type RepoConfig struct {
	Driver         string // rest | postgres
	BaseURL        string // solo driver rest
	TimeoutSeconds int    // timeout por petición del cliente REST
}

// DBConfig configuración de PostgreSQL (solo driver postgres).
// Si DatabaseURL no está vacío se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DatabaseURL si está definido,
// si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN construye el connection string, con URL encoding para caracteres
// especiales en la contraseña.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// Load lee la configuración. Nombres esperados: APP_ENV, HTTP_PORT,
// REPO_DRIVER, REPO_BASE_URL, DATABASE_URL, DB_HOST, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Archivos opcionales: .env y config.env (se ignoran si no existen)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "fruteria-dashboard"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Repo: RepoConfig{
			Driver:         getString(v, "REPO_DRIVER", "rest"),
			BaseURL:        getString(v, "REPO_BASE_URL", "http://localhost:3001"),
			TimeoutSeconds: getInt(v, "REPO_TIMEOUT_SECONDS", 10),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "fruteria"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
	}

	if cfg.Repo.Driver != "rest" && cfg.Repo.Driver != "postgres" {
		return nil, fmt.Errorf("REPO_DRIVER inválido %q: se espera rest o postgres", cfg.Repo.Driver)
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
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
