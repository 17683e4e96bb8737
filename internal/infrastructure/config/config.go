package config

import (
	"strings"

	"github.com/spf13/viper"

	"sfg_core/internal/infrastructure/logging"
)

// Config carries process-level settings. Table names stay per-repository env
// overrides (see the repository package); this covers the HTTP surface.
type Config struct {
	Server ServerConfig
	CORS   CORSConfig
	Auth   AuthConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type CORSConfig struct {
	// AllowedOrigins is a comma-separated list; "*" allows any origin
	// (development default so the Vite dev server can reach the API).
	AllowedOrigins []string
}

type AuthConfig struct {
	// Token is the shared bearer token expected on API requests. Empty
	// disables the check (development default).
	Token string
}

// AppConfig is populated by Load at startup.
var AppConfig *Config

// Load reads .env (when present) plus the environment into AppConfig.
func Load() *Config {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("GO_ENV", "development")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("API_TOKEN", "")

	if err := v.ReadInConfig(); err != nil {
		logging.L().WithError(err).Debug("no .env file; using environment only")
	}

	origins := strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	AppConfig = &Config{
		Server: ServerConfig{
			Port: v.GetString("PORT"),
			Env:  v.GetString("GO_ENV"),
		},
		CORS: CORSConfig{AllowedOrigins: origins},
		Auth: AuthConfig{Token: v.GetString("API_TOKEN")},
	}
	return AppConfig
}
