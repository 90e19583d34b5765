package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries everything supplied out-of-band through the environment.
type Config struct {
	Port     string
	DBDriver string // "mysql" (default) or "sqlite"
	DBDSN    string

	// RegistrationKey gates /register. Empty means registration is open;
	// otherwise the submitted authorization key must match exactly.
	RegistrationKey string

	CORSOrigins []string
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		GetLogger().Warn("no .env file found, using process environment")
	}

	return &Config{
		Port:            envOr("PORT", "8080"),
		DBDriver:        envOr("DB_DRIVER", "mysql"),
		DBDSN:           os.Getenv("DB_DSN"),
		RegistrationKey: os.Getenv("REGISTRATION_KEY"),
		CORSOrigins:     splitOrigins(envOr("CORS_ORIGINS", "http://localhost:5173")),
	}
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func splitOrigins(v string) []string {
	var out []string
	for _, o := range strings.Split(v, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
