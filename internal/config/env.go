package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names consumed by the server. PORT follows the PaaS
// convention the container images use; the APP_* names mirror the .env file.
const (
	EnvPort        = "PORT"
	EnvEnvironment = "APP_ENV"
	EnvLogLevel    = "APP_LOG_LEVEL"
	EnvCORSEnabled = "APP_CORS_ENABLED"
	EnvCORSOrigins = "APP_CORS_ORIGINS"
)

// LoadDotEnv populates the process environment from a .env file in the
// working directory. A missing file is not an error; explicit environment
// variables always win because godotenv never overwrites set keys.
func LoadDotEnv() {
	_ = godotenv.Load()
}

// ApplyEnv overlays environment variables onto cfg and returns the result.
func ApplyEnv(cfg Config) Config {
	if v := envStr(EnvPort, ""); v != "" {
		cfg.Addr = ":" + strings.TrimPrefix(v, ":")
	}
	if v := envStr(EnvEnvironment, ""); v != "" {
		cfg.Environment = v
	}
	if v := envStr(EnvLogLevel, ""); v != "" {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvCORSEnabled); ok {
		cfg.CORSEnabled = parseBool(v)
	}
	if v := envStr(EnvCORSOrigins, ""); v != "" {
		cfg.CORSOrigins = splitCSV(v)
	}
	return cfg
}

// FromEnv builds the effective configuration from defaults, an optional .env
// file and the environment, in that order.
func FromEnv() Config {
	LoadDotEnv()
	return ApplyEnv(Default())
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseBool(v string) bool {
	s := strings.ToLower(strings.TrimSpace(v))
	return s == "1" || s == "true" || s == "yes"
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
