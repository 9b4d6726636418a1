package config

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds runtime parameters for the demo server.
// Zero values mean "unspecified" and are replaced by defaults in Default /
// overridden by ApplyEnv.
type Config struct {
	Addr        string   `json:"addr" yaml:"addr" toml:"addr"`
	Environment string   `json:"environment" yaml:"environment" toml:"environment"`
	LogLevel    string   `json:"log_level" yaml:"log_level" toml:"log_level"`
	CORSEnabled bool     `json:"cors_enabled" yaml:"cors_enabled" toml:"cors_enabled"`
	CORSOrigins []string `json:"cors_origins" yaml:"cors_origins" toml:"cors_origins"`
}

// DefaultPort is the port the application listens on when nothing overrides it.
const DefaultPort = 3000

// Default returns the configuration used when no file, environment variable
// or flag says otherwise.
func Default() Config {
	return Config{
		Addr:        fmt.Sprintf(":%d", DefaultPort),
		Environment: "development",
		LogLevel:    "info",
	}
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml. A leading '~' expands to the
// user's home directory.
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	path, err := expandHome(path)
	if err != nil {
		return cfg, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}

// expandHome expands a leading '~' to the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home dir: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
}

// Port returns the numeric listen port encoded in Addr. Falls back to
// DefaultPort when Addr does not parse.
func (c Config) Port() int {
	_, portStr, err := net.SplitHostPort(c.Addr)
	if err != nil {
		portStr = strings.TrimPrefix(c.Addr, ":")
	}
	if n, err := strconv.Atoi(portStr); err == nil && n > 0 {
		return n
	}
	return DefaultPort
}

// Merge overlays set fields of over onto base and returns the result.
func Merge(base, over Config) Config {
	if over.Addr != "" {
		base.Addr = over.Addr
	}
	if over.Environment != "" {
		base.Environment = over.Environment
	}
	if over.LogLevel != "" {
		base.LogLevel = over.LogLevel
	}
	if over.CORSEnabled {
		base.CORSEnabled = true
	}
	if len(over.CORSOrigins) > 0 {
		base.CORSOrigins = append([]string(nil), over.CORSOrigins...)
	}
	return base
}
