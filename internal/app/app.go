// Package app holds the demo application core: the state reported by the
// health and info endpoints, independent of any transport.
package app

import (
	"os"
	"time"

	"github.com/Gog2006/DevOps-project1/pkg/types"
)

var hostname = os.Hostname

// App answers health and info queries for one running instance.
type App struct {
	environment string
	version     string
	hostname    string
	startTime   time.Time
}

// New builds an App for the given environment and version. The hostname is
// captured once at startup; inside a container it is the container ID.
func New(environment, version string) *App {
	host, err := hostname()
	if err != nil || host == "" {
		host = "unknown"
	}
	return &App{
		environment: environment,
		version:     version,
		hostname:    host,
		startTime:   time.Now(),
	}
}

// Health reports the instance as healthy with a fresh timestamp. The
// timestamp is UTC RFC 3339 and changes on every call.
func (a *App) Health() types.HealthResponse {
	return types.HealthResponse{
		Status:    types.HealthStatusHealthy,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   a.version,
	}
}

// Info describes the running instance.
func (a *App) Info() types.InfoResponse {
	return types.InfoResponse{
		Message:     "Hello from the DevOps demo app!",
		Environment: a.environment,
		Version:     a.version,
		Hostname:    a.hostname,
	}
}

// Environment returns the configured environment name.
func (a *App) Environment() string { return a.environment }

// Version returns the build version string.
func (a *App) Version() string { return a.version }

// Uptime reports how long this instance has been running.
func (a *App) Uptime() time.Duration { return time.Since(a.startTime) }
