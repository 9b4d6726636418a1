package deploy

import (
	"fmt"
	"time"
)

// Fixed names shared by the pipeline, Dockerfile, and compose stack.
const (
	DefaultImageTag      = "devops-project1:latest"
	DefaultContainerName = "devops-project1"
)

// Readiness budgets per start mode. Compose brings up more than one
// service, so it gets the widest window.
const (
	readyTimeoutLocal     = 15 * time.Second
	readyTimeoutContainer = 30 * time.Second
	readyTimeoutCompose   = 60 * time.Second
)

// Config carries the orchestrator's tunables. Zero values are filled in
// by New.
type Config struct {
	Port          int    // app port, also published from containers
	Environment   string // environment name handed to started apps
	ImageTag      string
	ContainerName string
	BinDir        string // output dir for locally built binaries
}

// Orchestrator runs deployment pipeline steps against the host.
type Orchestrator struct {
	cfg Config
}

// New builds an Orchestrator, applying defaults for unset Config fields.
func New(cfg Config) *Orchestrator {
	if cfg.Port == 0 {
		cfg.Port = 3000
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.ImageTag == "" {
		cfg.ImageTag = DefaultImageTag
	}
	if cfg.ContainerName == "" {
		cfg.ContainerName = DefaultContainerName
	}
	if cfg.BinDir == "" {
		cfg.BinDir = "bin"
	}
	return &Orchestrator{cfg: cfg}
}

// Config returns the effective configuration.
func (o *Orchestrator) Config() Config { return o.cfg }

func (o *Orchestrator) baseURL() string {
	return fmt.Sprintf("http://localhost:%d", o.cfg.Port)
}
