package deploy

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// Start modes accepted by Start.
const (
	ModeLocal     = "local"
	ModeContainer = "container"
	ModeCompose   = "compose"
)

// startProcess spawns a long-running process without waiting for it.
var startProcess = func(ctx context.Context, path string, args []string, env map[string]string) (*exec.Cmd, error) {
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Env = os.Environ()
	for k, v := range env {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", k, v))
	}
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return cmd, nil
}

var waitForReady = waitHTTP

// Start brings the app up in the given mode and polls /health until it
// answers or the mode's readiness budget runs out. The mode is validated
// before anything launches. Every started resource is registered with tr.
func (o *Orchestrator) Start(ctx context.Context, mode string, tr *Tracker) error {
	var err error
	switch mode {
	case ModeLocal:
		err = o.startLocal(ctx, tr)
	case ModeContainer:
		err = o.startContainer(ctx, tr)
	case ModeCompose:
		err = o.startCompose(ctx, tr)
	default:
		return &InvalidModeError{Mode: mode}
	}
	if err != nil {
		return err
	}
	return o.awaitReady(ctx, mode)
}

func (o *Orchestrator) startLocal(ctx context.Context, tr *Tracker) error {
	if busy, desc := isPortBusy(o.cfg.Port); busy {
		return fmt.Errorf("port %d is in use (%s); free it or pick another port", o.cfg.Port, desc)
	}
	bin := filepath.Join(o.cfg.BinDir, "server")
	log.Info().Str("bin", bin).Msg("building app binary")
	if err := runCommand(ctx, Cmd{Path: "go", Args: []string{"build", "-o", bin, "./cmd/server"}}); err != nil {
		return fmt.Errorf("building app binary: %w", err)
	}
	log.Info().Int("port", o.cfg.Port).Msg("starting app locally")
	cmd, err := startProcess(ctx, bin, nil, map[string]string{
		"PORT":    strconv.Itoa(o.cfg.Port),
		"APP_ENV": o.cfg.Environment,
	})
	if err != nil {
		return fmt.Errorf("starting app: %w", err)
	}
	tr.TrackProcess(cmd)
	return nil
}

func (o *Orchestrator) startContainer(ctx context.Context, tr *Tracker) error {
	port := strconv.Itoa(o.cfg.Port)
	log.Info().Str("container", o.cfg.ContainerName).Msg("starting container")
	err := runCommand(ctx, Cmd{Path: "docker", Args: []string{
		"run", "-d",
		"--name", o.cfg.ContainerName,
		"-p", port + ":" + port,
		"-e", "PORT=" + port,
		"-e", "APP_ENV=" + o.cfg.Environment,
		o.cfg.ImageTag,
	}})
	if err != nil {
		return fmt.Errorf("starting container: %w", err)
	}
	tr.TrackContainer(o.cfg.ContainerName)
	return nil
}

func (o *Orchestrator) startCompose(ctx context.Context, tr *Tracker) error {
	log.Info().Msg("starting compose stack")
	if err := runCommand(ctx, Cmd{Path: "docker", Args: []string{"compose", "up", "-d"}}); err != nil {
		return fmt.Errorf("starting compose stack: %w", err)
	}
	tr.TrackCompose()
	return nil
}

func (o *Orchestrator) awaitReady(ctx context.Context, mode string) error {
	timeout := readyTimeoutForMode(mode)
	url := o.baseURL() + "/health"
	log.Info().Str("url", url).Dur("budget", timeout).Msg("waiting for app to become ready")
	if err := waitForReady(ctx, url, 200, timeout); err != nil {
		return &EndpointUnreachableError{Endpoint: "/health", Err: err}
	}
	log.Info().Msg("app is ready")
	return nil
}

func readyTimeoutForMode(mode string) time.Duration {
	switch mode {
	case ModeContainer:
		return readyTimeoutContainer
	case ModeCompose:
		return readyTimeoutCompose
	default:
		return readyTimeoutLocal
	}
}
