package deploy

import (
	"context"
	"errors"
	"os"

	"github.com/rs/zerolog/log"
)

// InstallDependencies downloads the module dependency graph.
func (o *Orchestrator) InstallDependencies(ctx context.Context) error {
	log.Info().Msg("installing dependencies")
	if err := runCommand(ctx, Cmd{Path: "go", Args: []string{"mod", "download"}}); err != nil {
		return &DependencyInstallError{Err: err}
	}
	log.Info().Msg("dependencies installed")
	return nil
}

// RunTests lints first, then runs unit tests. The unit stage is skipped
// when lint fails.
func (o *Orchestrator) RunTests(ctx context.Context) error {
	log.Info().Msg("running lint")
	if err := runCommand(ctx, Cmd{Path: "golangci-lint", Args: []string{"run", "./..."}}); err != nil {
		return &TestFailureError{Stage: "lint", Err: err}
	}
	log.Info().Msg("running unit tests")
	if err := runCommand(ctx, Cmd{Path: "go", Args: []string{"test", "./..."}}); err != nil {
		return &TestFailureError{Stage: "unit", Err: err}
	}
	log.Info().Msg("all tests passed")
	return nil
}

// pathExists checks if the given path exists.
var pathExists = func(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !errors.Is(err, os.ErrNotExist)
}

// BuildImage builds the app image under the fixed tag. The Dockerfile is
// checked up front so a missing one fails with a clear message instead of
// docker's.
func (o *Orchestrator) BuildImage(ctx context.Context) error {
	if !pathExists("Dockerfile") {
		return &BuildError{Err: errors.New("Dockerfile not found in working directory")}
	}
	log.Info().Str("tag", o.cfg.ImageTag).Msg("building image")
	if err := runCommand(ctx, Cmd{Path: "docker", Args: []string{"build", "-t", o.cfg.ImageTag, "."}}); err != nil {
		return &BuildError{Err: err}
	}
	log.Info().Str("tag", o.cfg.ImageTag).Msg("image built")
	return nil
}
