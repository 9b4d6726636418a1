package deploy

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Unified command runner
type Cmd struct {
	Path  string
	Args  []string
	Env   map[string]string // additional env vars
	Dir   string            // working directory
	Quiet bool              // if true, discard stdout/stderr
}

func RunCmd(ctx context.Context, c Cmd) error {
	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	if c.Dir != "" {
		cmd.Dir = c.Dir
	}
	// inherit environment
	cmd.Env = os.Environ()
	for k, v := range c.Env {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", k, v))
	}
	if c.Quiet {
		cmd.Stdout = io.Discard
		cmd.Stderr = io.Discard
		return cmd.Run()
	}
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Indirection for tests.
var (
	lookPath   = exec.LookPath
	runCommand = RunCmd
)
