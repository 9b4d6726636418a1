package deploy

import (
	"errors"
	"fmt"
	"strings"
)

// MissingToolError reports every required tool absent from the host, not
// just the first one found missing.
type MissingToolError struct {
	Tools []string
}

func (e *MissingToolError) Error() string {
	return "missing required tools: " + strings.Join(e.Tools, ", ")
}

// IsMissingTool reports whether err indicates absent prerequisites.
func IsMissingTool(err error) bool {
	var t *MissingToolError
	return errors.As(err, &t)
}

// DependencyInstallError signals that fetching module dependencies failed.
type DependencyInstallError struct {
	Err error
}

func (e *DependencyInstallError) Error() string {
	return fmt.Sprintf("dependency install failed: %v", e.Err)
}

func (e *DependencyInstallError) Unwrap() error { return e.Err }

// IsDependencyInstall reports whether err came from the install step.
func IsDependencyInstall(err error) bool {
	var t *DependencyInstallError
	return errors.As(err, &t)
}

// TestFailureError signals a failed lint or unit test stage.
type TestFailureError struct {
	Stage string // "lint" or "unit"
	Err   error
}

func (e *TestFailureError) Error() string {
	return fmt.Sprintf("%s tests failed: %v", e.Stage, e.Err)
}

func (e *TestFailureError) Unwrap() error { return e.Err }

// IsTestFailure reports whether err came from the test step.
func IsTestFailure(err error) bool {
	var t *TestFailureError
	return errors.As(err, &t)
}

// BuildError signals a failed image build.
type BuildError struct {
	Err error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("image build failed: %v", e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

// IsBuild reports whether err came from the build step.
func IsBuild(err error) bool {
	var t *BuildError
	return errors.As(err, &t)
}

// InvalidModeError reports a start mode outside local, container, compose.
type InvalidModeError struct {
	Mode string
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("invalid start mode %q (want local, container, or compose)", e.Mode)
}

// IsInvalidMode reports whether err indicates an unrecognized start mode.
func IsInvalidMode(err error) bool {
	var t *InvalidModeError
	return errors.As(err, &t)
}

// EndpointUnreachableError names the endpoint that failed verification.
type EndpointUnreachableError struct {
	Endpoint string
	Err      error
}

func (e *EndpointUnreachableError) Error() string {
	return fmt.Sprintf("endpoint %s unreachable: %v", e.Endpoint, e.Err)
}

func (e *EndpointUnreachableError) Unwrap() error { return e.Err }

// IsEndpointUnreachable reports whether err names a failed endpoint probe.
func IsEndpointUnreachable(err error) bool {
	var t *EndpointUnreachableError
	return errors.As(err, &t)
}

// UnknownCommandError reports an unrecognized CLI command.
type UnknownCommandError struct {
	Command string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q", e.Command)
}

// IsUnknownCommand reports whether err indicates an unrecognized command.
func IsUnknownCommand(err error) bool {
	var t *UnknownCommandError
	return errors.As(err, &t)
}
