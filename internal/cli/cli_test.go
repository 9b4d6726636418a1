package cli

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/Gog2006/DevOps-project1/internal/deploy"
)

// mockDeployer records pipeline calls in order and fails on demand.
type mockDeployer struct {
	calls []string
	errs  map[string]error
}

func (m *mockDeployer) step(name string) error {
	m.calls = append(m.calls, name)
	if m.errs != nil {
		if err, ok := m.errs[name]; ok {
			return err
		}
	}
	return nil
}

func (m *mockDeployer) CheckPrerequisites(ctx context.Context) error { return m.step("check") }
func (m *mockDeployer) InstallDependencies(ctx context.Context) error {
	return m.step("install")
}
func (m *mockDeployer) RunTests(ctx context.Context) error  { return m.step("test") }
func (m *mockDeployer) BuildImage(ctx context.Context) error { return m.step("build") }
func (m *mockDeployer) Start(ctx context.Context, mode string, tr *deploy.Tracker) error {
	return m.step("start:" + mode)
}
func (m *mockDeployer) SmokeTest(ctx context.Context) error { return m.step("smoke") }
func (m *mockDeployer) Clean(ctx context.Context) error     { return m.step("clean") }

func runCLI(t *testing.T, d Deployer, args ...string) error {
	t.Helper()
	opts := Options{Port: 3000, Environment: "development", LogLvl: "error"}
	root := BuildRootCmd(func(Options) Deployer { return d }, &opts, BuildInfo{Version: "test"})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	return root.Execute()
}

func TestCheckCommand(t *testing.T) {
	m := &mockDeployer{}
	if err := runCLI(t, m, "check"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(m.calls, []string{"check"}) {
		t.Fatalf("calls = %v", m.calls)
	}
}

func TestSetupComposition(t *testing.T) {
	m := &mockDeployer{}
	if err := runCLI(t, m, "setup"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(m.calls, []string{"check", "install", "test"}) {
		t.Fatalf("calls = %v", m.calls)
	}
}

func TestSetupShortCircuitsOnInstallFailure(t *testing.T) {
	m := &mockDeployer{errs: map[string]error{"install": &deploy.DependencyInstallError{Err: errors.New("x")}}}
	err := runCLI(t, m, "setup")
	if !deploy.IsDependencyInstall(err) {
		t.Fatalf("wrong error: %v", err)
	}
	if !reflect.DeepEqual(m.calls, []string{"check", "install"}) {
		t.Fatalf("test stage must not run after install failure: %v", m.calls)
	}
}

func TestBuildChecksFirst(t *testing.T) {
	m := &mockDeployer{}
	if err := runCLI(t, m, "build"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(m.calls, []string{"check", "build"}) {
		t.Fatalf("calls = %v", m.calls)
	}
}

func TestBuildSkippedWhenToolsMissing(t *testing.T) {
	m := &mockDeployer{errs: map[string]error{"check": &deploy.MissingToolError{Tools: []string{"docker"}}}}
	err := runCLI(t, m, "build")
	if !deploy.IsMissingTool(err) {
		t.Fatalf("wrong error: %v", err)
	}
	if !reflect.DeepEqual(m.calls, []string{"check"}) {
		t.Fatalf("build must not run without tools: %v", m.calls)
	}
}

func TestStartCommandsRunSmoke(t *testing.T) {
	cases := map[string]string{
		"start-local":   deploy.ModeLocal,
		"start-docker":  deploy.ModeContainer,
		"start-compose": deploy.ModeCompose,
	}
	for cmd, mode := range cases {
		m := &mockDeployer{}
		if err := runCLI(t, m, cmd); err != nil {
			t.Fatalf("%s: unexpected err: %v", cmd, err)
		}
		want := []string{"start:" + mode, "smoke"}
		if !reflect.DeepEqual(m.calls, want) {
			t.Fatalf("%s: calls = %v, want %v", cmd, m.calls, want)
		}
	}
}

func TestStartFailureSkipsSmoke(t *testing.T) {
	m := &mockDeployer{errs: map[string]error{"start:local": errors.New("port busy")}}
	if err := runCLI(t, m, "start-local"); err == nil {
		t.Fatalf("expected error")
	}
	if !reflect.DeepEqual(m.calls, []string{"start:local"}) {
		t.Fatalf("smoke must not run after start failure: %v", m.calls)
	}
}

func TestFullPipelineOrder(t *testing.T) {
	m := &mockDeployer{}
	if err := runCLI(t, m, "full"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := []string{"check", "install", "test", "build", "start:compose", "smoke"}
	if !reflect.DeepEqual(m.calls, want) {
		t.Fatalf("calls = %v, want %v", m.calls, want)
	}
}

func TestFullPipelineShortCircuitsOnTestFailure(t *testing.T) {
	m := &mockDeployer{errs: map[string]error{"test": &deploy.TestFailureError{Stage: "lint", Err: errors.New("x")}}}
	err := runCLI(t, m, "full")
	if !deploy.IsTestFailure(err) {
		t.Fatalf("wrong error: %v", err)
	}
	want := []string{"check", "install", "test"}
	if !reflect.DeepEqual(m.calls, want) {
		t.Fatalf("calls = %v, want %v", m.calls, want)
	}
}

func TestSmokeCommand(t *testing.T) {
	m := &mockDeployer{}
	if err := runCLI(t, m, "smoke"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(m.calls, []string{"smoke"}) {
		t.Fatalf("calls = %v", m.calls)
	}
}

func TestCleanCommand(t *testing.T) {
	m := &mockDeployer{}
	if err := runCLI(t, m, "clean"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(m.calls, []string{"clean"}) {
		t.Fatalf("calls = %v", m.calls)
	}
}

func TestNoArgsShowsHelp(t *testing.T) {
	m := &mockDeployer{}
	if err := runCLI(t, m); err != nil {
		t.Fatalf("bare invocation should succeed with help: %v", err)
	}
	if len(m.calls) != 0 {
		t.Fatalf("no pipeline steps expected: %v", m.calls)
	}
}

func TestUnknownCommand(t *testing.T) {
	m := &mockDeployer{}
	err := runCLI(t, m, "frobnicate")
	if err == nil {
		t.Fatalf("expected error for unknown command")
	}
	var uc *deploy.UnknownCommandError
	if !errors.As(err, &uc) {
		t.Fatalf("wrong error type: %T", err)
	}
	if uc.Command != "frobnicate" {
		t.Fatalf("command = %q", uc.Command)
	}
	if len(m.calls) != 0 {
		t.Fatalf("no pipeline steps expected: %v", m.calls)
	}
}

func TestUnknownCommandPrintsHelp(t *testing.T) {
	opts := Options{Port: 3000, Environment: "development", LogLvl: "error"}
	root := BuildRootCmd(func(Options) Deployer { return &mockDeployer{} }, &opts, BuildInfo{})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"frobnicate"})
	_ = root.Execute()
	if !bytes.Contains(out.Bytes(), []byte("Usage:")) {
		t.Fatalf("help not printed: %q", out.String())
	}
}

func TestFlagsReachDeployer(t *testing.T) {
	var got Options
	opts := Options{Port: 3000, Environment: "development", LogLvl: "error"}
	root := BuildRootCmd(func(o Options) Deployer {
		got = o
		return &mockDeployer{}
	}, &opts, BuildInfo{})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"--port", "4444", "--env", "staging", "check"})
	if err := root.Execute(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Port != 4444 || got.Environment != "staging" {
		t.Fatalf("options not plumbed: %+v", got)
	}
}

func TestVersionCommand(t *testing.T) {
	opts := Options{LogLvl: "error"}
	root := BuildRootCmd(func(Options) Deployer { return &mockDeployer{} }, &opts, BuildInfo{Version: "9.9.9", Commit: "abc", Date: "today"})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"version"})
	if err := root.Execute(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}
