// Package deploy drives the demo app's deployment pipeline: prerequisite
// checks, dependency install, lint and unit tests, image builds, service
// start in three modes, smoke tests, and teardown. It is structured into
// small files by concern:
//
//   - deploy.go: core Orchestrator type, Config and defaults, constructor.
//   - errors.go: error types and helpers (IsMissingTool, IsInvalidMode, ...).
//   - executil.go: unified external command runner.
//   - tools.go: prerequisite detection (go, golangci-lint, docker, compose).
//   - steps.go: install, test, and build pipeline steps.
//   - start.go: mode dispatch and post-start readiness polling.
//   - smoke.go: single-shot endpoint verification.
//   - tracker.go: per-invocation resource tracking and best-effort cleanup.
//   - ports.go: port and HTTP readiness helpers.
//
// Every resource the orchestrator launches is registered with a Tracker so
// that one Cleanup call tears down exactly what this invocation started,
// regardless of how the run ends. External packages should treat this
// package as the pipeline layer and use public methods only.
package deploy
