package deploy

import (
	"context"
	"errors"
	"sync"
	"testing"
)

func TestCleanupRunsOnce(t *testing.T) {
	var mu sync.Mutex
	var cmds []Cmd
	cleanup := withDeployStubs(t, func() {
		runCommand = func(ctx context.Context, c Cmd) error {
			mu.Lock()
			cmds = append(cmds, c)
			mu.Unlock()
			return nil
		}
	})
	defer cleanup()

	tr := NewTracker()
	tr.TrackContainer("c1")
	tr.Cleanup()
	tr.Cleanup()
	tr.Cleanup()

	mu.Lock()
	n := len(cmds)
	mu.Unlock()
	if n != 1 {
		t.Fatalf("expected 1 docker rm, got %d: %+v", n, cmds)
	}
}

func TestCleanupRemovesTrackedContainers(t *testing.T) {
	rec := &cmdRecorder{}
	cleanup := withDeployStubs(t, func() { runCommand = rec.run })
	defer cleanup()

	tr := NewTracker()
	tr.TrackContainer("a")
	tr.TrackContainer("b")
	tr.Cleanup()

	if rec.calls("docker", "rm") != 2 {
		t.Fatalf("expected 2 docker rm calls: %+v", rec.cmds)
	}
}

func TestCleanupTakesComposeDown(t *testing.T) {
	rec := &cmdRecorder{}
	cleanup := withDeployStubs(t, func() { runCommand = rec.run })
	defer cleanup()

	tr := NewTracker()
	tr.TrackCompose()
	tr.Cleanup()

	if rec.calls("docker", "compose") != 1 {
		t.Fatalf("compose down not issued: %+v", rec.cmds)
	}
}

func TestCleanupSwallowsErrors(t *testing.T) {
	cleanup := withDeployStubs(t, func() {
		runCommand = func(context.Context, Cmd) error { return errors.New("No such container") }
	})
	defer cleanup()

	tr := NewTracker()
	tr.TrackContainer("gone")
	tr.TrackCompose()
	// must not panic or propagate
	tr.Cleanup()
}

func TestCleanupEmptyTrackerIssuesNothing(t *testing.T) {
	cleanup := withDeployStubs(t, func() {
		runCommand = func(context.Context, Cmd) error {
			t.Fatalf("no commands expected for empty tracker")
			return nil
		}
	})
	defer cleanup()

	NewTracker().Cleanup()
}

func TestCleanAlwaysTargetsFixedNames(t *testing.T) {
	rec := &cmdRecorder{}
	cleanup := withDeployStubs(t, func() { runCommand = rec.run })
	defer cleanup()

	if err := New(Config{}).Clean(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if rec.calls("docker", "rm") != 1 || rec.calls("docker", "compose") != 1 {
		t.Fatalf("clean must remove container and compose stack: %+v", rec.cmds)
	}
	args := rec.cmds[0].Args
	found := false
	for _, a := range args {
		if a == DefaultContainerName {
			found = true
		}
	}
	if !found {
		t.Fatalf("fixed container name not targeted: %v", args)
	}
}
