package deploy

import (
	"context"
	"os/exec"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const cleanupTimeout = 30 * time.Second

// Tracker records the resources one invocation started so Cleanup can tear
// down exactly those and nothing else. Cleanup runs at most once.
type Tracker struct {
	mu         sync.Mutex
	once       sync.Once
	procs      []*exec.Cmd
	containers []string
	compose    bool
}

func NewTracker() *Tracker { return &Tracker{} }

// TrackProcess registers a spawned process for later cleanup.
func (t *Tracker) TrackProcess(cmd *exec.Cmd) {
	t.mu.Lock()
	t.procs = append(t.procs, cmd)
	t.mu.Unlock()
}

// TrackContainer registers a started container by name.
func (t *Tracker) TrackContainer(name string) {
	t.mu.Lock()
	t.containers = append(t.containers, name)
	t.mu.Unlock()
}

// TrackCompose marks the compose stack as started.
func (t *Tracker) TrackCompose() {
	t.mu.Lock()
	t.compose = true
	t.mu.Unlock()
}

// Cleanup tears down all tracked resources best-effort. Errors, including
// resources already gone, are logged and swallowed. Subsequent calls are
// no-ops. A fresh context is used so teardown still runs after the
// invocation context was canceled by an interrupt.
func (t *Tracker) Cleanup() {
	t.once.Do(func() {
		t.mu.Lock()
		procs := append([]*exec.Cmd(nil), t.procs...)
		containers := append([]string(nil), t.containers...)
		compose := t.compose
		t.procs, t.containers, t.compose = nil, nil, false
		t.mu.Unlock()

		if len(procs) == 0 && len(containers) == 0 && !compose {
			return
		}
		log.Info().Msg("cleaning up started resources")

		ctx, cancel := context.WithTimeout(context.Background(), cleanupTimeout)
		defer cancel()

		for _, c := range procs {
			if c != nil && c.Process != nil {
				if err := c.Process.Kill(); err != nil {
					log.Debug().Err(err).Int("pid", c.Process.Pid).Msg("process already gone")
				}
			}
		}
		for _, name := range containers {
			if err := runCommand(ctx, Cmd{Path: "docker", Args: []string{"rm", "-f", name}, Quiet: true}); err != nil {
				log.Debug().Err(err).Str("container", name).Msg("container already gone")
			}
		}
		if compose {
			if err := runCommand(ctx, Cmd{Path: "docker", Args: []string{"compose", "down"}, Quiet: true}); err != nil {
				log.Debug().Err(err).Msg("compose stack already down")
			}
		}
		log.Info().Msg("cleanup complete")
	})
}
