package deploy

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Clean force-removes the fixed-name container and takes the compose stack
// down. It exists for leftovers from runs that never reached their own
// cleanup: everything is best-effort and already-gone resources are fine.
func (o *Orchestrator) Clean(ctx context.Context) error {
	log.Info().Msg("removing deployment leftovers")
	if err := runCommand(ctx, Cmd{Path: "docker", Args: []string{"rm", "-f", o.cfg.ContainerName}, Quiet: true}); err != nil {
		log.Debug().Err(err).Str("container", o.cfg.ContainerName).Msg("container already gone")
	}
	if err := runCommand(ctx, Cmd{Path: "docker", Args: []string{"compose", "down"}, Quiet: true}); err != nil {
		log.Debug().Err(err).Msg("compose stack already down")
	}
	log.Info().Msg("clean finished")
	return nil
}
