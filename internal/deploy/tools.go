package deploy

import (
	"context"

	"github.com/rs/zerolog/log"
)

// requiredTools are looked up on PATH. The compose plugin is probed
// separately because it ships inside the docker binary.
var requiredTools = []string{"go", "golangci-lint", "docker"}

// CheckPrerequisites verifies every tool the pipeline needs. All tools are
// checked before returning so the error lists the complete set of gaps.
func (o *Orchestrator) CheckPrerequisites(ctx context.Context) error {
	var missing []string
	for _, tool := range requiredTools {
		if _, err := lookPath(tool); err != nil {
			log.Warn().Str("tool", tool).Msg("not found on PATH")
			missing = append(missing, tool)
			continue
		}
		log.Info().Str("tool", tool).Msg("found")
	}
	if hasDocker(missing) {
		if err := runCommand(ctx, Cmd{Path: "docker", Args: []string{"compose", "version"}, Quiet: true}); err != nil {
			log.Warn().Msg("docker compose plugin not available")
			missing = append(missing, "docker compose")
		} else {
			log.Info().Str("tool", "docker compose").Msg("found")
		}
	}
	if len(missing) > 0 {
		return &MissingToolError{Tools: missing}
	}
	return nil
}

func hasDocker(missing []string) bool {
	for _, m := range missing {
		if m == "docker" {
			return false
		}
	}
	return true
}
