// Package cli wires the deployment pipeline into the deployctl command
// tree. Commands compose Deployer steps; every invocation gets its own
// resource tracker whose cleanup is deferred before any step runs.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Gog2006/DevOps-project1/internal/deploy"
)

// Deployer is the pipeline surface the commands compose.
type Deployer interface {
	CheckPrerequisites(ctx context.Context) error
	InstallDependencies(ctx context.Context) error
	RunTests(ctx context.Context) error
	BuildImage(ctx context.Context) error
	Start(ctx context.Context, mode string, tr *deploy.Tracker) error
	SmokeTest(ctx context.Context) error
	Clean(ctx context.Context) error
}

// Options carries flag-backed settings shared by all commands.
type Options struct {
	Port        int
	Environment string
	LogLvl      string
}

// DefaultOptions resolves defaults, honoring the same env vars the app uses.
func DefaultOptions() Options {
	return Options{
		Port:        envInt("PORT", 3000),
		Environment: envStr("APP_ENV", "development"),
		LogLvl:      envStr("DEPLOYCTL_LOG_LEVEL", "info"),
	}
}

// BuildInfo identifies the deployctl build.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// Execute runs deployctl wired to the real orchestrator.
func Execute(ctx context.Context, bi BuildInfo) error {
	opts := DefaultOptions()
	root := BuildRootCmd(func(o Options) Deployer {
		return deploy.New(deploy.Config{Port: o.Port, Environment: o.Environment})
	}, &opts, bi)
	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

// BuildRootCmd constructs the Cobra command tree. The Deployer is built per
// run through newDeployer so flag values are applied first.
func BuildRootCmd(newDeployer func(Options) Deployer, opts *Options, bi BuildInfo) *cobra.Command {
	root := &cobra.Command{
		Use:           "deployctl",
		Short:         "Build, test, deploy, and verify the demo app",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags -> Options
	root.PersistentFlags().Int("port", opts.Port, "App port (defaults PORT or 3000)")
	root.PersistentFlags().String("env", opts.Environment, "Environment name handed to started apps (defaults APP_ENV or development)")
	root.PersistentFlags().String("log-level", opts.LogLvl, "Log level: debug|info|warn|error (defaults DEPLOYCTL_LOG_LEVEL or info)")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if f := cmd.InheritedFlags().Lookup("port"); f != nil {
			var n int
			_, _ = fmt.Sscanf(f.Value.String(), "%d", &n)
			if n != 0 {
				opts.Port = n
			}
		}
		if f := cmd.InheritedFlags().Lookup("env"); f != nil {
			if v := f.Value.String(); v != "" {
				opts.Environment = v
			}
		}
		if f := cmd.InheritedFlags().Lookup("log-level"); f != nil {
			if v := f.Value.String(); v != "" {
				opts.LogLvl = v
			}
		}
		setupLogger(opts.LogLvl)
	}

	// Bare invocation prints help; an unrecognized command prints help and
	// fails so scripts notice the typo.
	root.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		_ = cmd.Help()
		return &deploy.UnknownCommandError{Command: args[0]}
	}

	deployer := func() Deployer { return newDeployer(*opts) }

	checkCmd := &cobra.Command{Use: "check", Short: "Verify required tools are installed", Example: "  deployctl check", RunE: func(cmd *cobra.Command, args []string) error {
		return runInvocation(cmd.Context(), func(ctx context.Context, tr *deploy.Tracker) error {
			return deployer().CheckPrerequisites(ctx)
		})
	}}

	setupCmd := &cobra.Command{Use: "setup", Short: "Check tools, install dependencies, run tests", Example: "  deployctl setup", RunE: func(cmd *cobra.Command, args []string) error {
		return runInvocation(cmd.Context(), func(ctx context.Context, tr *deploy.Tracker) error {
			d := deployer()
			if err := d.CheckPrerequisites(ctx); err != nil {
				return err
			}
			if err := d.InstallDependencies(ctx); err != nil {
				return err
			}
			return d.RunTests(ctx)
		})
	}}

	testCmd := &cobra.Command{Use: "test", Short: "Run lint and unit tests", Example: "  deployctl test", RunE: func(cmd *cobra.Command, args []string) error {
		return runInvocation(cmd.Context(), func(ctx context.Context, tr *deploy.Tracker) error {
			return deployer().RunTests(ctx)
		})
	}}

	buildCmd := &cobra.Command{Use: "build", Short: "Build the app image", Example: "  deployctl build", RunE: func(cmd *cobra.Command, args []string) error {
		return runInvocation(cmd.Context(), func(ctx context.Context, tr *deploy.Tracker) error {
			d := deployer()
			if err := d.CheckPrerequisites(ctx); err != nil {
				return err
			}
			return d.BuildImage(ctx)
		})
	}}

	startLocal := &cobra.Command{Use: "start-local", Short: "Start the app from source and smoke test it", Example: "  deployctl start-local", RunE: func(cmd *cobra.Command, args []string) error {
		return runStartMode(cmd.Context(), deployer(), deploy.ModeLocal)
	}}
	startDocker := &cobra.Command{Use: "start-docker", Short: "Start the app container and smoke test it", Example: "  deployctl start-docker", RunE: func(cmd *cobra.Command, args []string) error {
		return runStartMode(cmd.Context(), deployer(), deploy.ModeContainer)
	}}
	startCompose := &cobra.Command{Use: "start-compose", Short: "Start the compose stack and smoke test it", Example: "  deployctl start-compose", RunE: func(cmd *cobra.Command, args []string) error {
		return runStartMode(cmd.Context(), deployer(), deploy.ModeCompose)
	}}

	smokeCmd := &cobra.Command{Use: "smoke", Short: "Smoke test an already-running app", Example: "  deployctl smoke", RunE: func(cmd *cobra.Command, args []string) error {
		return runInvocation(cmd.Context(), func(ctx context.Context, tr *deploy.Tracker) error {
			return deployer().SmokeTest(ctx)
		})
	}}

	fullCmd := &cobra.Command{Use: "full", Short: "Run the whole pipeline: check, install, test, build, deploy, verify", Example: "  deployctl full", RunE: func(cmd *cobra.Command, args []string) error {
		return runInvocation(cmd.Context(), func(ctx context.Context, tr *deploy.Tracker) error {
			d := deployer()
			if err := d.CheckPrerequisites(ctx); err != nil {
				return err
			}
			if err := d.InstallDependencies(ctx); err != nil {
				return err
			}
			if err := d.RunTests(ctx); err != nil {
				return err
			}
			if err := d.BuildImage(ctx); err != nil {
				return err
			}
			if err := d.Start(ctx, deploy.ModeCompose, tr); err != nil {
				return err
			}
			return d.SmokeTest(ctx)
		})
	}}

	cleanCmd := &cobra.Command{Use: "clean", Short: "Remove leftover containers and compose services", Example: "  deployctl clean", RunE: func(cmd *cobra.Command, args []string) error {
		return runInvocation(cmd.Context(), func(ctx context.Context, tr *deploy.Tracker) error {
			return deployer().Clean(ctx)
		})
	}}

	versionCmd := &cobra.Command{Use: "version", Short: "Print version information", Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("deployctl %s (%s) %s\n", bi.Version, bi.Commit, bi.Date)
	}}

	root.AddCommand(checkCmd, setupCmd, testCmd, buildCmd, startLocal, startDocker, startCompose, smokeCmd, fullCmd, cleanCmd, versionCmd)
	return root
}

// runInvocation gives the steps a fresh tracker and guarantees its cleanup
// runs exactly once, success or not.
func runInvocation(ctx context.Context, steps func(ctx context.Context, tr *deploy.Tracker) error) error {
	tr := deploy.NewTracker()
	defer tr.Cleanup()
	return steps(ctx, tr)
}

// runStartMode starts the app in one mode, smoke tests it, and tears it
// back down through the deferred cleanup.
func runStartMode(ctx context.Context, d Deployer, mode string) error {
	return runInvocation(ctx, func(ctx context.Context, tr *deploy.Tracker) error {
		if err := d.Start(ctx, mode, tr); err != nil {
			return err
		}
		return d.SmokeTest(ctx)
	})
}
