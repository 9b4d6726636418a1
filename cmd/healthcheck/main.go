// healthcheck is the container HEALTHCHECK binary. It probes the app's
// /health endpoint and exits 0 when healthy, 1 otherwise.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Gog2006/DevOps-project1/internal/config"
	"github.com/Gog2006/DevOps-project1/internal/probe"
)

func main() {
	cfg := config.ApplyEnv(config.Default())
	defaultURL := fmt.Sprintf("http://localhost:%d/health", cfg.Port())

	url := flag.String("url", defaultURL, "Health endpoint URL")
	timeout := flag.Duration("timeout", 2*time.Second, "Per-attempt request timeout")
	interval := flag.Duration("interval", time.Second, "Pause between attempts")
	retries := flag.Int("retries", 3, "Total attempts before giving up")
	flag.Parse()

	opts := probe.Options{
		URL:      *url,
		Timeout:  *timeout,
		Interval: *interval,
		Attempts: *retries,
	}
	if err := probe.Run(context.Background(), opts); err != nil {
		fmt.Fprintf(os.Stderr, "unhealthy: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("healthy")
}
