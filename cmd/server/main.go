package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Gog2006/DevOps-project1/internal/app"
	"github.com/Gog2006/DevOps-project1/internal/config"
	"github.com/Gog2006/DevOps-project1/internal/httpapi"
)

// version is stamped at build time via -ldflags.
var version = "1.0.0"

func main() {
	cfgPath := flag.String("config", "", "Optional config file (.yaml|.json|.toml)")
	addr := flag.String("addr", "", "HTTP listen address, e.g. :3000 (overrides config and PORT)")
	flag.Parse()

	// Layering: defaults < file < env < flags.
	cfg := config.Default()
	if *cfgPath != "" {
		fileCfg, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *cfgPath).Msg("failed to load config")
		}
		cfg = config.Merge(cfg, fileCfg)
	}
	config.LoadDotEnv()
	cfg = config.ApplyEnv(cfg)
	if *addr != "" {
		cfg.Addr = *addr
	}

	logger := setupLogger(cfg)
	httpapi.SetLogger(logger)
	httpapi.SetCORSOptions(cfg.CORSEnabled, cfg.CORSOrigins, nil, nil)

	a := app.New(cfg.Environment, version)
	mux := httpapi.NewMux(a)
	srv := &http.Server{Addr: cfg.Addr, Handler: mux}

	go func() {
		logger.Info().Str("addr", cfg.Addr).Str("env", cfg.Environment).Str("version", version).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown error")
	}
}

func setupLogger(cfg config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339Nano
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	if cfg.Environment == "development" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	return logger
}
