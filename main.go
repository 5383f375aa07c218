package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/valyala/fasthttp"

	"risk-engine/internal/config"
	"risk-engine/internal/engine"
	"risk-engine/internal/events"
	"risk-engine/internal/handler"
	"risk-engine/internal/logger"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file")
	port := flag.Int("port", 0, "Port to listen on (overrides config)")
	host := flag.String("host", "", "Host to bind (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		bootLog := logger.New(logger.Config{})
		bootLog.Fatal().Err(err).Msg("Failed to load config")
	}
	config.ApplyFlagOverrides(cfg, *port, *host)

	log := logger.New(logger.Config{Level: cfg.Logging.Level, Pretty: cfg.Logging.Pretty})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid config")
	}

	policy, _ := events.ParsePolicy(cfg.Engine.OverridePolicy)
	eng := engine.New(
		engine.WithPolicy(policy),
		engine.WithCurrency(cfg.Engine.Currency),
		engine.WithLogger(log),
	)

	server := &fasthttp.Server{
		Handler:     handler.New(eng, log, cfg.Server.AllowedOrigin).Handle,
		Name:        "risk-engine",
		ReadTimeout: time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
	}

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Info().Msg("Shutting down")
		if err := server.Shutdown(); err != nil {
			log.Error().Err(err).Msg("Shutdown failed")
		}
	}()

	log.Info().
		Str("addr", cfg.Addr()).
		Str("override_policy", string(policy)).
		Str("currency", cfg.Engine.Currency).
		Msg("Risk engine starting")
	if err := server.ListenAndServe(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
