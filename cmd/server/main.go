package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/GriffinCanCode/MathCore/backend/internal/infrastructure/config"
	"github.com/GriffinCanCode/MathCore/backend/internal/infrastructure/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Invalid environment configuration, using defaults: %v", err)
		cfg = config.Default()
	}

	// Flags override environment
	port := flag.String("port", cfg.Server.Port, "Server port")
	host := flag.String("host", cfg.Server.Host, "Server host")
	dev := flag.Bool("dev", cfg.Logging.Development, "Development mode (colored logs, debug level)")
	level := flag.String("log-level", cfg.Logging.Level, "Log level (debug, info, warn, error)")
	catalog := flag.String("catalog", cfg.Math.Catalog, "Extra formula catalog (.yaml, .yml or .toml)")
	noRateLimit := flag.Bool("no-rate-limit", !cfg.RateLimit.Enabled, "Disable per-client rate limiting")
	flag.Parse()

	cfg.Server.Port = *port
	cfg.Server.Host = *host
	cfg.Logging.Development = *dev
	cfg.Logging.Level = *level
	if *dev && !isFlagSet("log-level") {
		cfg.Logging.Level = "debug"
	}
	cfg.Math.Catalog = *catalog
	cfg.RateLimit.Enabled = !*noRateLimit

	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Start server in goroutine
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Run()
	}()

	// Wait for shutdown signal or error
	select {
	case <-sigChan:
		if err := srv.Close(); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
