// Package main - Entry point for the cargo cost HTTP server
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"cargo-cost/api"
	"cargo-cost/internal/config"
	"cargo-cost/internal/logging"
)

const version = "1.0.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", config.DefaultPath(), "Config file path")
	addr := flag.String("addr", "", "Server address (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		return err
	}
	defer logging.Sync()

	catalog, err := cfg.Tariff.Catalog()
	if err != nil {
		return err
	}
	if cfg.Tariff.CatalogPath != "" {
		logging.Info("loaded tariff catalog", zap.String("path", cfg.Tariff.CatalogPath))
	}

	server := api.NewServer(api.Options{
		Version:   version,
		Catalog:   catalog,
		ImportTax: cfg.ImportTax,
		Logger:    logging.Logger,
		Metrics:   api.NewMetrics(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx, cfg.Server.Addr, time.Duration(cfg.Server.ShutdownTimeoutSeconds)*time.Second)
}
