package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/shivayapandey/invoice/config"
	"github.com/shivayapandey/invoice/pkg/otel"
	"github.com/shivayapandey/invoice/server"

	"github.com/joho/godotenv"
)

var version = "dev"

func main() {
	godotenv.Load()

	configFlag := flag.String("config", "config.yaml", "configuration file")
	addressFlag := flag.String("address", "", "server address")

	flag.Parse()

	if err := otel.Setup("invoice", version); err != nil {
		slog.Error("telemetry setup failed", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Parse(*configFlag)

	if err != nil {
		slog.Error("startup failed", "error", err)
		os.Exit(1)
	}

	if *addressFlag != "" {
		cfg.Address = *addressFlag
	}

	s, err := server.New(cfg)

	if err != nil {
		slog.Error("startup failed", "error", err)
		os.Exit(1)
	}

	slog.Info("server starting", "address", cfg.Address)

	if err := s.ListenAndServe(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
