package main

import (
	"log"

	"github.com/alkime/musclememory/internal/catalog"
	"github.com/alkime/musclememory/internal/config"
	"github.com/alkime/musclememory/internal/logger"
	"github.com/alkime/musclememory/internal/server"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Setup structured logging
	slogger := logger.SetupLogger(cfg)

	cat := catalog.Default()

	slogger.Info("Starting Muscle Memory server",
		"env", cfg.Env,
		"port", cfg.Port,
		"public_dir", cfg.PublicDir,
		"groups", len(cat.Groups),
		"exercises", cat.ExerciseCount(),
	)

	srv, err := server.New(cfg, slogger, cat)
	if err != nil {
		slogger.Error("Failed to create server", "error", err)
		log.Fatalf("Fatal: %v", err)
	}

	if err := server.Run(srv); err != nil {
		slogger.Error("Failed to start server", "error", err)
		log.Fatalf("Fatal: %v", err)
	}
}
