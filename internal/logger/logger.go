package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/alkime/musclememory/internal/config"
)

// SetupLogger configures structured JSON logging for the server.
func SetupLogger(cfg *config.Config) *slog.Logger {
	return setup(slog.NewJSONHandler(os.Stdout, options(cfg)))
}

// SetupTextLogger configures human-readable logging for CLI commands.
func SetupTextLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	//nolint:exhaustruct // Using default values for other HandlerOptions fields
	return setup(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Level determines the log level from the environment and LOG_LEVEL.
func Level(cfg *config.Config) slog.Level {
	logLevel := slog.LevelInfo
	if cfg.Env == config.EnvDevelopment {
		logLevel = slog.LevelDebug
	}
	if cfg.LogLevel == "debug" {
		logLevel = slog.LevelDebug
	}

	return logLevel
}

func options(cfg *config.Config) *slog.HandlerOptions {
	//nolint:exhaustruct // Using default values for other HandlerOptions fields
	return &slog.HandlerOptions{
		Level: Level(cfg),
	}
}

func setup(handler slog.Handler) *slog.Logger {
	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}
