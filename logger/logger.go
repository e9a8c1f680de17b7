package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Logger is the process-wide structured logger. It defaults to a JSON
// handler at Info level so packages can log before Init runs.
var Logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// Init configures the global logger from the LOG_LEVEL environment variable.
func Init() {
	level := parseLevel(os.Getenv("LOG_LEVEL"))

	Logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(Logger)

	Logger.Info("Logger initialized", "level", level.String())
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
