package logger

import (
	"log/slog"
	"os"
)

// New возвращает JSON-логгер; в dev-окружении включается debug-уровень.
func New(env string) *slog.Logger {
	level := slog.LevelInfo
	if env == "dev" {
		level = slog.LevelDebug
	}
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}
