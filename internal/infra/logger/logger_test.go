package logger

import (
	"context"
	"log/slog"
	"testing"
)

func TestLevelByEnv(t *testing.T) {
	ctx := context.Background()

	if !New("dev").Enabled(ctx, slog.LevelDebug) {
		t.Error("в dev debug-уровень должен быть включён")
	}
	if New("prod").Enabled(ctx, slog.LevelDebug) {
		t.Error("вне dev debug-уровень должен быть выключен")
	}
	if !New("prod").Enabled(ctx, slog.LevelInfo) {
		t.Error("info-уровень должен работать всегда")
	}
}
