package logger

import (
	"context"
	"testing"

	"log/slog"
)

// The channel loggers must be usable before InitLogger runs: packages log
// through them unconditionally, including under `go test` where the logger
// is never bootstrapped.
func TestChannelLoggersUsableBeforeInit(t *testing.T) {
	channels := map[string]*slog.Logger{
		"L":            L,
		"TG":           TG,
		"TWire":        TWire,
		"DB":           DB,
		"MIG":          MIG,
		"SVCGuestbook": SVCGuestbook,
		"SVCFlow":      SVCFlow,
		"SVCDraw":      SVCDraw,
		"SVCInvite":    SVCInvite,
	}

	ctx := context.Background()
	for name, ch := range channels {
		if ch == nil {
			t.Fatalf("channel %s is nil before InitLogger", name)
		}
		ch.LogAttrs(ctx, slog.LevelInfo, "noop", slog.String("channel", name))
	}
}

func TestLogEventNilLoggerDoesNotPanic(t *testing.T) {
	LogEvent(context.Background(), nil, slog.LevelInfo, "noop")
	Warn(context.Background(), "test", "noop")
}
