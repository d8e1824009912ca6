package logger

import (
	"log/slog"
	"time"
)

// Commands slower than this log at warn even when they succeed.
const slowCommandThreshold = 2 * time.Second

// LogCommand records one finished interaction round trip.
func LogCommand(name, user string, duration time.Duration, err error) {
	attrs := []any{
		slog.String("type", "cmd"),
		slog.String("name", name),
		slog.String("user_name", user),
		slog.Duration("took", duration),
	}

	switch {
	case err != nil:
		slog.Error("Command failed", append(attrs,
			slog.Any("error", err),
			slog.String("status", "failed"),
		)...)
	case duration > slowCommandThreshold:
		slog.Warn("Command executed slowly", append(attrs,
			slog.String("status", "slow"),
		)...)
	default:
		slog.Info("Command completed", append(attrs,
			slog.String("status", "success"),
		)...)
	}
}

// LogQuery records a save-slot database operation.
func LogQuery(op string, slot int, duration time.Duration, err error) {
	attrs := []any{
		slog.String("type", "db"),
		slog.String("op", op),
		slog.Int("slot", slot),
		slog.Duration("took", duration),
	}

	if err != nil {
		slog.Error("Query failed", append(attrs, slog.Any("error", err))...)
		return
	}
	slog.Info("Query executed", attrs...)
}

// LogSystem logs session lifecycle events.
func LogSystem(msg string, attrs ...any) {
	slog.Info(msg, append([]any{slog.String("type", "sys")}, attrs...)...)
}

// LogError logs failures outside the interaction path.
func LogError(msg string, err error, attrs ...any) {
	slog.Error(msg, append([]any{
		slog.String("type", "error"),
		slog.Any("error", err),
	}, attrs...)...)
}
