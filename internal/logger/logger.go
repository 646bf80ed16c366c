package logger

import (
	"log/slog"
	"os"
	"strings"

	"github.com/debtwise-ledger/internal/config"
)

var levelNames = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// NewLogger builds the application's JSON slog.Logger from the
// configured level, falling back to info for unknown values
func NewLogger(cfg *config.Config) *slog.Logger {
	level, ok := levelNames[strings.ToLower(cfg.Logging.Level)]
	if !ok {
		level = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
		// Source locations only at debug
		AddSource: level == slog.LevelDebug,
	})

	logger := slog.New(handler)
	logger.Info("logger initialized", "level", level, "app", cfg.Application.Name)

	return logger
}
