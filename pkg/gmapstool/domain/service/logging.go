package service

import (
	"io"
	"log/slog"
)

const ComponentName = "GmapsTool"

// ComponentLogger tags every record with the component name. A nil logger
// discards everything.
func ComponentLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return logger.With("component", ComponentName)
}
