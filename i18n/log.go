package i18n

import (
	"io"
	"log/slog"
)

// discardLogger is the default when no logger is configured.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
