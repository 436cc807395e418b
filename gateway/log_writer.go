package gateway

import (
	"bytes"
	"log/slog"
)

// logWriter feeds line oriented output (access logs, recovered panics)
// into a slog.Logger.
type logWriter struct {
	logger  *slog.Logger
	source  string
	isError bool
}

func (w *logWriter) Write(p []byte) (int, error) {
	msg := string(bytes.TrimRight(p, "\n"))
	if msg == "" {
		return len(p), nil
	}
	if w.isError {
		w.logger.Error(msg, "source", w.source)
	} else {
		w.logger.Info(msg, "source", w.source)
	}
	return len(p), nil
}
