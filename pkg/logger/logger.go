package logger

import (
	"context"
	"errors"
	"io"

	// Packages
	log "github.com/charmbracelet/log"
	httpclient "github.com/digg/go-digg/pkg/httpclient"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Logger is a structured logger which also observes backend requests.
type Logger struct {
	*log.Logger
}

var _ httpclient.Observer = (*Logger)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a logger writing to w. Requests and responses are logged at
// debug level, so they are only written when debug is true.
func New(w io.Writer, debug bool) *Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return &Logger{
		Logger: log.NewWithOptions(w, log.Options{
			Level:           level,
			ReportTimestamp: true,
			TimeFormat:      "15:04:05",
		}),
	}
}

///////////////////////////////////////////////////////////////////////////////
// OBSERVER

func (l *Logger) LogRequest(_ context.Context, method, path string) {
	l.Debug("api request", "method", method, "path", path)
}

func (l *Logger) LogResponse(_ context.Context, status int, path string) {
	l.Debug("api response", "status", status, "path", path)
}

// LogError logs the error payload of a backend response when there is one,
// otherwise the error message.
func (l *Logger) LogError(_ context.Context, path string, err error) {
	var resp *httpclient.ResponseError
	if errors.As(err, &resp) && len(resp.Body) > 0 {
		l.Error("api error", "path", path, "status", resp.Status, "payload", string(resp.Body))
	} else {
		l.Error("api error", "path", path, "err", err)
	}
}
