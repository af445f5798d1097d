// Package logging builds the service logger and the request logging
// middleware.
package logging

import (
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

// New returns a timestamped logger writing to w. An unknown level falls
// back to info.
func New(w io.Writer, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           lvl,
	})
}

// Discard is a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }

// Middleware logs every request at debug level and server errors at error
// level.
func Middleware(l *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)

			kv := []any{"method", r.Method, "path", r.URL.Path, "status", sw.status, "took", time.Since(start)}
			if sw.status >= http.StatusInternalServerError {
				l.Error("request failed", kv...)
				return
			}
			l.Debug("request", kv...)
		})
	}
}
