package middleware

import (
	"net/http"
	"time"

	"github.com/finmock/finmock/pkg/logger"
)

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rw, r)

		logger.Info("Request completed", logger.Fields{
			logger.RequestIDKey: RequestIDFrom(r.Context()),
			"method":            r.Method,
			"path":              r.URL.Path,
			"status":            rw.status,
			"duration":          time.Since(start).String(),
			"remote":            r.RemoteAddr,
		})
	})
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}
