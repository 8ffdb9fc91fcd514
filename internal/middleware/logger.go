package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/hweilin/memberhub/internal/services/auth"
	"github.com/rs/zerolog"
)

// LoggerMiddleware logs every request with its correlation id, escalating the
// level with the response status.
func (m *Middleware) LoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		var username string
		if admin, ok := auth.AdminFromContext(r.Context()); ok {
			username = admin.Username
		}

		level := zerolog.InfoLevel
		switch {
		case ww.Status() >= 500:
			level = zerolog.ErrorLevel
		case ww.Status() >= 400:
			level = zerolog.WarnLevel
		}

		m.Logger.WithLevel(level).
			Str("request_id", GetRequestID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Str("ip", r.RemoteAddr).
			Str("admin", username).
			Msg("http_request")
	})
}
