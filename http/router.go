package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

// RouterConfig holds the router dependencies. A nil Limiter disables rate
// limiting. TrustProxy takes the client address from X-Forwarded-For and
// X-Real-IP; leave it off unless a proxy in front overwrites those headers.
type RouterConfig struct {
	Handler        *CompoundInterestHandler
	Limiter        *RateLimiter
	AllowedOrigins []string
	TrustProxy     bool
	Log            zerolog.Logger
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	if cfg.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(LoggingMiddleware(cfg.Log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", Health)

	var calculate http.Handler = http.HandlerFunc(cfg.Handler.Calculate)
	if cfg.Limiter != nil {
		calculate = RateLimitMiddleware(cfg.Limiter, calculate)
	}
	r.Method(http.MethodPost, "/compound-interests", calculate)

	return r
}

// LoggingMiddleware logs one line per request.
func LoggingMiddleware(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			log.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", time.Since(start)).
				Str("request_id", middleware.GetReqID(r.Context())).
				Msg("HTTP request")
		})
	}
}
