package httpkit

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"bazaar/internal/platform/config"
	"bazaar/internal/platform/logger"
	"bazaar/internal/platform/net/middleware"
)

// requestLogger copies the chi request id into the logger context so
// logger.C(ctx) carries request_id without knowing about chi
func requestLogger() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := logger.WithRequest(r.Context(), chimw.GetReqID(r.Context()))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CommonStack returns the default middleware chain for API routers.
// Order matters: request id first, recovery before handlers, access log last
// so it observes the final status
func CommonStack(cfg config.Conf) []func(http.Handler) http.Handler {
	timeout := cfg.MayDuration("HTTP_TIMEOUT", 30*time.Second)
	slow := cfg.MayDuration("HTTP_SLOW", 2*time.Second)

	stack := []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		requestLogger(),
		middleware.RecoverJSON,
		middleware.NoCache(),
		middleware.Timeout(timeout),
		middleware.StripSlashes(),
		middleware.Compress(5),
		middleware.AccessLog(middleware.AccessLogOptions{Slow: slow}),
	}

	if origins := cfg.MayStrings("HTTP_CORS_ORIGINS", nil); len(origins) > 0 {
		stack = append(stack, middleware.CORS(middleware.CORSOptions{
			AllowedOrigins: origins,
			MaxAge:         300,
		}))
	}
	return stack
}
