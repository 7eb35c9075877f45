package middlewares

import (
	"errors"
	"intake-report-service/internal/pkg/constvars"
	"intake-report-service/internal/pkg/exceptions"
	"intake-report-service/internal/pkg/utils"
	"net"
	"net/http"
	"strconv"
)

// ReportRateLimit throttles the document-build endpoint per client IP on a
// fixed window. When the limiter backend is unreachable the request goes
// through; throttling is protection, not a gate.
func (m *Middlewares) ReportRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientKey, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			clientKey = r.RemoteAddr
		}

		result, err := m.BuildRateLimiter.Evaluate(r.Context(), clientKey)
		if err != nil {
			m.Log.Warn("rate limiter unavailable, letting request through")
			next.ServeHTTP(w, r)
			return
		}

		if !result.Allowed {
			w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(result.RetryAfterSecs))
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(errors.New("report build quota exhausted")))
			return
		}

		next.ServeHTTP(w, r)
	})
}
