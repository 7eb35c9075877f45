package middlewares

import (
	"net/http"
)

// BodyLimit caps the request body so an oversized image payload fails fast
// instead of being buffered. The limit comes from configuration in
// megabytes.
func (m *Middlewares) BodyLimit(next http.Handler) http.Handler {
	limit := int64(m.InternalConfig.App.RequestBodyLimitInMegabyte) << 20
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, limit)
		next.ServeHTTP(w, r)
	})
}
