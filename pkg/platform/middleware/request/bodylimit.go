package request

import "net/http"

// DefaultBodyLimit comfortably fits an invoice with a few hundred line items.
const DefaultBodyLimit int64 = 1 << 20

// BodyLimit caps request bodies; oversized reads fail with http.MaxBytesError.
func BodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
