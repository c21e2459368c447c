// Package requesttime pins a single "now" per HTTP request so the document
// timestamps, audit events, and ledger entries written by one action agree.
package requesttime

import (
	"net/http"
	"time"

	"contium/pkg/requestcontext"
)

// Middleware captures the current time at the start of the request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
