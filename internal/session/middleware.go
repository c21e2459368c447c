package session

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"contium/internal/user"
	"contium/pkg/platform/httputil"
	"contium/pkg/requestcontext"
)

// Resolver maps a bearer token to its participant.
type Resolver interface {
	Resolve(ctx context.Context, token string) (*user.User, error)
}

// Authenticate attaches the session actor to the request context. Requests
// without an Authorization header pass through anonymously so handlers
// decide whether a session is required. A malformed or invalid token is
// rejected with 401.
func Authenticate(resolver Resolver, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}
			ctx := r.Context()
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				token = ""
			}
			u, err := resolver.Resolve(ctx, strings.TrimSpace(token))
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - invalid session",
					"error", err,
					"request_id", requestcontext.RequestID(ctx),
				)
				httputil.WriteError(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(user.WithActor(ctx, u.Actor())))
		})
	}
}
