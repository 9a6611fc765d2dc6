package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/eduplay/console/internal/service"
)

type contextKeyAuth string

// adminIDKey is the context key for the authenticated admin's ID.
const adminIDKey contextKeyAuth = "admin_id"

// Authenticate returns an HTTP middleware that validates the request's
// Authorization header as a Bearer token. On success the admin ID encoded in
// the token is attached to the request context as an opaque principal.
//
// A missing header, a malformed header, a garbage token, and an expired token
// all produce the identical 401 response: every failure funnels through the
// single writeUnauthenticated below, so the rejection carries no hint of the
// cause.
//
// The middleware does not check that the admin still exists in the store;
// handlers that need the full admin record resolve it themselves and treat
// absence as 404.
func Authenticate(authSvc *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				writeUnauthenticated(w)
				return
			}

			adminID, err := authSvc.ValidateToken(token)
			if err != nil {
				writeUnauthenticated(w)
				return
			}

			ctx := context.WithValue(r.Context(), adminIDKey, adminID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminID extracts the authenticated admin's ID from the context. Returns an
// empty string on an unauthenticated request.
func AdminID(ctx context.Context) string {
	if id, ok := ctx.Value(adminIDKey).(string); ok {
		return id
	}
	return ""
}

func writeUnauthenticated(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":{"code":401,"message":"Invalid authentication"}}`))
}
