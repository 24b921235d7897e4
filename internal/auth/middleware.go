package auth

import (
	"net/http"
	"strings"

	"libcatalog/internal/httpx"
)

// Middleware rejects requests without a valid bearer token and stores the
// acting user in the request context.
func Middleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				httpx.JSONError(r, w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing or invalid token", nil)
				return
			}

			claims, err := ParseToken(secret, strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				httpx.JSONError(r, w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing or invalid token", nil)
				return
			}

			ctx := httpx.ContextWithUser(r.Context(), claims.Sub, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin gates a handler on the admin role. It must run after
// Middleware.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if httpx.RoleFrom(r) != httpx.RoleAdmin {
			httpx.JSONError(r, w, http.StatusForbidden, "FORBIDDEN", "Admin access required", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}
