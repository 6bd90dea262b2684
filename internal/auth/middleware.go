package auth

import (
	"context"
	"net/http"
	"strings"
)

// CookieName is where the admin session token is stored.
const CookieName = "auth-token"

type ctxKey struct{}

// RequireAdmin blocks requests without a valid admin token (session cookie
// or bearer header) and stores the claims in the request context.
func RequireAdmin(signingKey, issuer string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := ""
			if c, err := r.Cookie(CookieName); err == nil {
				tokenStr = c.Value
			}
			if tokenStr == "" {
				authz := r.Header.Get("Authorization")
				if strings.HasPrefix(strings.ToLower(authz), "bearer ") {
					tokenStr = strings.TrimSpace(authz[len("bearer "):])
				}
			}
			if tokenStr == "" {
				unauthorized(w)
				return
			}
			claims, err := Parse(tokenStr, signingKey, issuer)
			if err != nil || claims.Role != "admin" {
				unauthorized(w)
				return
			}
			ctx := context.WithValue(r.Context(), ctxKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromContext returns the claims stored by RequireAdmin.
func FromContext(ctx context.Context) (Claims, bool) {
	claims, ok := ctx.Value(ctxKey{}).(Claims)
	return claims, ok
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"success":false,"error":"Unauthorized access"}`))
}
