package middleware

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// Identify tags the request log with the caller's employee id when the request
// carries a valid access token. It never rejects a request; it expects
// jwtauth.Verifier to have run first.
func Identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			next.ServeHTTP(w, r)
			return
		}

		if tokenType, _ := claims["type"].(string); tokenType == "access" {
			httplog.SetAttrs(r.Context(),
				slog.String("employee_id", token.Subject()),
				slog.Any("role", claims["role"]),
			)
		}

		next.ServeHTTP(w, r)
	})
}
