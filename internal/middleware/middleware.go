package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Dan9191/blog-service/internal/auth"
	"github.com/Dan9191/blog-service/internal/config"
)

// Authenticate validates the bearer token and attaches the caller's
// identity to the request context. A missing Authorization header is a 400,
// a present but unusable token is a 403.
func Authenticate(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeAuthError(w, http.StatusBadRequest, "MISSING_TOKEN", "authentication token required")
				return
			}

			token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			if token == "" || token == header {
				writeAuthError(w, http.StatusForbidden, "INVALID_TOKEN", "malformed authorization header")
				return
			}

			claims, err := auth.ParseToken(token, cfg.JWTSecret)
			if err != nil {
				writeAuthError(w, http.StatusForbidden, "INVALID_TOKEN", "token verification failed")
				return
			}

			identity := auth.Identity{
				UserID:  claims.UserID,
				Email:   claims.Email,
				IsAdmin: claims.IsAdmin,
			}
			next.ServeHTTP(w, r.WithContext(auth.ContextWithIdentity(r.Context(), identity)))
		})
	}
}

// RequireAdmin rejects callers without the admin flag. It must run after
// Authenticate in the chain.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := auth.IdentityFromContext(r.Context())
		if !ok || !identity.IsAdmin {
			writeAuthError(w, http.StatusForbidden, "FORBIDDEN", "action forbidden")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeAuthError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]interface{}{
			"message":   message,
			"errorCode": code,
			"details":   nil,
		},
	})
}
