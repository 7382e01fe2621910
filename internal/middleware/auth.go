package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/todolist/todolist-go/internal/crypto"
)

type contextKey string

const emailKey contextKey = "email"

// JWTAuth returns middleware that validates the token in the Authorization
// header and injects the authenticated email into the request context.
//
// A missing or blank header is 401; a presented token that fails
// verification is 403 with a generic message. The verification failure
// taxonomy (expired vs bad signature) is logged server-side only.
//
// The "Bearer " prefix is optional: the browser client sends the raw token,
// so the whole header value is treated as the token when the prefix is
// absent.
func JWTAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
			if authHeader == "" {
				writeDetail(w, http.StatusUnauthorized, "token not provided")
				return
			}

			token := authHeader
			if stripped, found := strings.CutPrefix(authHeader, "Bearer "); found {
				token = stripped
			}

			claims, err := crypto.ValidateToken(token, secret)
			if err != nil {
				slog.Warn("token verification failed",
					"path", r.URL.Path,
					"remote_addr", r.RemoteAddr,
					"error", err,
				)
				writeDetail(w, http.StatusForbidden, "failed to authenticate")
				return
			}

			ctx := context.WithValue(r.Context(), emailKey, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// EmailFromContext extracts the authenticated email from the request context.
func EmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(emailKey).(string)
	return email, ok
}

func writeDetail(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"detail": msg})
}
