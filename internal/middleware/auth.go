package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/mmynk/groupbudget/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// UserIDKey is the context key for storing the authenticated user ID.
	UserIDKey contextKey = "user_id"
	// UsernameKey is the context key for storing the authenticated username.
	UsernameKey contextKey = "username"
)

// GetUserID extracts the user ID from the context.
// Returns empty string if not found.
func GetUserID(ctx context.Context) string {
	userID, _ := ctx.Value(UserIDKey).(string)
	return userID
}

// GetUsername extracts the username from the context.
// Returns empty string if not found.
func GetUsername(ctx context.Context) string {
	username, _ := ctx.Value(UsernameKey).(string)
	return username
}

// ErrorWriter writes an error payload and status code to the response.
// Provided by the handlers package so middleware and handlers emit the
// same JSON error shape.
type ErrorWriter func(w http.ResponseWriter, status int, err error)

// RequireAuth returns middleware that validates bearer tokens and requires
// authentication. It extracts the token from the Authorization header,
// validates it, and adds the user ID and username to the request context.
func RequireAuth(jwtManager *auth.JWTManager, writeError ErrorWriter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeError(w, http.StatusUnauthorized, auth.ErrMissingToken)
				return
			}

			// Parse Bearer token
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				writeError(w, http.StatusUnauthorized, auth.ErrMissingToken)
				return
			}
			tokenString := parts[1]

			claims, err := jwtManager.Validate(tokenString)
			if err != nil {
				writeError(w, http.StatusUnauthorized, auth.ErrInvalidToken)
				return
			}

			// Add user info to context
			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, UsernameKey, claims.Username)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
