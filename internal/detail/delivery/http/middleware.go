package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/tair/storefront/internal/detail/domain"
	"github.com/tair/storefront/pkg/auth"
	"github.com/tair/storefront/pkg/logger"
)

type contextKey string

const (
	UserIDKey   contextKey = "user_id"
	UsernameKey contextKey = "username"
)

// OptionalAuthMiddleware validates a JWT token if present, but doesn't
// require it. Requests without a valid token proceed as guests.
func OptionalAuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			claims, err := auth.ValidateToken(parts[1])
			if err == nil {
				logger.Logger.Debug().
					Uint("user_id", claims.UserID).
					Str("username", claims.Username).
					Msg("Optional auth: user identified")

				ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
				ctx = context.WithValue(ctx, UsernameKey, claims.Username)
				r = r.WithContext(ctx)
			}
		}

		next.ServeHTTP(w, r)
	}
}

// ContextAuthProvider is the auth capability handed to the purchase
// intent handlers. It reads the identity the middleware resolved into
// the request context; absence means guest.
type ContextAuthProvider struct{}

// Identify resolves the acting user from context
func (ContextAuthProvider) Identify(ctx context.Context) (domain.Identity, bool) {
	userID, ok := ctx.Value(UserIDKey).(uint)
	if !ok {
		return domain.Identity{}, false
	}
	username, _ := ctx.Value(UsernameKey).(string)
	return domain.Identity{UserID: userID, Username: username}, true
}
