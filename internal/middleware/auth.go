package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/agora-dev/agora/internal/domain"
	"github.com/agora-dev/agora/internal/jwt"
	"github.com/agora-dev/agora/internal/logger"
)

// Key to store the resolved username in the request context
type key int

const usernameKey key = 0

// Auth holds dependencies for authentication middleware
type Auth struct {
	jwtService jwt.TokenService
}

func NewAuth(jwtService jwt.TokenService) *Auth {
	return &Auth{jwtService: jwtService}
}

// OptionalAuth resolves the bearer token into a username in the request
// context. A missing, malformed or expired token downgrades the request to
// anonymous instead of failing it; anonymous is a first-class state here.
// Endpoints that require an identity must check the context themselves.
func (a *Auth) OptionalAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !found || tokenString == "" {
				next.ServeHTTP(w, r)
				return
			}

			username, err := a.jwtService.DecodeToken(tokenString)
			if err != nil {
				logger.Log.Debug("token resolution failed, proceeding anonymously", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), usernameKey, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UsernameFromContext returns the identity bound to the request, if any.
func UsernameFromContext(r *http.Request) (domain.Username, bool) {
	username, ok := r.Context().Value(usernameKey).(domain.Username)
	return username, ok
}

// WithUsername stamps an identity onto ctx. Exported for handler tests.
func WithUsername(ctx context.Context, username domain.Username) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}
