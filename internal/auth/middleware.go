package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	httperrors "github.com/quizzfoot/platform/pkg/http/errors"
)

type contextKey int

const claimsKey contextKey = iota

// ClaimsFromContext extracts verified claims injected by Middleware.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*Claims)
	return claims, ok && claims != nil
}

// Middleware validates bearer tokens and injects claims into the request
// context. Requests without an Authorization header pass through
// unauthenticated; RequireAuth gates the routes that need identity.
func Middleware(verifier *Verifier, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				httperrors.RespondUnauthorized(w, httperrors.ErrCodeInvalidToken, "Invalid authorization header")
				return
			}

			claims, err := verifier.Verify(parts[1])
			if err != nil {
				logger.Warn().Err(err).Msg("token validation failed")
				httperrors.RespondUnauthorized(w, httperrors.ErrCodeInvalidToken, "Invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
		})
	}
}

// RequireRegistered ensures the request carries verified claims for a
// non-guest account. Profile-backed routes need a durable identity.
func RequireRegistered(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			httperrors.RespondUnauthorized(w, httperrors.ErrCodeAuthenticationRequired, "Authentication required")
			return
		}
		if claims.Guest {
			httperrors.RespondForbidden(w, httperrors.ErrCodeForbidden, "Guest accounts cannot access this resource")
			return
		}
		next.ServeHTTP(w, r)
	})
}
