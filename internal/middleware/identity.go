package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/feedline/backend/internal/auth"
	"github.com/feedline/backend/internal/http/respond"
	"github.com/feedline/backend/internal/models"
	"github.com/feedline/backend/internal/storage"
)

type userContextKey struct{}

// WithUser returns a context carrying the resolved user.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// UserFromContext returns the user attached by RequireUser, if any.
func UserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(userContextKey{}).(models.User)
	return user, ok
}

// RequireUser enforces bearer-token authentication. On success the full
// account record is attached to the request context; handlers read it via
// UserFromContext and never re-verify the token.
//
// Every rejection except a missing header reports the same "invalid token"
// message: which check failed (malformed token, bad signature, expiry, or
// an unknown subject) is deliberately not leaked to the client.
func RequireUser(tokens *auth.TokenManager, store storage.UserStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				respond.Error(w, http.StatusUnauthorized, "missing credentials")
				return
			}

			scheme, token, ok := strings.Cut(header, " ")
			token = strings.TrimSpace(token)
			if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
				respond.Error(w, http.StatusUnauthorized, "invalid token")
				return
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				respond.Error(w, http.StatusUnauthorized, "invalid token")
				return
			}

			user, err := store.FindUserByUsername(r.Context(), claims.Subject)
			if err != nil {
				// A token for a deleted account is indistinguishable from
				// a bad token.
				if errors.Is(err, storage.ErrNotFound) {
					respond.Error(w, http.StatusUnauthorized, "invalid token")
					return
				}
				log.Printf("resolve identity %q: %v", claims.Subject, err)
				respond.Error(w, http.StatusInternalServerError, "failed to resolve identity")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}
