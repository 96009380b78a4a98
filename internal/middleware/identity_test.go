package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedline/backend/internal/auth"
	"github.com/feedline/backend/internal/models"
	"github.com/feedline/backend/internal/storage/memory"
)

func TestRequireUser(t *testing.T) {
	t.Parallel()

	tokens := auth.NewTokenManager("test-secret", "test", 30*time.Minute)
	store := memory.New()

	alice := models.User{ID: uuid.New(), Username: "alice", PasswordHash: "x"}
	_, err := store.CreateUser(context.Background(), alice)
	require.NoError(t, err)

	validToken, err := tokens.Issue("alice")
	require.NoError(t, err)
	ghostToken, err := tokens.Issue("ghost")
	require.NoError(t, err)
	expiredToken, err := auth.NewTokenManager("test-secret", "test", -1*time.Second).Issue("alice")
	require.NoError(t, err)

	var resolved models.User
	var attached bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resolved, attached = UserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	guard := RequireUser(tokens, store)(next)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "no header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "missing token segment", header: "Bearer", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + validToken, wantStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer garbage", wantStatus: http.StatusUnauthorized},
		{name: "expired token", header: "Bearer " + expiredToken, wantStatus: http.StatusUnauthorized},
		// A valid token for a deleted account behaves exactly like a bad token.
		{name: "unknown subject", header: "Bearer " + ghostToken, wantStatus: http.StatusUnauthorized},
		{name: "valid", header: "Bearer " + validToken, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attached = false
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			guard.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				require.True(t, attached)
				assert.Equal(t, alice.ID, resolved.ID)
				assert.Equal(t, "alice", resolved.Username)
			} else {
				assert.False(t, attached)
			}
		})
	}
}

func TestRequireUserRejectionBodies(t *testing.T) {
	t.Parallel()

	tokens := auth.NewTokenManager("test-secret", "test", 30*time.Minute)
	guard := RequireUser(tokens, memory.New())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	// Missing header is the only rejection that names its cause; every
	// other failure reports the same opaque message.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	guard.ServeHTTP(rec, req)
	assert.Contains(t, rec.Body.String(), "missing credentials")

	for _, header := range []string{"Bearer", "Bearer garbage"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		guard.ServeHTTP(rec, req)
		assert.Contains(t, rec.Body.String(), "invalid token", "header %q", header)
	}
}
