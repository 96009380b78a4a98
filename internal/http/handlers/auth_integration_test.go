package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"

	"github.com/feedline/backend/internal/auth"
	"github.com/feedline/backend/internal/middleware"
	"github.com/feedline/backend/internal/service"
	"github.com/feedline/backend/internal/storage/postgres"
)

// TestAuthIntegration exercises register/login/me against a live Postgres.
func TestAuthIntegration(t *testing.T) {
	if os.Getenv("RUN_AUTH_INTEGRATION") != "true" {
		t.Skip("set RUN_AUTH_INTEGRATION=true to run this integration test")
	}

	loadDotEnv()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Fatal("DATABASE_URL is required")
	}
	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		t.Fatal("JWT_SECRET is required")
	}

	ctx := context.Background()
	store, err := postgres.New(ctx, dbURL)
	require.NoError(t, err)
	defer store.Close()

	tokens := auth.NewTokenManager(secret, "integration-test", 30*time.Minute)
	guard := middleware.RequireUser(tokens, store)
	accounts := service.NewAccountService(store, tokens)

	mux := http.NewServeMux()
	NewAuthHandler(accounts, guard).Register(mux)

	ts := httptest.NewServer(mux)
	defer ts.Close()

	username := fmt.Sprintf("apitest_%d", time.Now().UnixNano())
	password := fmt.Sprintf("Pass!%d", time.Now().UnixNano())

	status, registered := doJSON(t, http.MethodPost, ts.URL+"/auth/register", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, username, registered["username"])

	status, loggedIn := doJSON(t, http.MethodPost, ts.URL+"/auth/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, status)
	token, _ := loggedIn["access_token"].(string)
	require.NotEmpty(t, token)

	status, me := doJSON(t, http.MethodGet, ts.URL+"/auth/me", token, nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, registered["id"], me["id"])

	// Clean up the account created above.
	userID, _ := registered["id"].(string)
	status, _ = doJSON(t, http.MethodDelete, fmt.Sprintf("%s/auth/%s", ts.URL, userID), token, nil)
	require.Equal(t, http.StatusOK, status)

	t.Logf("created user %s, logged in, and removed the account via /auth", username)
}

func loadDotEnv() {
	paths := []string{
		".env",
		"../.env",
		"../../.env",
		"../../../.env",
		"../../../../.env",
	}
	for _, path := range paths {
		_ = godotenv.Overload(path)
	}
}
