package server

import (
	"context"
	"net/http"
	"time"

	"github.com/feedline/backend/internal/auth"
	"github.com/feedline/backend/internal/config"
	"github.com/feedline/backend/internal/http/handlers"
	"github.com/feedline/backend/internal/middleware"
	"github.com/feedline/backend/internal/service"
	"github.com/feedline/backend/internal/storage"
)

// Stores bundles the persistence interfaces the server depends on.
type Stores struct {
	Users      storage.UserStore
	Followings storage.FollowingStore
	Posts      storage.PostStore
}

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up services, middleware, and routes, and returns a ready server.
func New(cfg config.Config, stores Stores) *Server {
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	guard := middleware.RequireUser(tokens, stores.Users)

	accounts := service.NewAccountService(stores.Users, tokens)
	followings := service.NewFollowingService(stores.Followings)
	posts := service.NewPostService(stores.Posts)

	mux := http.NewServeMux()
	handlers.NewHealthHandler(time.Now()).Register(mux)
	handlers.NewAuthHandler(accounts, guard).Register(mux)
	handlers.NewUserHandler(accounts, followings, guard).Register(mux)
	handlers.NewPostHandler(posts, accounts, guard).Register(mux)

	handler := middleware.CORS(cfg.CORSOrigins, middleware.Logging(mux))

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
