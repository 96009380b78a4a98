package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/feedline/backend/internal/http/respond"
	"github.com/feedline/backend/internal/middleware"
	"github.com/feedline/backend/internal/models/dto"
	"github.com/feedline/backend/internal/service"
)

// AuthHandler owns registration, login, and current-account endpoints.
type AuthHandler struct {
	accounts *service.AccountService
	guard    func(http.Handler) http.Handler
}

// NewAuthHandler constructs the handler. guard is the identity-resolving
// middleware applied to protected routes.
func NewAuthHandler(accounts *service.AccountService, guard func(http.Handler) http.Handler) *AuthHandler {
	return &AuthHandler{accounts: accounts, guard: guard}
}

// Register attaches auth routes to the mux.
func (h *AuthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /auth/register", h.handleRegister)
	mux.HandleFunc("POST /auth/login", h.handleLogin)
	mux.Handle("GET /auth/me", h.guard(http.HandlerFunc(h.handleMe)))
	mux.Handle("PATCH /auth", h.guard(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("DELETE /auth/{id}", h.guard(http.HandlerFunc(h.handleDelete)))
}

func (h *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	profile, err := h.accounts.Register(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	log.Printf("registered user %s (id=%s)", profile.Username, profile.ID)
	respond.JSON(w, http.StatusCreated, profile)
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	token, err := h.accounts.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.NewAuthBody(token))
}

func (h *AuthHandler) handleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "missing credentials")
		return
	}
	respond.JSON(w, http.StatusOK, dto.NewPublicProfile(user))
}

func (h *AuthHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "missing credentials")
		return
	}

	var patch dto.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	profile, err := h.accounts.Update(r.Context(), user.ID, patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, profile)
}

func (h *AuthHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "missing credentials")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}
	// Accounts may only delete themselves.
	if err := service.Authorize(user.ID, id); err != nil {
		writeServiceError(w, err)
		return
	}

	if err := h.accounts.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]string{"message": "User deleted"})
}
