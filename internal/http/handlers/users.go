package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/feedline/backend/internal/http/respond"
	"github.com/feedline/backend/internal/middleware"
	"github.com/feedline/backend/internal/service"
)

// UserHandler owns user lookup and follow/unfollow endpoints. Every route
// is protected.
type UserHandler struct {
	accounts   *service.AccountService
	followings *service.FollowingService
	guard      func(http.Handler) http.Handler
}

// NewUserHandler constructs the handler.
func NewUserHandler(accounts *service.AccountService, followings *service.FollowingService, guard func(http.Handler) http.Handler) *UserHandler {
	return &UserHandler{accounts: accounts, followings: followings, guard: guard}
}

// Register attaches user routes to the mux.
func (h *UserHandler) Register(mux *http.ServeMux) {
	protected := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, h.guard(fn))
	}
	protected("GET /users", h.handleList)
	protected("GET /users/{id}", h.handleGet)
	protected("GET /users/username/{username}", h.handleGetByUsername)
	protected("POST /users/{id}/follow", h.handleFollow)
	protected("POST /users/{id}/unfollow", h.handleUnfollow)
	protected("GET /users/{id}/followings", h.handleFollowingsCount)
	protected("GET /users/{id}/followers", h.handleFollowersCount)
	protected("GET /users/{id}/followed", h.handleIsFollowed)
}

func (h *UserHandler) handleList(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.accounts.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, profiles)
}

func (h *UserHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}
	profile, err := h.accounts.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, profile)
}

func (h *UserHandler) handleGetByUsername(w http.ResponseWriter, r *http.Request) {
	profile, err := h.accounts.GetByUsername(r.Context(), r.PathValue("username"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, profile)
}

func (h *UserHandler) handleFollow(w http.ResponseWriter, r *http.Request) {
	user, target, ok := h.identityAndTarget(w, r)
	if !ok {
		return
	}
	if err := h.followings.Follow(r.Context(), user, target); err != nil {
		writeServiceError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *UserHandler) handleUnfollow(w http.ResponseWriter, r *http.Request) {
	user, target, ok := h.identityAndTarget(w, r)
	if !ok {
		return
	}
	if err := h.followings.Unfollow(r.Context(), user, target); err != nil {
		writeServiceError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *UserHandler) handleFollowingsCount(w http.ResponseWriter, r *http.Request) {
	target, ok := h.existingTarget(w, r)
	if !ok {
		return
	}
	count, err := h.followings.FollowingsCount(r.Context(), target)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]int{"count": count})
}

func (h *UserHandler) handleFollowersCount(w http.ResponseWriter, r *http.Request) {
	target, ok := h.existingTarget(w, r)
	if !ok {
		return
	}
	count, err := h.followings.FollowersCount(r.Context(), target)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]int{"count": count})
}

func (h *UserHandler) handleIsFollowed(w http.ResponseWriter, r *http.Request) {
	user, target, ok := h.identityAndTarget(w, r)
	if !ok {
		return
	}
	followed, err := h.followings.IsFollowing(r.Context(), user, target)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]bool{"isFollowed": followed})
}

// identityAndTarget resolves the authenticated account and the {id} path
// target, verifying the target exists.
func (h *UserHandler) identityAndTarget(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "missing credentials")
		return uuid.Nil, uuid.Nil, false
	}
	target, ok := h.existingTarget(w, r)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	return user.ID, target, true
}

// existingTarget parses the {id} path segment and verifies the account exists.
func (h *UserHandler) existingTarget(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid user id")
		return uuid.Nil, false
	}
	target, err := h.accounts.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return uuid.Nil, false
	}
	return target.ID, true
}
