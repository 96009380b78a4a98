package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/feedline/backend/internal/http/respond"
	"github.com/feedline/backend/internal/middleware"
	"github.com/feedline/backend/internal/models/dto"
	"github.com/feedline/backend/internal/service"
)

// PostHandler owns post CRUD endpoints. Every route is protected; edits
// and deletions are additionally ownership-guarded in the service.
type PostHandler struct {
	posts    *service.PostService
	accounts *service.AccountService
	guard    func(http.Handler) http.Handler
}

// NewPostHandler constructs the handler.
func NewPostHandler(posts *service.PostService, accounts *service.AccountService, guard func(http.Handler) http.Handler) *PostHandler {
	return &PostHandler{posts: posts, accounts: accounts, guard: guard}
}

// Register attaches post routes to the mux.
func (h *PostHandler) Register(mux *http.ServeMux) {
	protected := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, h.guard(fn))
	}
	protected("POST /posts", h.handleCreate)
	protected("GET /posts", h.handleListOwn)
	protected("GET /posts/{id}", h.handleGet)
	protected("PATCH /posts/{id}", h.handleUpdate)
	protected("DELETE /posts/{id}", h.handleDelete)
	protected("GET /posts/username/{username}", h.handleListByUsername)
}

func (h *PostHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "missing credentials")
		return
	}

	var req dto.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	post, err := h.posts.Create(r.Context(), user.ID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, post)
}

func (h *PostHandler) handleListOwn(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "missing credentials")
		return
	}
	posts, err := h.posts.ListByAuthor(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, posts)
}

func (h *PostHandler) handleListByUsername(w http.ResponseWriter, r *http.Request) {
	author, err := h.accounts.GetByUsername(r.Context(), r.PathValue("username"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	posts, err := h.posts.ListByAuthor(r.Context(), author.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, posts)
}

func (h *PostHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid post id")
		return
	}
	post, err := h.posts.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, post)
}

func (h *PostHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "missing credentials")
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid post id")
		return
	}

	var req dto.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	post, err := h.posts.Update(r.Context(), id, user.ID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, post)
}

func (h *PostHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "missing credentials")
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid post id")
		return
	}

	if err := h.posts.Delete(r.Context(), id, user.ID); err != nil {
		writeServiceError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}
