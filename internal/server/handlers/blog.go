package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/vblinov/gophblog/internal/models"
	"github.com/vblinov/gophblog/internal/server/blog"
	"github.com/vblinov/gophblog/internal/server/storage"
)

// BlogService defines the post operations used by BlogHandler
type BlogService interface {
	List(ctx context.Context) ([]*models.PostWithAuthor, error)
	Create(ctx context.Context, authorID int64, title, body string) (int64, error)
	GetOwned(ctx context.Context, postID, userID int64) (*models.Post, error)
	Update(ctx context.Context, postID, userID int64, title, body string) error
	Delete(ctx context.Context, postID, userID int64) error
}

// BlogHandler обрабатывает операции с записями блога
type BlogHandler struct {
	logger *slog.Logger
	posts  BlogService
}

// NewBlogHandler создает новый handler для блога
func NewBlogHandler(logger *slog.Logger, posts BlogService) *BlogHandler {
	return &BlogHandler{
		logger: logger,
		posts:  posts,
	}
}

// Index обрабатывает GET /
// Список записей доступен и анонимным пользователям
func (h *BlogHandler) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.List(r.Context())
	if err != nil {
		serverError(w, h.logger, "failed to list posts", err)
		return
	}

	render(w, h.logger, r, "index", &templateData{Posts: posts})
}

// Create обрабатывает GET и POST /create (за guard-ом)
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := CurrentUser(r.Context())
	if !ok {
		http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
		return
	}

	if r.Method != http.MethodPost {
		render(w, h.logger, r, "create", nil)
		return
	}

	title := r.PostFormValue("title")
	body := r.PostFormValue("body")

	if _, err := h.posts.Create(r.Context(), user.ID, title, body); err != nil {
		if errors.Is(err, blog.ErrTitleRequired) {
			render(w, h.logger, r, "create", &templateData{
				Error: "Title is required.",
				Form:  map[string]string{"title": title, "body": body},
			})
			return
		}
		serverError(w, h.logger, "failed to create post", err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Update обрабатывает GET и POST /{id}/update (за guard-ом)
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := CurrentUser(r.Context())
	if !ok {
		http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
		return
	}

	postID, ok := postIDFromRequest(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if r.Method != http.MethodPost {
		post, err := h.posts.GetOwned(r.Context(), postID, user.ID)
		if err != nil {
			h.ownershipError(w, r, err)
			return
		}
		render(w, h.logger, r, "update", &templateData{Post: post})
		return
	}

	title := r.PostFormValue("title")
	body := r.PostFormValue("body")

	if err := h.posts.Update(r.Context(), postID, user.ID, title, body); err != nil {
		if errors.Is(err, blog.ErrTitleRequired) {
			post, getErr := h.posts.GetOwned(r.Context(), postID, user.ID)
			if getErr != nil {
				h.ownershipError(w, r, getErr)
				return
			}
			render(w, h.logger, r, "update", &templateData{
				Error: "Title is required.",
				Form:  map[string]string{"title": title, "body": body},
				Post:  post,
			})
			return
		}
		h.ownershipError(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Delete обрабатывает POST /{id}/delete (за guard-ом)
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := CurrentUser(r.Context())
	if !ok {
		http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
		return
	}

	postID, ok := postIDFromRequest(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if err := h.posts.Delete(r.Context(), postID, user.ID); err != nil {
		h.ownershipError(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ownershipError транслирует ошибки ownership check в HTTP статусы:
// несуществующая запись -> 404, чужая запись -> 403
func (h *BlogHandler) ownershipError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, storage.ErrPostNotFound):
		http.NotFound(w, r)
	case errors.Is(err, blog.ErrForbidden):
		http.Error(w, "Forbidden", http.StatusForbidden)
	default:
		serverError(w, h.logger, "post operation failed", err)
	}
}

// postIDFromRequest извлекает id записи из path parameter (Go 1.22+)
func postIDFromRequest(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
