package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/vblinov/gophblog/internal/server/auth"
	"github.com/vblinov/gophblog/internal/server/session"
)

// CredentialService defines the auth operations used by AuthHandler
type CredentialService interface {
	Register(ctx context.Context, username, password string) (int64, error)
	Verify(ctx context.Context, username, password string) (int64, error)
}

// AuthHandler обрабатывает регистрацию, вход и выход
type AuthHandler struct {
	logger      *slog.Logger
	credentials CredentialService
	sessions    *session.Manager
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, credentials CredentialService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{
		logger:      logger,
		credentials: credentials,
		sessions:    sessions,
	}
}

// Register обрабатывает GET и POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		render(w, h.logger, r, "register", nil)
		return
	}

	ctx := r.Context()
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	_, err := h.credentials.Register(ctx, username, password)
	if err != nil {
		var msg string
		switch {
		case errors.Is(err, auth.ErrUsernameRequired):
			msg = "Username is required."
		case errors.Is(err, auth.ErrPasswordRequired):
			msg = "Password is required."
		case errors.Is(err, auth.ErrDuplicateUsername):
			// Ошибка всегда показывается, перехода на login не происходит
			msg = fmt.Sprintf("User %s is already registered.", username)
		default:
			serverError(w, h.logger, "failed to register user", err)
			return
		}

		render(w, h.logger, r, "register", &templateData{
			Error: msg,
			Form:  map[string]string{"username": username},
		})
		return
	}

	http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
}

// Login обрабатывает GET и POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		render(w, h.logger, r, "login", nil)
		return
	}

	ctx := r.Context()
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	userID, err := h.credentials.Verify(ctx, username, password)
	if err != nil {
		var msg string
		switch {
		case errors.Is(err, auth.ErrUnknownUser):
			msg = "Incorrect username."
		case errors.Is(err, auth.ErrBadPassword):
			msg = "Incorrect password."
		default:
			serverError(w, h.logger, "failed to verify user", err)
			return
		}

		h.logger.WarnContext(ctx, "login failed", slog.String("username", username))

		render(w, h.logger, r, "login", &templateData{
			Error: msg,
			Form:  map[string]string{"username": username},
		})
		return
	}

	token, err := h.sessions.Establish(userID)
	if err != nil {
		serverError(w, h.logger, "failed to establish session", err)
		return
	}
	h.sessions.SetCookie(w, token)

	h.logger.InfoContext(ctx, "user logged in",
		slog.String("username", username),
		slog.Int64("user_id", userID))

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout обрабатывает GET /auth/logout
// Сессия stateless, достаточно удалить cookie на клиенте
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.ClearCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
