package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/vblinov/gophblog/internal/server/handlers"
	"github.com/vblinov/gophblog/internal/server/session"
	"github.com/vblinov/gophblog/internal/server/storage"
)

// Identity создает middleware, восстанавливающий пользователя из session cookie.
// Выполняется один раз в начале каждого запроса: токен -> user id -> строка users.
// Любой сбой (нет cookie, битый токен, удаленный пользователь) не является
// ошибкой — запрос продолжается как анонимный
func Identity(logger *slog.Logger, sessions *session.Manager, users storage.UserStorage) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := sessions.Resolve(sessions.TokenFromRequest(r))
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			user, err := users.GetUserByID(r.Context(), userID)
			if err != nil {
				if !errors.Is(err, storage.ErrUserNotFound) {
					logger.Error("failed to load session user",
						slog.Int64("user_id", userID),
						slog.Any("error", err))
				}
				// Stale identity: токен валиден, но пользователя больше нет
				next.ServeHTTP(w, r)
				return
			}

			logger.Debug("user authenticated",
				slog.Int64("user_id", user.ID),
				slog.String("username", user.Username))

			next.ServeHTTP(w, r.WithContext(handlers.WithUser(r.Context(), user)))
		})
	}
}

// RequireAuth guards handlers that need an authenticated user: anonymous
// requests are redirected to the login page without executing the handler
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := handlers.CurrentUser(r.Context()); !ok {
			http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
