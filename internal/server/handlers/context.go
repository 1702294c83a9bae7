package handlers

import (
	"context"

	"github.com/vblinov/gophblog/internal/models"
)

// contextKey тип для ключей контекста
type contextKey string

// UserKey ключ для хранения текущего пользователя в контексте
const UserKey contextKey = "user"

// WithUser returns a context carrying the resolved user. Set once per request
// by the identity middleware and read-only after that
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, UserKey, user)
}

// CurrentUser извлекает текущего пользователя из контекста запроса
// ok=false означает анонимный запрос
func CurrentUser(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(UserKey).(*models.User)
	return user, ok && user != nil
}
