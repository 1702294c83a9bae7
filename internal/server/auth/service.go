// Package auth implements credential storage operations: registering users
// and verifying username/password pairs against bcrypt hashes.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/vblinov/gophblog/internal/models"
	"github.com/vblinov/gophblog/internal/server/storage"
)

// Typed credential errors, mapped by handlers to user-visible messages
var (
	// ErrUsernameRequired indicates an empty username at registration
	ErrUsernameRequired = errors.New("username is required")

	// ErrPasswordRequired indicates an empty password at registration
	ErrPasswordRequired = errors.New("password is required")

	// ErrDuplicateUsername indicates the username is already registered
	ErrDuplicateUsername = errors.New("username already registered")

	// ErrUnknownUser indicates no user with this username exists
	ErrUnknownUser = errors.New("unknown user")

	// ErrBadPassword indicates the password does not match the stored hash
	ErrBadPassword = errors.New("bad password")
)

// dummyHash — bcrypt хеш, против которого сравниваем пароль несуществующего
// пользователя, чтобы выровнять время ответа для "unknown user" и "wrong password"
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("gophblog-dummy"), bcrypt.DefaultCost)

// Service handles registration and credential verification.
// The storage layer is the sole source of truth, nothing is cached here.
type Service struct {
	logger *slog.Logger
	users  storage.UserStorage
}

// NewService создает новый credential service
func NewService(logger *slog.Logger, users storage.UserStorage) *Service {
	return &Service{
		logger: logger,
		users:  users,
	}
}

// Register hashes the password and inserts a new user row, returning the
// assigned id. Empty fields fail with ErrUsernameRequired/ErrPasswordRequired,
// an already-taken username fails with ErrDuplicateUsername.
func (s *Service) Register(ctx context.Context, username, password string) (int64, error) {
	if username == "" {
		return 0, ErrUsernameRequired
	}
	if password == "" {
		return 0, ErrPasswordRequired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	id, err := s.users.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			return 0, ErrDuplicateUsername
		}
		return 0, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered",
		slog.String("username", username),
		slog.Int64("user_id", id))

	return id, nil
}

// Verify checks the username/password pair and returns the matched user id.
// Fails with ErrUnknownUser or ErrBadPassword; the same bcrypt comparison runs
// on both paths so the two are not trivially distinguishable by timing.
func (s *Service) Verify(ctx context.Context, username, password string) (int64, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			// Сравнение с фиктивным хешем, результат игнорируется
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return 0, ErrUnknownUser
		}
		return 0, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return 0, ErrBadPassword
	}

	return user.ID, nil
}
