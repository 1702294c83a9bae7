package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vblinov/gophblog/internal/models"
	"github.com/vblinov/gophblog/internal/server/storage"
)

func setupTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	// Используем in-memory database для тестов
	storage, err := New(ctx, ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		_ = storage.Close()
	}

	return storage, cleanup
}

func createTestUser(t *testing.T, ctx context.Context, s *Storage, username string) int64 {
	id, err := s.CreateUser(ctx, &models.User{
		Username:     username,
		PasswordHash: "hash",
		CreatedAt:    time.Now(),
	})
	require.NoError(t, err)

	return id
}

func TestUserStorage_CreateUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	id1 := createTestUser(t, ctx, s, "testuser1")
	id2 := createTestUser(t, ctx, s, "testuser2")

	assert.Positive(t, id1)
	assert.NotEqual(t, id1, id2)

	// Verify user was created
	retrieved, err := s.GetUserByID(ctx, id1)
	require.NoError(t, err)
	assert.Equal(t, id1, retrieved.ID)
	assert.Equal(t, "testuser1", retrieved.Username)
	assert.Equal(t, "hash", retrieved.PasswordHash)
}

func TestUserStorage_CreateUser_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	createTestUser(t, ctx, s, "duplicate")

	_, err := s.CreateUser(ctx, &models.User{
		Username:     "duplicate", // Same username
		PasswordHash: "other",
		CreatedAt:    time.Now(),
	})
	assert.ErrorIs(t, err, storage.ErrUserAlreadyExists)
}

func TestUserStorage_GetUserByUsername(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	id := createTestUser(t, ctx, s, "alice")

	tests := []struct {
		wantError error
		name      string
		username  string
		wantID    int64
	}{
		{
			name:     "existing user",
			username: "alice",
			wantID:   id,
		},
		{
			name:      "missing user",
			username:  "bob",
			wantError: storage.ErrUserNotFound,
		},
		{
			name:      "username is case-sensitive",
			username:  "Alice",
			wantError: storage.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := s.GetUserByUsername(ctx, tt.username)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, user.ID)
				assert.Equal(t, tt.username, user.Username)
			}
		})
	}
}

func TestUserStorage_GetUserByID_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.GetUserByID(ctx, 42)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}
