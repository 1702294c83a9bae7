package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vblinov/gophblog/internal/models"
)

func TestNew_AppliesStartupPragmas(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	var fk int64
	err := s.DB().QueryRowContext(ctx, "PRAGMA foreign_keys;").Scan(&fk)
	require.NoError(t, err)
	assert.EqualValues(t, 1, fk)

	var timeout int64
	err = s.DB().QueryRowContext(ctx, "PRAGMA busy_timeout;").Scan(&timeout)
	require.NoError(t, err)
	assert.EqualValues(t, 5000, timeout)
}

func TestNew_EnforcesPostAuthorReference(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	// Пост без существующего автора должен отклоняться на уровне схемы
	_, err := s.CreatePost(ctx, &models.Post{
		AuthorID: 99,
		Title:    "orphan",
		Body:     "no such author",
		Created:  time.Now(),
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "FOREIGN KEY constraint failed")
}
