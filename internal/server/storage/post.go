package storage

import (
	"context"

	"github.com/vblinov/gophblog/internal/models"
)

// PostStorage defines interface for blog post persistence
type PostStorage interface {
	// CreatePost inserts a new post and returns the assigned id
	CreatePost(ctx context.Context, post *models.Post) (int64, error)

	// GetPost retrieves a single post by id
	// Returns ErrPostNotFound if post doesn't exist
	GetPost(ctx context.Context, postID int64) (*models.Post, error)

	// ListPosts returns all posts with author usernames, newest first
	ListPosts(ctx context.Context) ([]*models.PostWithAuthor, error)

	// UpdatePost updates title and body of an existing post
	// Returns ErrPostNotFound if post doesn't exist
	UpdatePost(ctx context.Context, postID int64, title, body string) error

	// DeletePost deletes post by id
	// Returns ErrPostNotFound if post doesn't exist
	DeletePost(ctx context.Context, postID int64) error
}
