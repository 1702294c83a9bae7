// Package blog implements post operations. Update and delete enforce
// ownership: the acting user must be the post's author.
package blog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/vblinov/gophblog/internal/models"
	"github.com/vblinov/gophblog/internal/server/storage"
)

var (
	// ErrTitleRequired indicates an empty title on create or update
	ErrTitleRequired = errors.New("title is required")

	// ErrForbidden indicates the acting user is not the post's author.
	// Existence is checked first: a missing post yields storage.ErrPostNotFound
	// regardless of who asks, so non-existence is not confused with ownership
	ErrForbidden = errors.New("forbidden")
)

// Service handles blog post operations
type Service struct {
	logger *slog.Logger
	posts  storage.PostStorage
}

// NewService создает новый blog service
func NewService(logger *slog.Logger, posts storage.PostStorage) *Service {
	return &Service{
		logger: logger,
		posts:  posts,
	}
}

// List returns all posts, newest first
func (s *Service) List(ctx context.Context) ([]*models.PostWithAuthor, error) {
	return s.posts.ListPosts(ctx)
}

// Create inserts a new post owned by authorID and returns its id
func (s *Service) Create(ctx context.Context, authorID int64, title, body string) (int64, error) {
	if title == "" {
		return 0, ErrTitleRequired
	}

	post := &models.Post{
		AuthorID: authorID,
		Title:    title,
		Body:     body,
		Created:  time.Now(),
	}

	id, err := s.posts.CreatePost(ctx, post)
	if err != nil {
		return 0, fmt.Errorf("failed to create post: %w", err)
	}

	s.logger.InfoContext(ctx, "post created",
		slog.Int64("post_id", id),
		slog.Int64("author_id", authorID))

	return id, nil
}

// GetOwned returns the post only if it exists and belongs to userID.
// Returns storage.ErrPostNotFound or ErrForbidden, in that order of checks
func (s *Service) GetOwned(ctx context.Context, postID, userID int64) (*models.Post, error) {
	post, err := s.posts.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	if post.AuthorID != userID {
		return nil, ErrForbidden
	}

	return post, nil
}

// Update modifies title and body of a post owned by userID.
// The author is never reassigned
func (s *Service) Update(ctx context.Context, postID, userID int64, title, body string) error {
	if _, err := s.GetOwned(ctx, postID, userID); err != nil {
		return err
	}

	if title == "" {
		return ErrTitleRequired
	}

	if err := s.posts.UpdatePost(ctx, postID, title, body); err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	s.logger.InfoContext(ctx, "post updated",
		slog.Int64("post_id", postID),
		slog.Int64("author_id", userID))

	return nil
}

// Delete removes a post owned by userID
func (s *Service) Delete(ctx context.Context, postID, userID int64) error {
	if _, err := s.GetOwned(ctx, postID, userID); err != nil {
		return err
	}

	if err := s.posts.DeletePost(ctx, postID); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	s.logger.InfoContext(ctx, "post deleted",
		slog.Int64("post_id", postID),
		slog.Int64("author_id", userID))

	return nil
}
