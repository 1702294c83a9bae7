package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vblinov/gophblog/internal/models"
	"github.com/vblinov/gophblog/internal/server/storage"
)

// CreatePost inserts a new post and returns the assigned id
func (s *Storage) CreatePost(ctx context.Context, post *models.Post) (int64, error) {
	query := `
		INSERT INTO posts (author_id, title, body, created)
		VALUES (?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		post.AuthorID,
		post.Title,
		post.Body,
		post.Created,
	)

	if err != nil {
		return 0, fmt.Errorf("failed to insert post: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get insert id: %w", err)
	}

	return id, nil
}

// GetPost retrieves a single post by id
func (s *Storage) GetPost(ctx context.Context, postID int64) (*models.Post, error) {
	query := `
		SELECT id, author_id, title, body, created
		FROM posts
		WHERE id = ?
	`

	post := &models.Post{}

	err := s.db.QueryRowContext(ctx, query, postID).Scan(
		&post.ID,
		&post.AuthorID,
		&post.Title,
		&post.Body,
		&post.Created,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

// ListPosts returns all posts with author usernames, newest first
func (s *Storage) ListPosts(ctx context.Context) ([]*models.PostWithAuthor, error) {
	query := `
		SELECT p.id, p.author_id, p.title, p.body, p.created, u.username
		FROM posts p
		JOIN users u ON u.id = p.author_id
		ORDER BY p.created DESC, p.id DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]*models.PostWithAuthor, 0)
	for rows.Next() {
		post := &models.PostWithAuthor{}
		if err := rows.Scan(
			&post.ID,
			&post.AuthorID,
			&post.Title,
			&post.Body,
			&post.Created,
			&post.AuthorName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}

	return posts, nil
}

// UpdatePost updates title and body of an existing post
func (s *Storage) UpdatePost(ctx context.Context, postID int64, title, body string) error {
	query := `UPDATE posts SET title = ?, body = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, title, body, postID)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrPostNotFound
	}

	return nil
}

// DeletePost deletes post by id
func (s *Storage) DeletePost(ctx context.Context, postID int64) error {
	query := `DELETE FROM posts WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrPostNotFound
	}

	return nil
}
