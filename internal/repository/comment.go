package repository

import (
	"database/sql"
	"fmt"

	"github.com/Dan9191/blog-service/internal/models"
)

// CreateComment creates a new comment in the database
func (r *Repository) CreateComment(comment *models.Comment) error {
	query := `
		INSERT INTO blog.comments (text, author_id, post_id, created_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRow(query, comment.Text, comment.AuthorID, comment.PostID).
		Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// FindCommentByID retrieves a comment with its author
func (r *Repository) FindCommentByID(id int64) (*models.Comment, error) {
	comment := &models.Comment{}
	query := `
		SELECT c.id, c.text, c.author_id, c.post_id, c.created_at, u.username
		FROM blog.comments c
		JOIN blog.users u ON c.author_id = u.id
		WHERE c.id = $1`
	err := r.db.QueryRow(query, id).
		Scan(&comment.ID, &comment.Text, &comment.AuthorID, &comment.PostID,
			&comment.CreatedAt, &comment.Author.Username)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find comment: %w", err)
	}
	comment.Author.ID = comment.AuthorID
	return comment, nil
}

// ListCommentsByPost retrieves all comments for a post, oldest first
func (r *Repository) ListCommentsByPost(postID int64) ([]*models.Comment, error) {
	query := `
		SELECT c.id, c.text, c.author_id, c.post_id, c.created_at, u.username
		FROM blog.comments c
		JOIN blog.users u ON c.author_id = u.id
		WHERE c.post_id = $1
		ORDER BY c.created_at ASC`
	return r.queryComments(query, postID)
}

// DeleteComment removes a comment
func (r *Repository) DeleteComment(id int64) error {
	result, err := r.db.Exec(`DELETE FROM blog.comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) listAllComments() ([]*models.Comment, error) {
	query := `
		SELECT c.id, c.text, c.author_id, c.post_id, c.created_at, u.username
		FROM blog.comments c
		JOIN blog.users u ON c.author_id = u.id
		ORDER BY c.created_at ASC`
	return r.queryComments(query)
}

func (r *Repository) queryComments(query string, args ...interface{}) ([]*models.Comment, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := []*models.Comment{}
	for rows.Next() {
		comment := &models.Comment{}
		err := rows.Scan(&comment.ID, &comment.Text, &comment.AuthorID, &comment.PostID,
			&comment.CreatedAt, &comment.Author.Username)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comment.Author.ID = comment.AuthorID
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}
