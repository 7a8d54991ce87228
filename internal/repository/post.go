package repository

import (
	"database/sql"
	"fmt"

	"github.com/Dan9191/blog-service/internal/models"
)

// CreatePost creates a new post in the database
func (r *Repository) CreatePost(post *models.Post) error {
	query := `
		INSERT INTO blog.posts (title, content, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query, post.Title, post.Content, post.AuthorID).
		Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

// FindPostByID retrieves a post with its author and comments
func (r *Repository) FindPostByID(id int64) (*models.Post, error) {
	post := &models.Post{}
	query := `
		SELECT p.id, p.title, p.content, p.author_id, p.created_at, p.updated_at,
		       u.username, u.email
		FROM blog.posts p
		JOIN blog.users u ON p.author_id = u.id
		WHERE p.id = $1`
	err := r.db.QueryRow(query, id).
		Scan(&post.ID, &post.Title, &post.Content, &post.AuthorID,
			&post.CreatedAt, &post.UpdatedAt, &post.Author.Username, &post.Author.Email)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	post.Author.ID = post.AuthorID

	comments, err := r.ListCommentsByPost(post.ID)
	if err != nil {
		return nil, err
	}
	post.Comments = comments
	return post, nil
}

// ListPosts retrieves all posts with authors and comments, newest first
func (r *Repository) ListPosts() ([]*models.Post, error) {
	query := `
		SELECT p.id, p.title, p.content, p.author_id, p.created_at, p.updated_at,
		       u.username, u.email
		FROM blog.posts p
		JOIN blog.users u ON p.author_id = u.id
		ORDER BY p.created_at DESC`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	posts := []*models.Post{}
	byID := map[int64]*models.Post{}
	for rows.Next() {
		post := &models.Post{Comments: []*models.Comment{}}
		err := rows.Scan(&post.ID, &post.Title, &post.Content, &post.AuthorID,
			&post.CreatedAt, &post.UpdatedAt, &post.Author.Username, &post.Author.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		post.Author.ID = post.AuthorID
		posts = append(posts, post)
		byID[post.ID] = post
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	comments, err := r.listAllComments()
	if err != nil {
		return nil, err
	}
	for _, comment := range comments {
		if post, ok := byID[comment.PostID]; ok {
			post.Comments = append(post.Comments, comment)
		}
	}
	return posts, nil
}

// UpdatePost persists new title and content for a post
func (r *Repository) UpdatePost(post *models.Post) error {
	query := `
		UPDATE blog.posts
		SET title = $1, content = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $3
		RETURNING updated_at`
	err := r.db.QueryRow(query, post.Title, post.Content, post.ID).Scan(&post.UpdatedAt)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	return nil
}

// DeletePost removes a post; its comments go with it via the cascade
func (r *Repository) DeletePost(id int64) error {
	result, err := r.db.Exec(`DELETE FROM blog.posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
