package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Dan9191/blog-service/internal/models"
)

// UserRepository provides user persistence
type UserRepository interface {
	CreateUser(user *models.User) error
	FindUserByIdentifier(identifier string) (*models.User, error)
	PromoteAdmin(email string) error
}

// PostRepository provides post persistence
type PostRepository interface {
	CreatePost(post *models.Post) error
	FindPostByID(id int64) (*models.Post, error)
	ListPosts() ([]*models.Post, error)
	UpdatePost(post *models.Post) error
	DeletePost(id int64) error
}

// CommentRepository provides comment persistence
type CommentRepository interface {
	CreateComment(comment *models.Comment) error
	FindCommentByID(id int64) (*models.Comment, error)
	ListCommentsByPost(postID int64) ([]*models.Comment, error)
	DeleteComment(id int64) error
}

// StatsRepository provides reporting queries for the digest job
type StatsRepository interface {
	ContentStats(since time.Time) (*models.ContentStats, error)
	ListAdminEmails() ([]string, error)
}

// Repository provides database operations over Postgres
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const schema = `
CREATE SCHEMA IF NOT EXISTS blog;

CREATE TABLE IF NOT EXISTS blog.users (
	id            BIGSERIAL PRIMARY KEY,
	username      TEXT NOT NULL UNIQUE,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	is_admin      BOOLEAN NOT NULL DEFAULT FALSE,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS blog.posts (
	id         BIGSERIAL PRIMARY KEY,
	title      TEXT NOT NULL,
	content    TEXT NOT NULL,
	author_id  BIGINT NOT NULL REFERENCES blog.users(id),
	created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS blog.comments (
	id         BIGSERIAL PRIMARY KEY,
	text       TEXT NOT NULL,
	author_id  BIGINT NOT NULL REFERENCES blog.users(id),
	post_id    BIGINT NOT NULL REFERENCES blog.posts(id) ON DELETE CASCADE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// EnsureSchema creates the blog schema and tables if they do not exist.
// Deleting a post cascades to its comments at the database level, so the
// two never go out of sync.
func (r *Repository) EnsureSchema() error {
	if _, err := r.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
