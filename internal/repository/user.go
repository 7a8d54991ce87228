package repository

import (
	"database/sql"
	"fmt"

	"github.com/Dan9191/blog-service/internal/models"
)

// CreateUser creates a new user in the database
func (r *Repository) CreateUser(user *models.User) error {
	query := `
		INSERT INTO blog.users (username, email, password_hash, is_admin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query, user.Username, user.Email, user.PasswordHash, user.IsAdmin).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindUserByIdentifier retrieves a user matching either username or email
func (r *Repository) FindUserByIdentifier(identifier string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, username, email, password_hash, is_admin, created_at, updated_at
		FROM blog.users
		WHERE username = $1 OR email = $1`
	err := r.db.QueryRow(query, identifier).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.IsAdmin, &user.CreatedAt, &user.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// PromoteAdmin sets the admin flag on the account with the given email
func (r *Repository) PromoteAdmin(email string) error {
	query := `UPDATE blog.users SET is_admin = TRUE, updated_at = CURRENT_TIMESTAMP WHERE email = $1`
	result, err := r.db.Exec(query, email)
	if err != nil {
		return fmt.Errorf("failed to promote admin: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to promote admin: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
