package repository

import (
	"fmt"
	"time"

	"github.com/Dan9191/blog-service/internal/models"
)

// ContentStats counts users, posts and comments created since the given time
func (r *Repository) ContentStats(since time.Time) (*models.ContentStats, error) {
	stats := &models.ContentStats{Since: since}
	query := `
		SELECT
			(SELECT COUNT(*) FROM blog.users    WHERE created_at >= $1),
			(SELECT COUNT(*) FROM blog.posts    WHERE created_at >= $1),
			(SELECT COUNT(*) FROM blog.comments WHERE created_at >= $1)`
	err := r.db.QueryRow(query, since).
		Scan(&stats.NewUsers, &stats.NewPosts, &stats.NewComments)
	if err != nil {
		return nil, fmt.Errorf("failed to compute content stats: %w", err)
	}
	return stats, nil
}

// ListAdminEmails returns the email addresses of all admin accounts
func (r *Repository) ListAdminEmails() ([]string, error) {
	rows, err := r.db.Query(`SELECT email FROM blog.users WHERE is_admin = TRUE`)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("failed to scan admin email: %w", err)
		}
		emails = append(emails, email)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	return emails, nil
}
