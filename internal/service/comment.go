package service

import (
	"context"
	"fmt"

	"github.com/Dan9191/blog-service/internal/auth"
	"github.com/Dan9191/blog-service/internal/models"
)

// AddComment attaches a comment to an existing post
func (s *Service) AddComment(ctx context.Context, text string, postID int64) (*models.Comment, error) {
	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("identity not found in context")
	}

	if text == "" {
		return nil, &ValidationError{Message: "Comment text is required"}
	}

	// The post must exist before anything is written
	if _, err := s.posts.FindPostByID(postID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Text:     text,
		PostID:   postID,
		AuthorID: identity.UserID,
	}
	if err := s.comments.CreateComment(comment); err != nil {
		return nil, err
	}

	created, err := s.comments.FindCommentByID(comment.ID)
	if err != nil {
		return nil, err
	}

	s.log.Infof("Comment %d added to post %d by user %d", created.ID, postID, identity.UserID)
	return created, nil
}

// GetCommentsByPost retrieves all comments for a post
func (s *Service) GetCommentsByPost(postID int64) ([]*models.Comment, error) {
	return s.comments.ListCommentsByPost(postID)
}

// DeleteComment removes a comment. Allowed for its author or any admin.
func (s *Service) DeleteComment(ctx context.Context, id int64) error {
	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		return fmt.Errorf("identity not found in context")
	}

	comment, err := s.comments.FindCommentByID(id)
	if err != nil {
		return err
	}
	if comment.AuthorID != identity.UserID && !identity.IsAdmin {
		return ErrForbidden
	}

	if err := s.comments.DeleteComment(id); err != nil {
		return err
	}

	s.log.Infof("Comment %d deleted by user %d", id, identity.UserID)
	return nil
}
