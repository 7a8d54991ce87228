package service

import (
	"context"
	"fmt"

	"github.com/Dan9191/blog-service/internal/auth"
	"github.com/Dan9191/blog-service/internal/models"
)

// CreatePost creates a post authored by the authenticated caller
func (s *Service) CreatePost(ctx context.Context, title, content string) (*models.Post, error) {
	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("identity not found in context")
	}

	if title == "" || content == "" {
		return nil, &ValidationError{Message: "Title and content are required"}
	}

	post := &models.Post{
		Title:    title,
		Content:  content,
		AuthorID: identity.UserID,
	}
	if err := s.posts.CreatePost(post); err != nil {
		return nil, err
	}

	// Re-fetch so the response carries the populated author
	created, err := s.posts.FindPostByID(post.ID)
	if err != nil {
		return nil, err
	}

	s.log.Infof("Post %d created by user %d", created.ID, identity.UserID)
	return created, nil
}

// GetPost retrieves a single post with its comments
func (s *Service) GetPost(id int64) (*models.Post, error) {
	return s.posts.FindPostByID(id)
}

// ListPosts retrieves all posts
func (s *Service) ListPosts() ([]*models.Post, error) {
	return s.posts.ListPosts()
}

// UpdatePost applies a partial update to a post. Only the author may edit,
// admins included: deletion is the admin privilege, rewriting is not.
func (s *Service) UpdatePost(ctx context.Context, id int64, title, content *string) (*models.Post, error) {
	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("identity not found in context")
	}

	post, err := s.posts.FindPostByID(id)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != identity.UserID {
		return nil, ErrForbidden
	}

	if title != nil {
		post.Title = *title
	}
	if content != nil {
		post.Content = *content
	}
	if post.Title == "" || post.Content == "" {
		return nil, &ValidationError{Message: "Title and content are required"}
	}

	if err := s.posts.UpdatePost(post); err != nil {
		return nil, err
	}

	s.log.Infof("Post %d updated by user %d", post.ID, identity.UserID)
	return post, nil
}

// DeletePost removes a post. Allowed for its author or any admin; the
// post's comments are removed with it.
func (s *Service) DeletePost(ctx context.Context, id int64) error {
	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		return fmt.Errorf("identity not found in context")
	}

	post, err := s.posts.FindPostByID(id)
	if err != nil {
		return err
	}
	if post.AuthorID != identity.UserID && !identity.IsAdmin {
		return ErrForbidden
	}

	if err := s.posts.DeletePost(id); err != nil {
		return err
	}

	s.log.Infof("Post %d deleted by user %d", id, identity.UserID)
	return nil
}
