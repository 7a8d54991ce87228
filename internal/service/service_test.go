package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Dan9191/blog-service/internal/auth"
	"github.com/Dan9191/blog-service/internal/config"
	"github.com/Dan9191/blog-service/internal/models"
	"github.com/Dan9191/blog-service/internal/repository"
	"github.com/Dan9191/blog-service/internal/repository/repositorytest"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) (*Service, *repositorytest.Fake) {
	t.Helper()
	fake := repositorytest.NewFake()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	cfg := &config.Config{JWTSecret: "test-secret", TokenTTL: time.Hour}
	return NewService(fake, fake, fake, nil, logger, cfg), fake
}

func registerUser(t *testing.T, svc *Service, username, email string, admin bool) *models.User {
	t.Helper()
	user, err := svc.Register(username, email, "longpass1")
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	if admin {
		if err := svc.EnsureAdmin(email); err != nil {
			t.Fatalf("promote %s: %v", email, err)
		}
		user.IsAdmin = true
	}
	return user
}

func identityCtx(user *models.User) context.Context {
	return auth.ContextWithIdentity(context.Background(), auth.Identity{
		UserID:  user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	})
}

func TestRegisterValidationOrder(t *testing.T) {
	svc, _ := newTestService(t)

	cases := []struct {
		name     string
		username string
		email    string
		password string
		message  string
	}{
		{"bad email first", "ab", "nodomain", "short", "Invalid email format"},
		{"short username second", "ab", "a@b.com", "short", "Username must be at least 3 characters long"},
		{"short password third", "abc", "a@b.com", "1234567", "Password must be at least 8 characters long"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(tc.username, tc.email, tc.password)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if vErr.Message != tc.message {
				t.Fatalf("expected %q, got %q", tc.message, vErr.Message)
			}
		})
	}
}

func TestRegisterPasswordBoundary(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Register("abc", "a@b.com", "1234567"); err == nil {
		t.Fatalf("expected rejection of 7-char password")
	}
	user, err := svc.Register("abc", "a@b.com", "12345678")
	if err != nil {
		t.Fatalf("expected 8-char password to pass: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("12345678")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	svc, _ := newTestService(t)
	registerUser(t, svc, "abc", "a@b.com", false)

	if _, err := svc.Register("abc", "other@b.com", "longpass1"); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate for username, got %v", err)
	}
	if _, err := svc.Register("other", "a@b.com", "longpass1"); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate for email, got %v", err)
	}
}

func TestLoginByUsernameAndEmail(t *testing.T) {
	svc, _ := newTestService(t)
	user := registerUser(t, svc, "abc", "a@b.com", false)

	for _, identifier := range []string{"abc", "a@b.com"} {
		token, err := svc.Login(identifier, "longpass1")
		if err != nil {
			t.Fatalf("login with %q: %v", identifier, err)
		}
		claims, err := auth.ParseToken(token, "test-secret")
		if err != nil {
			t.Fatalf("decode token: %v", err)
		}
		if claims.UserID != user.ID {
			t.Fatalf("expected user id %d in token, got %d", user.ID, claims.UserID)
		}
		if claims.IsAdmin {
			t.Fatalf("expected non-admin claim")
		}
	}
}

func TestLoginFailures(t *testing.T) {
	svc, _ := newTestService(t)
	registerUser(t, svc, "abc", "a@b.com", false)

	if _, err := svc.Login("", ""); err == nil {
		t.Fatalf("expected validation error for empty credentials")
	}
	if _, err := svc.Login("nobody", "longpass1"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := svc.Login("abc", "wrongpass1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUpdatePostAuthorOnly(t *testing.T) {
	svc, _ := newTestService(t)
	author := registerUser(t, svc, "author", "author@b.com", false)
	other := registerUser(t, svc, "other", "other@b.com", false)
	admin := registerUser(t, svc, "admin", "admin@b.com", true)

	post, err := svc.CreatePost(identityCtx(author), "Hi", "World")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	title := "Changed"
	if _, err := svc.UpdatePost(identityCtx(other), post.ID, &title, nil); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-author, got %v", err)
	}
	// Admins may delete but not rewrite others' posts
	if _, err := svc.UpdatePost(identityCtx(admin), post.ID, &title, nil); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for admin, got %v", err)
	}

	updated, err := svc.UpdatePost(identityCtx(author), post.ID, &title, nil)
	if err != nil {
		t.Fatalf("author update: %v", err)
	}
	if updated.Title != "Changed" || updated.Content != "World" {
		t.Fatalf("unexpected partial update result: %+v", updated)
	}
}

func TestDeletePostAuthorOrAdmin(t *testing.T) {
	svc, _ := newTestService(t)
	author := registerUser(t, svc, "author", "author@b.com", false)
	other := registerUser(t, svc, "other", "other@b.com", false)
	admin := registerUser(t, svc, "admin", "admin@b.com", true)

	post, err := svc.CreatePost(identityCtx(author), "Hi", "World")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	if err := svc.DeletePost(identityCtx(other), post.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-author, got %v", err)
	}
	if err := svc.DeletePost(identityCtx(admin), post.ID); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if _, err := svc.GetPost(post.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected post gone, got %v", err)
	}
}

func TestDeletePostCascadesComments(t *testing.T) {
	svc, _ := newTestService(t)
	author := registerUser(t, svc, "author", "author@b.com", false)

	post, err := svc.CreatePost(identityCtx(author), "Hi", "World")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if _, err := svc.AddComment(identityCtx(author), "first", post.ID); err != nil {
		t.Fatalf("add comment: %v", err)
	}

	if err := svc.DeletePost(identityCtx(author), post.ID); err != nil {
		t.Fatalf("delete post: %v", err)
	}

	comments, err := svc.GetCommentsByPost(post.ID)
	if err != nil {
		t.Fatalf("list comments: %v", err)
	}
	if len(comments) != 0 {
		t.Fatalf("expected no comments after cascade, got %d", len(comments))
	}
}

func TestAddCommentRequiresExistingPost(t *testing.T) {
	svc, _ := newTestService(t)
	user := registerUser(t, svc, "abc", "a@b.com", false)

	if _, err := svc.AddComment(identityCtx(user), "hello", 999); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.AddComment(identityCtx(user), "", 1); err == nil {
		t.Fatalf("expected validation error for empty text")
	}
}

func TestDeleteCommentAuthorOrAdmin(t *testing.T) {
	svc, _ := newTestService(t)
	author := registerUser(t, svc, "author", "author@b.com", false)
	commenter := registerUser(t, svc, "commenter", "commenter@b.com", false)
	admin := registerUser(t, svc, "admin", "admin@b.com", true)

	post, err := svc.CreatePost(identityCtx(author), "Hi", "World")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	comment, err := svc.AddComment(identityCtx(commenter), "nice", post.ID)
	if err != nil {
		t.Fatalf("add comment: %v", err)
	}
	if comment.Author.Username != "commenter" {
		t.Fatalf("expected populated author, got %+v", comment.Author)
	}

	// The post author is neither the comment author nor an admin
	if err := svc.DeleteComment(identityCtx(author), comment.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := svc.DeleteComment(identityCtx(admin), comment.ID); err != nil {
		t.Fatalf("admin delete: %v", err)
	}

	second, err := svc.AddComment(identityCtx(commenter), "again", post.ID)
	if err != nil {
		t.Fatalf("add comment: %v", err)
	}
	if err := svc.DeleteComment(identityCtx(commenter), second.ID); err != nil {
		t.Fatalf("author delete: %v", err)
	}
}

func TestCreateRequiresIdentity(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.CreatePost(context.Background(), "Hi", "World"); err == nil {
		t.Fatalf("expected error without identity")
	}
	if _, err := svc.AddComment(context.Background(), "hello", 1); err == nil {
		t.Fatalf("expected error without identity")
	}
}

type recordingNotifier struct {
	welcomed chan string
}

func (n *recordingNotifier) SendWelcome(to, username string) error {
	n.welcomed <- to
	return nil
}

func TestRegisterSendsWelcome(t *testing.T) {
	fake := repositorytest.NewFake()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	cfg := &config.Config{JWTSecret: "test-secret", TokenTTL: time.Hour}
	notifier := &recordingNotifier{welcomed: make(chan string, 1)}
	svc := NewService(fake, fake, fake, notifier, logger, cfg)

	if _, err := svc.Register("abc", "a@b.com", "longpass1"); err != nil {
		t.Fatalf("register: %v", err)
	}

	select {
	case to := <-notifier.welcomed:
		if to != "a@b.com" {
			t.Fatalf("welcome sent to %s", to)
		}
	case <-time.After(time.Second):
		t.Fatalf("welcome email never sent")
	}
}
