package service

import (
	"errors"

	"github.com/Dan9191/blog-service/internal/config"
	"github.com/Dan9191/blog-service/internal/repository"
	"github.com/sirupsen/logrus"
)

var (
	// ErrForbidden indicates the caller may not perform the action
	ErrForbidden = errors.New("action forbidden")
	// ErrUserNotFound indicates no account matches the login identifier
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials indicates a password mismatch on login
	ErrInvalidCredentials = errors.New("incorrect username/email or password")
	// ErrDuplicate indicates a username or email is already taken
	ErrDuplicate = errors.New("username or email already in use")
)

// ValidationError reports malformed or missing input
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Notifier sends account emails. Nil-able: when SMTP is not configured the
// service runs without one.
type Notifier interface {
	SendWelcome(to, username string) error
}

// Service handles business logic
type Service struct {
	users    repository.UserRepository
	posts    repository.PostRepository
	comments repository.CommentRepository
	notifier Notifier
	log      *logrus.Logger
	config   *config.Config
}

// NewService initializes a new service
func NewService(users repository.UserRepository, posts repository.PostRepository,
	comments repository.CommentRepository, notifier Notifier,
	log *logrus.Logger, cfg *config.Config) *Service {
	return &Service{
		users:    users,
		posts:    posts,
		comments: comments,
		notifier: notifier,
		log:      log,
		config:   cfg,
	}
}
