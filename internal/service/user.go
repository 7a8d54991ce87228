package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Dan9191/blog-service/internal/auth"
	"github.com/Dan9191/blog-service/internal/models"
	"github.com/Dan9191/blog-service/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// Register creates a new user with hashed password. Validation short-circuits
// on the first failure: email form, then username length, then password length.
func (s *Service) Register(username, email, password string) (*models.User, error) {
	if !strings.Contains(email, "@") {
		return nil, &ValidationError{Message: "Invalid email format"}
	}
	if len(username) < 3 {
		return nil, &ValidationError{Message: "Username must be at least 3 characters long"}
	}
	if len(password) < 8 {
		return nil, &ValidationError{Message: "Password must be at least 8 characters long"}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.users.CreateUser(user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}

	if s.notifier != nil {
		go func() {
			if err := s.notifier.SendWelcome(user.Email, user.Username); err != nil {
				s.log.Warnf("Welcome email for %s not sent: %v", user.Email, err)
			}
		}()
	}

	s.log.Infof("User registered: %s", user.Email)
	return user, nil
}

// Login authenticates a user by username or email and returns a JWT token
func (s *Service) Login(identifier, password string) (string, error) {
	if identifier == "" || password == "" {
		return "", &ValidationError{Message: "Username or Email and Password are required"}
	}

	user, err := s.users.FindUserByIdentifier(identifier)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	tokenString, err := auth.CreateAccessToken(user, s.config.JWTSecret, s.config.TokenTTL)
	if err != nil {
		return "", err
	}

	s.log.Infof("User logged in: %s", user.Email)
	return tokenString, nil
}

// EnsureAdmin promotes the configured bootstrap account if it exists
func (s *Service) EnsureAdmin(email string) error {
	if email == "" {
		return nil
	}
	err := s.users.PromoteAdmin(email)
	if errors.Is(err, repository.ErrNotFound) {
		s.log.Warnf("Admin bootstrap skipped: no account for %s", email)
		return nil
	}
	if err != nil {
		return err
	}
	s.log.Infof("Admin privileges ensured for %s", email)
	return nil
}
