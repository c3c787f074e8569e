package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/mmynk/groupbudget/internal/auth"
	"github.com/mmynk/groupbudget/internal/models"
	"github.com/mmynk/groupbudget/internal/storage"
)

// Validation failures carry the exact message returned to clients.
var (
	ErrInvalidRequest  = errors.New("Invalid request")
	ErrInvalidPassword = errors.New("Password must be 8-32 characters long")
	ErrBadUsernameChar = errors.New("Username must contain only letters and numbers")
	ErrInvalidEmail    = errors.New("Invalid email address")
	ErrBadUsernameLen  = errors.New("Username must be between 4 and 32 characters long")
	ErrUserExists      = errors.New("User already exists")
	ErrUserNotFound    = errors.New("User not found")
	ErrWrongPassword   = errors.New("Invalid password")
)

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// AuthService implements the registration and login workflows.
type AuthService struct {
	store      storage.Store
	jwtManager *auth.JWTManager
	logger     *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(store storage.Store, jwtManager *auth.JWTManager, logger *slog.Logger) *AuthService {
	return &AuthService{
		store:      store,
		jwtManager: jwtManager,
		logger:     logger,
	}
}

// Register validates new-account input and persists the user.
//
// Rules run in a fixed order, each short-circuiting with its own message:
// field presence, password length, username charset, email syntax,
// username length. Uniqueness is left to the store's constraints.
func (s *AuthService) Register(ctx context.Context, username, email, password string) error {
	s.logger.Info("Register request", "username", username)

	if username == "" || email == "" || password == "" {
		return ErrInvalidRequest
	}
	if len(password) < 8 || len(password) > 32 {
		return ErrInvalidPassword
	}
	if !usernameRe.MatchString(username) {
		return ErrBadUsernameChar
	}
	if !emailRe.MatchString(email) {
		return ErrInvalidEmail
	}
	if len(username) < 4 || len(username) > 32 {
		return ErrBadUsernameLen
	}

	hash, salt, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.NewUser(username, email, hash, salt)
	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			s.logger.Warn("Registration conflict", "username", username)
			return ErrUserExists
		}
		s.logger.Error("Registration failed", "username", username, "error", err)
		return err
	}

	s.logger.Info("User registered", "user_id", user.ID, "username", username)
	return nil
}

// Login verifies credentials and issues a session token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	s.logger.Info("Login request", "username", username)

	if username == "" || password == "" {
		return "", ErrInvalidRequest
	}

	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", ErrUserNotFound
		}
		s.logger.Error("Login lookup failed", "username", username, "error", err)
		return "", err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		s.logger.Warn("Login failed", "username", username)
		return "", ErrWrongPassword
	}

	token, err := s.jwtManager.Generate(user.ID, user.Username)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return "", err
	}

	s.logger.Info("User logged in", "user_id", user.ID, "username", username)
	return token, nil
}
