// Package auth implements account signup and credential verification. Session
// establishment itself lives with the HTTP layer; this service only decides
// whether an identity is valid.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mkline/storefront/internal/domain"
	"github.com/mkline/storefront/internal/repository"
	"github.com/mkline/storefront/pkg/crypto"
)

// ErrMissingCredentials indicates email or password was not supplied.
var ErrMissingCredentials = errors.New("email and password are required")

// ErrInvalidCredential indicates the password did not match.
var ErrInvalidCredential = errors.New("invalid password")

// Service handles identity workflows.
type Service struct {
	users  repository.UserRepository
	logger *slog.Logger
	pepper string
}

// New constructs a Service.
func New(users repository.UserRepository, logger *slog.Logger, pepper string) Service {
	return Service{users: users, logger: logger, pepper: pepper}
}

// Signup registers a new account. Email and password are trimmed before use;
// a duplicate email surfaces as repository.ErrConflict. No session is created.
func (s Service) Signup(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}
	hash, err := crypto.HashPassword(password, s.pepper)
	if err != nil {
		return nil, err
	}
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		CartID:       1,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info("user registered", "email", user.Email)
	return user, nil
}

// Signin verifies credentials and returns the account. An unknown email
// surfaces as repository.ErrNotFound, a bad password as ErrInvalidCredential.
func (s Service) Signin(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if err := crypto.ComparePassword(user.PasswordHash, password, s.pepper); err != nil {
		return nil, ErrInvalidCredential
	}
	s.logger.Info("user signed in", "email", user.Email)
	return user, nil
}
