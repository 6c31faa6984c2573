package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/mkline/storefront/internal/domain"
	"github.com/mkline/storefront/internal/repository"
)

type stubUserRepository struct {
	byEmail map[string]*domain.User
	creates int
}

func newStubUserRepository() *stubUserRepository {
	return &stubUserRepository{byEmail: make(map[string]*domain.User)}
}

func (s *stubUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	if _, ok := s.byEmail[user.Email]; ok {
		return repository.ErrConflict
	}
	copied := *user
	s.byEmail[user.Email] = &copied
	s.creates++
	return nil
}

func (s *stubUserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, ok := s.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func testService(repo repository.UserRepository) Service {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(repo, log, "test-pepper")
}

func TestSignupThenSignin(t *testing.T) {
	repo := newStubUserRepository()
	svc := testService(repo)
	ctx := context.Background()

	created, err := svc.Signup(ctx, " a@example.com ", " secret ")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if created.Email != "a@example.com" {
		t.Fatalf("expected trimmed email, got %q", created.Email)
	}
	if created.CartID != 1 {
		t.Fatalf("expected cart 1 at signup, got %d", created.CartID)
	}

	user, err := svc.Signin(ctx, "a@example.com", "secret")
	if err != nil {
		t.Fatalf("signin: %v", err)
	}
	if user.Email != created.Email {
		t.Fatalf("signin returned wrong account: %q", user.Email)
	}
}

func TestSigninWrongPassword(t *testing.T) {
	repo := newStubUserRepository()
	svc := testService(repo)
	ctx := context.Background()

	if _, err := svc.Signup(ctx, "a@example.com", "secret"); err != nil {
		t.Fatalf("signup: %v", err)
	}
	if _, err := svc.Signin(ctx, "a@example.com", "wrong"); !errors.Is(err, ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential, got %v", err)
	}
}

func TestSigninUnknownEmail(t *testing.T) {
	svc := testService(newStubUserRepository())
	if _, err := svc.Signin(context.Background(), "nobody@example.com", "secret"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSignupDuplicateEmailLeavesOriginal(t *testing.T) {
	repo := newStubUserRepository()
	svc := testService(repo)
	ctx := context.Background()

	first, err := svc.Signup(ctx, "a@example.com", "secret")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if _, err := svc.Signup(ctx, "a@example.com", "other"); !errors.Is(err, repository.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	stored := repo.byEmail["a@example.com"]
	if stored.ID != first.ID || string(stored.PasswordHash) != string(first.PasswordHash) {
		t.Fatal("original record mutated by failed duplicate signup")
	}
	if repo.creates != 1 {
		t.Fatalf("expected a single insert, got %d", repo.creates)
	}
}

func TestSignupMissingCredentials(t *testing.T) {
	svc := testService(newStubUserRepository())
	if _, err := svc.Signup(context.Background(), "  ", "secret"); !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
	if _, err := svc.Signin(context.Background(), "a@example.com", ""); !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
}
