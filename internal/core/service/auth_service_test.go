package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dashportal/auth-service/internal/core/domain"
	"github.com/dashportal/auth-service/internal/core/password"
	"github.com/dashportal/auth-service/internal/core/token"
)

type stubAuthRepo struct {
	users map[string]*domain.User // keyed by username
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = "id-" + user.Username
	}
	r.users[copy.Username] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubAuthRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubAuthRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func newTestService(repo *stubAuthRepo) (*AuthService, password.Hasher, *token.Issuer) {
	hasher := password.NewArgon2Hasher(password.Argon2Params{MemoryKiB: 1024, Iterations: 1, Parallelism: 1})
	issuer := token.NewIssuer("test-secret", time.Hour)
	return NewAuthService(repo, hasher, issuer), hasher, issuer
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubAuthRepo()
	svc, hasher, issuer := newTestService(repo)

	user, tok, err := svc.Register(context.Background(), "alice", "pass123", domain.RoleUser)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user == nil {
		t.Fatalf("expected user, got nil")
	}
	if user.PasswordHash == "" || user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if !hasher.Verify("pass123", user.PasswordHash) {
		t.Fatalf("stored hash does not match password")
	}
	if user.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}

	// Registration issues a usable token for the new account.
	subject, role, err := issuer.Verify(tok)
	if err != nil {
		t.Fatalf("registration token invalid: %v", err)
	}
	if subject != user.ID || role != domain.RoleUser {
		t.Fatalf("unexpected token claims: subject=%s role=%s", subject, role)
	}
}

func TestAuthService_Register_DefaultRole(t *testing.T) {
	repo := newStubAuthRepo()
	svc, _, _ := newTestService(repo)

	user, _, err := svc.Register(context.Background(), "bob", "pass123", "")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role %q, got %q", domain.RoleUser, user.Role)
	}
}

func TestAuthService_Register_TrimsUsername(t *testing.T) {
	repo := newStubAuthRepo()
	svc, _, _ := newTestService(repo)

	user, _, err := svc.Register(context.Background(), "  carol  ", "pass123", domain.RoleUser)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Username != "carol" {
		t.Fatalf("expected trimmed username, got %q", user.Username)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	repo := newStubAuthRepo()
	svc, _, _ := newTestService(repo)

	if _, _, err := svc.Register(context.Background(), "", "pass", domain.RoleUser); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty username, got %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "dave", "", domain.RoleUser); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "dave", "pass", "superuser"); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubAuthRepo()
	svc, _, _ := newTestService(repo)

	if _, _, err := svc.Register(context.Background(), "alice", "pass", domain.RoleUser); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "alice", "pass2", domain.RoleUser); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("store must retain exactly one record, has %d", len(repo.users))
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAuthRepo()
	svc, _, issuer := newTestService(repo)

	registered, _, err := svc.Register(context.Background(), "carol", "s3cret", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, tok, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user == nil || user.Username != "carol" {
		t.Fatalf("unexpected user: %+v", user)
	}

	subject, role, err := issuer.Verify(tok)
	if err != nil {
		t.Fatalf("login token invalid: %v", err)
	}
	if subject != registered.ID || role != domain.RoleAdmin {
		t.Fatalf("unexpected token claims: subject=%s role=%s", subject, role)
	}
}

func TestAuthService_Login_UniformFailure(t *testing.T) {
	repo := newStubAuthRepo()
	svc, _, _ := newTestService(repo)

	if _, _, err := svc.Register(context.Background(), "dave", "goodpass", domain.RoleUser); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Wrong password and nonexistent username yield the identical error so
	// usernames cannot be enumerated through the login endpoint.
	_, _, wrongPass := svc.Login(context.Background(), "dave", "badpass")
	_, _, noUser := svc.Login(context.Background(), "ghost", "whatever")

	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", wrongPass)
	}
	if !errors.Is(noUser, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", noUser)
	}
	if wrongPass.Error() != noUser.Error() {
		t.Fatalf("login failures must be indistinguishable: %q vs %q", wrongPass, noUser)
	}
}
