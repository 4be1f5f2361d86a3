package service

import (
	"errors"
	"testing"

	"github.com/mikasr411/RouteBoss/internal/models"
)

type fakeAuthRepo struct {
	users  map[string]models.User
	nextID int
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{users: map[string]models.User{}}
}

func (f *fakeAuthRepo) Create(username, hash string) (int, error) {
	f.nextID++
	f.users[username] = models.User{ID: f.nextID, Username: username, PasswordHash: hash}
	return f.nextID, nil
}

func (f *fakeAuthRepo) GetByUsername(username string) (*models.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc := NewAuthService(newFakeAuthRepo(), "test-signing-key")

	id, err := svc.SignUp("jane", "s3cret")
	if err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	token, err := svc.GenerateToken("jane", "s3cret")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	gotID, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if gotID != id {
		t.Errorf("ParseToken() = %d, want %d", gotID, id)
	}
}

func TestAuthService_GenerateToken_WrongPassword(t *testing.T) {
	svc := NewAuthService(newFakeAuthRepo(), "test-signing-key")
	if _, err := svc.SignUp("jane", "s3cret"); err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	if _, err := svc.GenerateToken("jane", "wrong"); !errors.Is(err, ErrInvalidPassword) {
		t.Errorf("error = %v, want ErrInvalidPassword", err)
	}
	if _, err := svc.GenerateToken("nobody", "s3cret"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("error = %v, want ErrUserNotFound", err)
	}
}

func TestAuthService_SignUp_EmptyPassword(t *testing.T) {
	svc := NewAuthService(newFakeAuthRepo(), "test-signing-key")
	if _, err := svc.SignUp("jane", "  "); err == nil {
		t.Fatal("expected an error for a blank password")
	}
}

func TestAuthService_ParseToken_DifferentKey(t *testing.T) {
	repo := newFakeAuthRepo()
	issuer := NewAuthService(repo, "key-a")
	verifier := NewAuthService(repo, "key-b")

	if _, err := issuer.SignUp("jane", "s3cret"); err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}
	token, err := issuer.GenerateToken("jane", "s3cret")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if _, err := verifier.ParseToken(token); err == nil {
		t.Fatal("token signed with a different key must not parse")
	}
}
