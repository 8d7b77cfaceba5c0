package service

import (
	"errors"
	"testing"

	"smart_climate"

	"golang.org/x/crypto/bcrypt"
)

const testSigningKey = "test-signing-key"

type fakeAuthRepo struct {
	createID  int
	createErr error
	users     map[string]*smart_climate.User
	getErr    error
}

func (f *fakeAuthRepo) Create(username, hash string) (int, error) {
	return f.createID, f.createErr
}

func (f *fakeAuthRepo) GetByUsername(username string) (*smart_climate.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.users[username], nil
}

func TestAuthService_SignUp_RejectsEmptyPassword(t *testing.T) {
	svc := NewAuthService(&fakeAuthRepo{}, testSigningKey)
	if _, err := svc.SignUp("alice", "   "); err == nil {
		t.Fatalf("expected error for blank password")
	}
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	repo := &fakeAuthRepo{
		users: map[string]*smart_climate.User{
			"alice": {ID: 42, Username: "alice", PasswordHash: string(hash)},
		},
	}
	svc := NewAuthService(repo, testSigningKey)

	token, err := svc.GenerateToken("alice", "s3cret")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	id, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if id != 42 {
		t.Fatalf("got user id %d, want 42", id)
	}
}

func TestAuthService_GenerateToken_Failures(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	repo := &fakeAuthRepo{
		users: map[string]*smart_climate.User{
			"alice": {ID: 1, Username: "alice", PasswordHash: string(hash)},
		},
	}
	svc := NewAuthService(repo, testSigningKey)

	if _, err := svc.GenerateToken("bob", "whatever"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := svc.GenerateToken("alice", "wrong"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword, got %v", err)
	}
}

func TestAuthService_ParseToken_RejectsForeignKey(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	repo := &fakeAuthRepo{
		users: map[string]*smart_climate.User{
			"alice": {ID: 1, Username: "alice", PasswordHash: string(hash)},
		},
	}
	issuer := NewAuthService(repo, "key-one")
	verifier := NewAuthService(repo, "key-two")

	token, err := issuer.GenerateToken("alice", "s3cret")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := verifier.ParseToken(token); err == nil {
		t.Fatalf("token signed with another key must not parse")
	}
}
