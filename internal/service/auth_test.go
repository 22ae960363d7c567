package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/arpmotors/siteadmin/internal/model"
	"github.com/arpmotors/siteadmin/internal/store"
)

const testSecret = "test-secret-key-for-jwt"

func newTestAuth(t *testing.T) (*AuthService, *store.Store) {
	t.Helper()
	st, err := store.New("")
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	auth := NewAuthService(st, testSecret, 1*time.Hour)
	return auth, st
}

func seedAdmin(t *testing.T, st *store.Store, username, password string) *model.Admin {
	t.Helper()
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	admin := &model.Admin{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
	}
	if err := st.CreateAdmin(context.Background(), admin); err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}
	return admin
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "hunter22" {
		t.Fatal("digest must not equal the plaintext")
	}
	if !VerifyPassword("hunter22", hash) {
		t.Error("expected correct password to verify")
	}
	if VerifyPassword("hunter23", hash) {
		t.Error("expected wrong password to fail")
	}
}

func TestPasswordHashFreshSalt(t *testing.T) {
	h1, _ := HashPassword("same-password")
	h2, _ := HashPassword("same-password")
	if h1 == h2 {
		t.Error("two hashes of the same password must differ (fresh salt per call)")
	}
}

func TestVerifyPasswordMalformedDigest(t *testing.T) {
	// Malformed digests must fail verification, never panic.
	for _, digest := range []string{"", "not-a-digest", "$2a$garbage"} {
		if VerifyPassword("anything", digest) {
			t.Errorf("digest %q: expected verification failure", digest)
		}
	}
}

func TestTokenRoundTrip(t *testing.T) {
	auth, _ := newTestAuth(t)

	token, err := auth.IssueToken("admin")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	subject, err := auth.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if subject != "admin" {
		t.Errorf("subject: got %q, want %q", subject, "admin")
	}
}

func TestTokenExpired(t *testing.T) {
	st, err := store.New("")
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	auth := NewAuthService(st, testSecret, -1*time.Hour)
	token, err := auth.IssueToken("admin")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	_, err = auth.VerifyToken(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	auth, st := newTestAuth(t)
	other := NewAuthService(st, "a-different-secret", 1*time.Hour)

	token, err := other.IssueToken("admin")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	_, err = auth.VerifyToken(token)
	if !errors.Is(err, ErrTokenMalformed) {
		t.Errorf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestTokenGarbage(t *testing.T) {
	auth, _ := newTestAuth(t)
	_, err := auth.VerifyToken("garbage.token.here")
	if !errors.Is(err, ErrTokenMalformed) {
		t.Errorf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestLoginSuccess(t *testing.T) {
	auth, st := newTestAuth(t)
	seedAdmin(t, st, "admin", "correct-horse")

	token, admin, err := auth.Login(context.Background(), "admin", "correct-horse")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if admin.Username != "admin" {
		t.Errorf("username: got %q, want %q", admin.Username, "admin")
	}

	subject, err := auth.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if subject != "admin" {
		t.Errorf("token subject: got %q, want %q", subject, "admin")
	}
}

func TestLoginFailuresAreUniform(t *testing.T) {
	auth, st := newTestAuth(t)
	seedAdmin(t, st, "admin", "correct-horse")

	// Wrong password for an existing user and an unknown user must fail
	// with the same sentinel.
	_, _, errWrongPass := auth.Login(context.Background(), "admin", "wrong")
	_, _, errNoUser := auth.Login(context.Background(), "nobody", "wrong")

	if !errors.Is(errWrongPass, ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPass)
	}
	if !errors.Is(errNoUser, ErrInvalidCredentials) {
		t.Errorf("unknown user: expected ErrInvalidCredentials, got %v", errNoUser)
	}
	if errWrongPass.Error() != errNoUser.Error() {
		t.Errorf("failure messages differ: %q vs %q", errWrongPass, errNoUser)
	}
}
