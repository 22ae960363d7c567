package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/arpmotors/siteadmin/internal/model"
	"github.com/arpmotors/siteadmin/internal/store"
)

var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password. Callers must not distinguish the two.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenExpired is returned for a well-formed token whose expiry has
	// passed.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenMalformed is returned for tokens that fail to decode or whose
	// signature does not verify.
	ErrTokenMalformed = errors.New("token malformed")
)

// dummyHash is a bcrypt digest of a random throwaway string. When a login
// names an unknown user, the password is still compared against this digest
// so the request costs the same hashing work either way and response timing
// does not reveal whether the username exists.
const dummyHash = "$2a$10$XfY0EqKKNwpDsMR3q0ONAOh8Y3pKbB0mJv7avxRLWrbmFmCtlaq0W"

// AuthService owns the admin credential check and the bearer token
// lifecycle: bcrypt verification, JWT issuance, and JWT validation.
type AuthService struct {
	store     *store.Store
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewAuthService creates an AuthService signing tokens with jwtSecret and
// issuing them with the single configured tokenTTL.
func NewAuthService(st *store.Store, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		store:     st,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

// TokenTTL returns the configured token lifetime.
func (s *AuthService) TokenTTL() time.Duration {
	return s.tokenTTL
}

// HashPassword produces a salted bcrypt digest of password. The digest is
// self-describing: it embeds the algorithm, cost, and salt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the bcrypt digest.
// Malformed digests simply fail verification.
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

// Login authenticates an admin by username and password and issues a signed
// session token. Unknown usernames and wrong passwords both fail with
// ErrInvalidCredentials; a bcrypt comparison runs in either case so the two
// are indistinguishable by timing.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *model.Admin, error) {
	admin, err := s.store.GetAdminByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			VerifyPassword(password, dummyHash)
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !VerifyPassword(password, admin.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.IssueToken(admin.Username)
	if err != nil {
		return "", nil, err
	}
	return token, admin, nil
}

// IssueToken creates a signed HS256 JWT with the given subject and the
// configured TTL.
func (s *AuthService) IssueToken(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		Issuer:    "siteadmin",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// VerifyToken validates a bearer token and returns its subject. Expired
// tokens fail with ErrTokenExpired; every other defect (bad encoding, bad
// signature, wrong algorithm) fails with ErrTokenMalformed.
func (s *AuthService) VerifyToken(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenMalformed
	}

	if !token.Valid || claims.Subject == "" {
		return "", ErrTokenMalformed
	}
	return claims.Subject, nil
}
