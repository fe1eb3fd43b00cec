package auth

import (
	"context"
	"errors"

	"github.com/artem13815/usermanagement/pkg/user"
)

// ErrInvalidCredentials is the single failure for unknown email and
// wrong password alike, so responses never leak which emails exist.
var ErrInvalidCredentials = errors.New("invalid email or password")

// UserSource resolves users for authentication. Lookups are
// soft-delete aware: a deleted user reads as absent.
type UserSource interface {
	GetByEmail(ctx context.Context, email string) (user.User, error)
}

// PasswordVerifier checks a plaintext against a stored hash.
type PasswordVerifier interface {
	Verify(plain, hash string) bool
}

// AuthUseCase describes authentication behavior.
type AuthUseCase interface {
	Login(ctx context.Context, email, password string) (string, error)
}

type authService struct {
	users    UserSource
	verifier PasswordVerifier
	tokens   TokenGenerator
}

// NewAuthService returns default implementation of AuthUseCase.
func NewAuthService(users UserSource, verifier PasswordVerifier, tokens TokenGenerator) AuthUseCase {
	return &authService{users: users, verifier: verifier, tokens: tokens}
}

// Login looks the user up by email, verifies the password and issues a
// bearer token. Tokens are stateless and self-expiring; there is no
// session to store.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !s.verifier.Verify(password, u.PasswordHash) {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Generate(ctx, u)
}
