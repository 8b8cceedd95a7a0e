package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/greenloop/cleanearth/internal/domain/errors"
	"github.com/greenloop/cleanearth/internal/domain/model"
	"github.com/greenloop/cleanearth/internal/domain/repository"
	pkgAuth "github.com/greenloop/cleanearth/internal/pkg/auth"
)

const minPasswordLength = 6

// AuthUseCase handles user lifecycle and session token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// Register creates a new user with zero stats. The plaintext password is
// hashed before it ever reaches the repository.
func (u *AuthUseCase) Register(ctx context.Context, name, email, password, confirm string) (*model.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" || email == "" || password == "" || confirm == "" {
		return nil, domainErrors.NewValidation("all fields are required")
	}
	if password != confirm {
		return nil, domainErrors.NewValidation("passwords do not match")
	}
	if len(password) < minPasswordLength {
		return nil, domainErrors.NewValidation("password must be at least %d characters long", minPasswordLength)
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	usr, err := u.users.Create(ctx, name, email, hash)
	if err != nil {
		return nil, err
	}

	return usr, nil
}

// Authenticate validates credentials and returns the user with a session
// token. Unknown email and wrong password are indistinguishable to callers.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken extracts user ID from provided session token.
func (u *AuthUseCase) ParseToken(token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}
