package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/polkiloo/bookcatalog/internal/domain/errors"
	"github.com/polkiloo/bookcatalog/internal/domain/model"
	"github.com/polkiloo/bookcatalog/internal/domain/repository"
	pkgAuth "github.com/polkiloo/bookcatalog/internal/pkg/auth"
)

const msgCredentialsRequired = "Username and password are required"

// AuthUseCase handles user registration, login and token verification.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// Register creates a new user with username/password.
func (u *AuthUseCase) Register(ctx context.Context, username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domainErrors.NewValidationError("", msgCredentialsRequired)
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	usr, err := u.users.Create(ctx, username, hash)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}

	return usr, nil
}

// Authenticate validates credentials and returns a signed token.
// Unknown usernames and wrong passwords both yield ErrInvalidCredentials.
func (u *AuthUseCase) Authenticate(ctx context.Context, username, password string) (*model.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, "", domainErrors.NewValidationError("", msgCredentialsRequired)
	}

	usr, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.Username)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Verify resolves token to the user it was issued for.
func (u *AuthUseCase) Verify(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, pkgAuth.ErrInvalidToken
	}

	username, err := u.tokens.ParseToken(token)
	if err != nil {
		return nil, pkgAuth.ErrInvalidToken
	}

	usr, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, pkgAuth.ErrInvalidToken
		}
		return nil, err
	}

	return usr, nil
}
