package test

import (
	"context"
	"errors"

	"github.com/polkiloo/bookcatalog/internal/domain/model"
	pkgAuth "github.com/polkiloo/bookcatalog/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub issues and parses tokens via function overrides.
// By default tokens are "token-<username>".
type StrategyStub struct {
	IssueFn func(string) (string, error)
	ParseFn func(string) (string, error)
	NameVal string
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(username string) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(username)
	}
	return "token-" + username, nil
}

// ParseToken parses previously issued token strings.
func (s StrategyStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	const prefix = "token-"
	if len(token) <= len(prefix) || token[:len(prefix)] != prefix {
		return "", pkgAuth.ErrInvalidToken
	}
	return token[len(prefix):], nil
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// IdentityResolverStub implements the middleware verification contract.
type IdentityResolverStub struct {
	User     *model.User
	Err      error
	VerifyFn func(context.Context, string) (*model.User, error)
}

// Verify either delegates to override or returns predefined result.
func (s IdentityResolverStub) Verify(ctx context.Context, token string) (*model.User, error) {
	if s.VerifyFn != nil {
		return s.VerifyFn(ctx, token)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.User != nil {
		return s.User, nil
	}
	return &model.User{ID: 1, Username: "user"}, nil
}

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn func(context.Context, string, string) error
	LoginFn    func(context.Context, string, string) (string, error)
	VerifyFn   func(context.Context, string) (*model.User, error)
}

// Register succeeds unless overridden.
func (s AuthFacadeStub) Register(ctx context.Context, username, password string) error {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, username, password)
	}
	return nil
}

// Login returns token for successful authentication scenarios.
func (s AuthFacadeStub) Login(ctx context.Context, username, password string) (string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, username, password)
	}
	return "token", nil
}

// Verify returns the identity for any token unless overridden.
func (s AuthFacadeStub) Verify(ctx context.Context, token string) (*model.User, error) {
	if s.VerifyFn != nil {
		return s.VerifyFn(ctx, token)
	}
	return &model.User{ID: 1, Username: "user"}, nil
}

// CatalogFacadeStub aggregates facade dependencies for HTTP layer tests.
type CatalogFacadeStub struct {
	AuthFacadeStub
	BookFacadeStub
}

var _ pkgAuth.PasswordHasher = HasherStub{}
var _ pkgAuth.Strategy = StrategyStub{}
