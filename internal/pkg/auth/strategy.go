package auth

import (
	"errors"
	"time"
)

var ErrInvalidToken = errors.New("invalid auth token")

// Strategy issues and verifies bearer tokens asserting a username.
type Strategy interface {
	IssueToken(username string) (string, error)
	ParseToken(token string) (string, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}

const defaultTTL = 24 * time.Hour

func (o Options) ttl() time.Duration {
	if o.TTL <= 0 {
		return defaultTTL
	}
	return o.TTL
}
