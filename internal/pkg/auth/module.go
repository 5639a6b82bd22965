package auth

import (
	"log/slog"

	"github.com/polkiloo/bookcatalog/internal/config"
	"go.uber.org/fx"
)

// Module provides authentication primitives via fx.
var Module = fx.Options(
	fx.Provide(newPasswordHasher),
	fx.Provide(newTokenStrategy),
)

func newPasswordHasher() PasswordHasher {
	return NewBcryptHasher(0)
}

type strategyParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger `optional:"true"`
}

func newTokenStrategy(p strategyParams) Strategy {
	if p.Config.UsesDefaultSecret() && p.Logger != nil {
		p.Logger.Warn("signing tokens with the built-in default secret; set JWT_SECRET for production")
	}
	opts := Options{TTL: p.Config.TokenTTL}
	if p.Config.TokenStrategy == config.TokenStrategyHMAC {
		return NewHMACStrategy(p.Config.JWTSecret, opts)
	}
	return NewJWTStrategy(p.Config.JWTSecret, opts)
}
