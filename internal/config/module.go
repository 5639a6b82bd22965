package config

import "go.uber.org/fx"

// Module provides *Config loaded from .env, environment and flags.
var Module = fx.Provide(Load)
