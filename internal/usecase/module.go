package usecase

import (
	"go.uber.org/fx"

	"github.com/polkiloo/bookcatalog/internal/config"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
	NewBookUseCase,
	newUpdatePolicy,
)

func newUpdatePolicy(cfg *config.Config) UpdatePolicy {
	return UpdatePolicy{
		ValidateDate: cfg.UpdateValidateDate,
		RejectEmpty:  cfg.UpdateRejectEmpty,
	}
}
