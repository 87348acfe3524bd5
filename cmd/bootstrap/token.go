package bootstrap

import (
	"auction-engine/internal/pkg/config"
	"auction-engine/internal/pkg/token"

	"go.uber.org/fx"
)

var TokenModule = fx.Module("token",
	fx.Provide(
		NewTokenService,
	),
)

func NewTokenService(cfg config.Config) *token.Service {
	return token.NewService(cfg.Token.Secret, cfg.Token.TTL)
}
