package components

import (
	"auction-engine/internal/handler"
	"auction-engine/internal/handler/api"
	"auction-engine/internal/handler/middleware"
	"auction-engine/internal/handler/ws"
	"auction-engine/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuctionHandler,
		api.NewBidHandler,
		ws.NewLiveHandler,
		NewAdminAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAdminAuthMiddleware(cfg config.Config) *middleware.AdminAuthMiddleware {
	return middleware.NewAdminAuthMiddleware(cfg.Admin)
}
