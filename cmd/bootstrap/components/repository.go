package components

import (
	"auction-engine/internal/infra/broadcast"
	"auction-engine/internal/infra/commerce"
	"auction-engine/internal/infra/notify"
	"auction-engine/internal/infra/readstore"
	repo_impl "auction-engine/internal/infra/repository"
	"auction-engine/internal/pkg/config"
	"auction-engine/internal/usecase/commands"
	"auction-engine/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewAuctionRepository,
			fx.As(new(commands.AuctionRepository)),
		),
		fx.Annotate(
			readstore.NewAuctionReadStore,
			fx.As(new(queries.AuctionReadStore)),
		),
		// Broadcaster is provided concretely too: the websocket handler
		// needs its Subscribe side.
		broadcast.NewRedisBroadcaster,
		fx.Annotate(
			broadcast.NewRedisBroadcaster,
			fx.As(new(commands.EventBroadcaster)),
		),
		fx.Annotate(
			notify.NewNatsDispatcher,
			fx.As(new(commands.NotificationDispatcher)),
		),
		fx.Annotate(
			NewCommerceClient,
			fx.As(new(commands.CommerceClient)),
		),
	),
)

func NewCommerceClient(cfg config.Config) *commerce.Client {
	return commerce.NewClient(cfg.Commerce)
}
