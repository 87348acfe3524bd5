package components

import (
	"auction-engine/internal/pkg/clock"
	"auction-engine/internal/pkg/config"
	"auction-engine/internal/pkg/token"
	"auction-engine/internal/usecase/commands"
	"auction-engine/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		fx.Annotate(
			func(s *token.Service) *token.Service { return s },
			fx.As(new(commands.AccessTokenIssuer)),
		),
		NewFulfillmentProvisioner,
		NewWinnerResolver,
		NewBidCommands,
		commands.NewAuctionCommands,
		queries.NewAuctionQueries,
	),
)

func NewFulfillmentProvisioner(
	client commands.CommerceClient,
	tokens commands.AccessTokenIssuer,
	clk clock.Clock,
	cfg config.Config,
) commands.FulfillmentProvisioner {
	return commands.NewFulfillmentProvisioner(client, tokens, cfg.Commerce.StorefrontURL, clk)
}

func NewWinnerResolver(
	repo commands.AuctionRepository,
	notifier commands.NotificationDispatcher,
	provisioner commands.FulfillmentProvisioner,
	clk clock.Clock,
	cfg config.Config,
) *commands.WinnerResolver {
	return commands.NewWinnerResolver(repo, notifier, provisioner, clk, cfg.Auction.ClaimWindow)
}

func NewBidCommands(
	repo commands.AuctionRepository,
	broadcaster commands.EventBroadcaster,
	notifier commands.NotificationDispatcher,
	resolver *commands.WinnerResolver,
	clk clock.Clock,
	cfg config.Config,
) commands.BidCommands {
	return commands.NewBidCommands(repo, broadcaster, notifier, resolver, clk, cfg.Auction.BidRetries)
}
