package commands

import (
	"context"
	"errors"
	"log/slog"

	"auction-engine/internal/domain/auction"
	"auction-engine/internal/infra"
	"auction-engine/internal/pkg/clock"
	"auction-engine/internal/pkg/errs"
	"auction-engine/internal/pkg/metrics"
	"auction-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BidReceipt struct {
	AuctionID  uuid.UUID
	CurrentBid decimal.Decimal
	BidCount   int
}

type BuyNowReceipt struct {
	AuctionID   uuid.UUID
	Amount      decimal.Decimal
	ListingURL  string
	AccessToken string
}

type BidCommands interface {
	PlaceBid(ctx context.Context, auctionID uuid.UUID, bidder, email string, amount decimal.Decimal) (*BidReceipt, error)
	BuyNow(ctx context.Context, auctionID uuid.UUID, buyer, email string) (*BuyNowReceipt, error)
}

type bidCommandsImpl struct {
	repo        AuctionRepository
	broadcaster EventBroadcaster
	notifier    NotificationDispatcher
	resolver    *WinnerResolver
	clock       clock.Clock
	retries     int
}

func NewBidCommands(
	repo AuctionRepository,
	broadcaster EventBroadcaster,
	notifier NotificationDispatcher,
	resolver *WinnerResolver,
	clk clock.Clock,
	retries int,
) BidCommands {
	if retries < 0 {
		retries = 0
	}
	return &bidCommandsImpl{
		repo:        repo,
		broadcaster: broadcaster,
		notifier:    notifier,
		resolver:    resolver,
		clock:       clk,
		retries:     retries,
	}
}

// PlaceBid applies the read-validate-CAS protocol: of two near-simultaneous
// bids exactly one becomes the new high bid and the loser is told it lost.
// A lost race is retried once against a fresh snapshot before surfacing.
func (u *bidCommandsImpl) PlaceBid(ctx context.Context, auctionID uuid.UUID, bidder, email string, amount decimal.Decimal) (*BidReceipt, error) {
	for attempt := 0; ; attempt++ {
		a, err := u.findAuction(ctx, auctionID)
		if err != nil {
			return nil, err
		}

		now := u.clock.Now()
		if err := a.ValidateBid(amount, now); err != nil {
			metrics.ObserveBid("rejected")
			return nil, mapBidValidationErr(err)
		}

		prevHigh := a.HighestBid()
		bid := a.NextBid(bidder, email, amount, now)

		if err := u.repo.AppendBid(ctx, auctionID, bid, a.CurrentBid()); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				if attempt < u.retries {
					continue
				}
				metrics.ObserveBid("conflict")
				return nil, errs.ErrConflictRetryExhausted
			}
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		metrics.ObserveBid("accepted")
		u.announceBid(ctx, auctionID, prevHigh, bid)

		return &BidReceipt{
			AuctionID:  auctionID,
			CurrentBid: amount,
			BidCount:   bid.Idx + 1,
		}, nil
	}
}

// BuyNow atomically records the terminal bid, forces the auction to ended and
// creates the implicit claim, then provisions the private listing. A
// provisioning failure leaves the claim in Claimed state for retry; the ended
// transition is never rolled back.
func (u *bidCommandsImpl) BuyNow(ctx context.Context, auctionID uuid.UUID, buyer, email string) (*BuyNowReceipt, error) {
	for attempt := 0; ; attempt++ {
		a, err := u.findAuction(ctx, auctionID)
		if err != nil {
			return nil, err
		}

		now := u.clock.Now()
		if err := a.ValidateBuyNow(now); err != nil {
			return nil, mapBuyNowValidationErr(err)
		}

		price := *a.BuyNowPrice()
		bid := a.NextBid(buyer, email, price, now)
		claim := auction.NewClaimedClaim(bid.Idx)

		if err := u.repo.ApplyBuyNow(ctx, auctionID, bid, a.CurrentBid(), claim); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				if attempt < u.retries {
					continue
				}
				return nil, errs.ErrConflictRetryExhausted
			}
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		metrics.ObserveBid("buy_now")
		metrics.ObserveStatusTransition(auction.StatusEnded.String())

		ended, err := u.repo.FindByID(ctx, auctionID)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		snap := snapshotOf(ended)
		if err := u.broadcaster.PublishStatusChange(ctx, auctionID, auction.StatusEnded, snap); err != nil {
			slog.Warn("failed to broadcast buy now status change", "auction_id", auctionID, "error", err)
		}

		handle, err := u.resolver.Fulfill(ctx, ended, claim, bid)
		if err != nil {
			return nil, err
		}

		return &BuyNowReceipt{
			AuctionID:   auctionID,
			Amount:      price,
			ListingURL:  handle.ListingURL,
			AccessToken: handle.AccessToken,
		}, nil
	}
}

func (u *bidCommandsImpl) findAuction(ctx context.Context, auctionID uuid.UUID) (*auction.Auction, error) {
	a, err := u.repo.FindByID(ctx, auctionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrAuctionNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return a, nil
}

func (u *bidCommandsImpl) announceBid(ctx context.Context, auctionID uuid.UUID, prevHigh *auction.Bid, bid auction.Bid) {
	a, err := u.repo.FindByID(ctx, auctionID)
	if err != nil {
		slog.Warn("failed to re-read auction for bid broadcast", "auction_id", auctionID, "error", err)
		return
	}
	if err := u.broadcaster.PublishBidUpdate(ctx, auctionID, snapshotOf(a)); err != nil {
		slog.Warn("failed to broadcast bid update", "auction_id", auctionID, "error", err)
	}
	if prevHigh != nil {
		if err := u.notifier.SendOutbidNotice(ctx, *prevHigh, auctionID, bid.Amount); err != nil {
			slog.Warn("failed to send outbid notice", "auction_id", auctionID, "error", err)
		}
	}
}

func mapBidValidationErr(err error) error {
	switch {
	case errors.Is(err, auction.ErrNotActive):
		return errs.ErrAuctionNotActive
	case errors.Is(err, auction.ErrWindowClosed):
		return errs.ErrAuctionWindowClosed
	case errors.Is(err, auction.ErrBidTooLow):
		return errs.ErrBidTooLow
	default:
		return errs.Mark(err, errs.ErrDomainValidation)
	}
}

func mapBuyNowValidationErr(err error) error {
	switch {
	case errors.Is(err, auction.ErrNotActive):
		return errs.ErrAuctionNotActive
	case errors.Is(err, auction.ErrWindowClosed):
		return errs.ErrAuctionWindowClosed
	case errors.Is(err, auction.ErrBuyNowUnavailable):
		return errs.ErrBuyNowUnavailable
	default:
		return errs.Mark(err, errs.ErrDomainValidation)
	}
}

func snapshotOf(a *auction.Auction) *queries.AuctionSnapshot {
	return queries.SnapshotOf(a)
}
