package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"auction-engine/internal/domain/auction"
	"auction-engine/internal/infra"
	"auction-engine/internal/pkg/clock"
	"auction-engine/internal/pkg/errs"
	"auction-engine/internal/pkg/metrics"
	"auction-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateAuctionParams struct {
	TenantID    string
	ProductRef  string
	Title       string
	StartTime   time.Time
	EndTime     time.Time
	StartingBid decimal.Decimal
	BuyNowPrice *decimal.Decimal
}

type AuctionCommands interface {
	Create(ctx context.Context, params CreateAuctionParams) (*queries.AuctionSnapshot, error)
	Close(ctx context.Context, id uuid.UUID) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type auctionCommandsImpl struct {
	repo        AuctionRepository
	broadcaster EventBroadcaster
	clock       clock.Clock
}

func NewAuctionCommands(repo AuctionRepository, broadcaster EventBroadcaster, clk clock.Clock) AuctionCommands {
	return &auctionCommandsImpl{
		repo:        repo,
		broadcaster: broadcaster,
		clock:       clk,
	}
}

func (u *auctionCommandsImpl) Create(ctx context.Context, params CreateAuctionParams) (*queries.AuctionSnapshot, error) {
	a, err := auction.NewAuction(
		params.TenantID, params.ProductRef, params.Title,
		params.StartTime, params.EndTime,
		params.StartingBid, params.BuyNowPrice,
		u.clock.Now(),
	)
	if err != nil {
		if errors.Is(err, auction.ErrInvalidSchedule) {
			return nil, errs.ErrInvalidSchedule
		}
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := u.repo.Create(ctx, a); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			// At most one live auction per (tenant, product).
			return nil, errs.ErrDuplicateAuction
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return snapshotOf(a), nil
}

// Close is the manual admin override: unconditionally forces closed and
// halts further bid acceptance and scheduler transitions.
func (u *auctionCommandsImpl) Close(ctx context.Context, id uuid.UUID) error {
	if err := u.repo.ForceClose(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrAuctionNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	metrics.ObserveStatusTransition(auction.StatusClosed.String())

	a, err := u.repo.FindByID(ctx, id)
	if err != nil {
		slog.Warn("failed to re-read auction for close broadcast", "auction_id", id, "error", err)
		return nil
	}
	if err := u.broadcaster.PublishStatusChange(ctx, id, auction.StatusClosed, snapshotOf(a)); err != nil {
		slog.Warn("failed to broadcast close", "auction_id", id, "error", err)
	}
	return nil
}

func (u *auctionCommandsImpl) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if err := u.repo.SoftDelete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrAuctionNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
