package queries

import (
	"context"
	"time"

	"auction-engine/internal/domain/auction"
	"auction-engine/internal/infra"
	"auction-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)
type AuctionSnapshot struct {
	ID          uuid.UUID        `json:"id"`
	TenantID    string           `json:"tenant_id"`
	ProductRef  string           `json:"product_ref"`
	Title       string           `json:"title"`
	Status      string           `json:"status"`
	StartingBid decimal.Decimal  `json:"starting_bid"`
	CurrentBid  decimal.Decimal  `json:"current_bid"`
	BuyNowPrice *decimal.Decimal `json:"buy_now_price,omitempty"`
	BidCount    int              `json:"bid_count"`
	TopBidder   *string          `json:"top_bidder,omitempty"`
	StartTime   time.Time        `json:"start_time"`
	EndTime     time.Time        `json:"end_time"`
	Result      *string          `json:"result,omitempty"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

type BidView struct {
	Idx      int             `json:"idx"`
	Bidder   string          `json:"bidder"`
	Amount   decimal.Decimal `json:"amount"`
	PlacedAt time.Time       `json:"placed_at"`
}

type AuctionListItem struct {
	ID         uuid.UUID       `json:"id"`
	ProductRef string          `json:"product_ref"`
	Title      string          `json:"title"`
	Status     string          `json:"status"`
	CurrentBid decimal.Decimal `json:"current_bid"`
	BidCount   int             `json:"bid_count"`
	EndTime    time.Time       `json:"end_time"`
	Result     *string         `json:"result,omitempty"`
}

// SnapshotOf projects a write-side entity into the read model, used when a
// command already holds the fresh entity and a store round-trip would be
// wasted.
func SnapshotOf(a *auction.Auction) *AuctionSnapshot {
	var topBidder *string
	if hb := a.HighestBid(); hb != nil {
		topBidder = &hb.Bidder
	}
	var result *string
	if r := a.Result(); r != nil {
		s := string(*r)
		result = &s
	}
	return &AuctionSnapshot{
		ID:          a.ID(),
		TenantID:    a.TenantID(),
		ProductRef:  a.ProductRef(),
		Title:       a.Title(),
		Status:      a.Status().String(),
		StartingBid: a.StartingBid(),
		CurrentBid:  a.CurrentBid(),
		BuyNowPrice: a.BuyNowPrice(),
		BidCount:    a.BidCount(),
		TopBidder:   topBidder,
		StartTime:   a.StartTime(),
		EndTime:     a.EndTime(),
		Result:      result,
		UpdatedAt:   a.UpdatedAt(),
	}
}

type AuctionReadStore interface {
	GetSnapshot(ctx context.Context, id uuid.UUID) (*AuctionSnapshot, error)
	ListBids(ctx context.Context, id uuid.UUID) ([]*BidView, error)
	ListByTenant(ctx context.Context, tenantID string) ([]*AuctionListItem, error)
}

type AuctionQueries interface {
	GetSnapshot(ctx context.Context, id uuid.UUID) (*AuctionSnapshot, error)
	ListBids(ctx context.Context, id uuid.UUID) ([]*BidView, error)
	ListByTenant(ctx context.Context, tenantID string) ([]*AuctionListItem, error)
}

type auctionQueriesImpl struct {
	store AuctionReadStore
}

func NewAuctionQueries(store AuctionReadStore) AuctionQueries {
	return &auctionQueriesImpl{store: store}
}

func (q *auctionQueriesImpl) GetSnapshot(ctx context.Context, id uuid.UUID) (*AuctionSnapshot, error) {
	snap, err := q.store.GetSnapshot(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrAuctionNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return snap, nil
}

func (q *auctionQueriesImpl) ListBids(ctx context.Context, id uuid.UUID) ([]*BidView, error) {
	bids, err := q.store.ListBids(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrAuctionNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return bids, nil
}

func (q *auctionQueriesImpl) ListByTenant(ctx context.Context, tenantID string) ([]*AuctionListItem, error) {
	items, err := q.store.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}
