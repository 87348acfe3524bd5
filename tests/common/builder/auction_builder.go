//go:build unit || e2e

package builder

import (
	"fmt"
	"time"

	"auction-engine/internal/domain/auction"
	reqdto "auction-engine/internal/handler/dto/request"
	"auction-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AuctionBuilder struct {
	ID          uuid.UUID
	TenantID    string
	ProductRef  string
	Title       string
	StartTime   time.Time
	EndTime     time.Time
	StartingBid decimal.Decimal
	CurrentBid  decimal.Decimal
	BuyNowPrice *decimal.Decimal
	Status      auction.Status
	Result      *auction.Result
	Bids        []auction.Bid
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewAuctionBuilder() *AuctionBuilder {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &AuctionBuilder{
		ID:          uuid.New(),
		TenantID:    "tenant-1",
		ProductRef:  "prod-100",
		Title:       "Vintage Lamp",
		StartTime:   now.Add(-time.Hour),
		EndTime:     now.Add(time.Hour),
		StartingBid: decimal.NewFromInt(100),
		CurrentBid:  decimal.NewFromInt(100),
		Status:      auction.StatusActive,
		CreatedAt:   now.Add(-2 * time.Hour),
		UpdatedAt:   now.Add(-time.Hour),
	}
}

func (b *AuctionBuilder) With(mutate func(*AuctionBuilder)) *AuctionBuilder {
	mutate(b)
	return b
}

// WithBids appends a strictly increasing history and moves CurrentBid to the
// last amount. Bidder identities are generated from the index.
func (b *AuctionBuilder) WithBids(amounts ...int64) *AuctionBuilder {
	for _, amount := range amounts {
		idx := len(b.Bids)
		b.Bids = append(b.Bids, auction.Bid{
			Idx:      idx,
			Bidder:   fmt.Sprintf("bidder-%d", idx),
			Email:    fmt.Sprintf("bidder-%d@example.com", idx),
			Amount:   decimal.NewFromInt(amount),
			PlacedAt: b.StartTime.Add(time.Duration(idx+1) * time.Minute),
		})
	}
	if len(b.Bids) > 0 {
		b.CurrentBid = b.Bids[len(b.Bids)-1].Amount
	}
	return b
}

func (b *AuctionBuilder) WithBuyNow(price int64) *AuctionBuilder {
	p := decimal.NewFromInt(price)
	b.BuyNowPrice = &p
	return b
}

func (b *AuctionBuilder) Pending(now time.Time) *AuctionBuilder {
	b.Status = auction.StatusPending
	b.StartTime = now.Add(time.Hour)
	b.EndTime = now.Add(2 * time.Hour)
	return b
}

func (b *AuctionBuilder) Ended() *AuctionBuilder {
	b.Status = auction.StatusEnded
	return b
}

func (b *AuctionBuilder) BuildEntity() *auction.Auction {
	return auction.ReconstructAuction(
		b.ID, b.TenantID, b.ProductRef, b.Title,
		b.StartTime, b.EndTime,
		b.StartingBid, b.CurrentBid, b.BuyNowPrice,
		b.Status, b.Result, b.Bids,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *AuctionBuilder) BuildSnapshot() *queries.AuctionSnapshot {
	return queries.SnapshotOf(b.BuildEntity())
}

func (b *AuctionBuilder) BuildCreateRequestDTO() reqdto.CreateAuctionRequest {
	return reqdto.CreateAuctionRequest{
		TenantID:    b.TenantID,
		ProductRef:  b.ProductRef,
		Title:       b.Title,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		StartingBid: b.StartingBid,
		BuyNowPrice: b.BuyNowPrice,
	}
}
