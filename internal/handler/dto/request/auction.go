package request

import (
	"strings"
	"time"

	"auction-engine/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type CreateAuctionRequest struct {
	TenantID    string           `json:"tenant_id" binding:"required"`
	ProductRef  string           `json:"product_ref" binding:"required"`
	Title       string           `json:"title" binding:"required"`
	StartTime   time.Time        `json:"start_time" binding:"required"`
	EndTime     time.Time        `json:"end_time" binding:"required"`
	StartingBid decimal.Decimal  `json:"starting_bid"`
	BuyNowPrice *decimal.Decimal `json:"buy_now_price,omitempty"`
}

func (r CreateAuctionRequest) ToParams() commands.CreateAuctionParams {
	return commands.CreateAuctionParams{
		TenantID:    strings.TrimSpace(r.TenantID),
		ProductRef:  strings.TrimSpace(r.ProductRef),
		Title:       strings.TrimSpace(r.Title),
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		StartingBid: r.StartingBid,
		BuyNowPrice: r.BuyNowPrice,
	}
}

type PlaceBidRequest struct {
	Bidder string          `json:"bidder" binding:"required"`
	Email  string          `json:"email" binding:"required,email"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

type BuyNowRequest struct {
	Buyer string `json:"buyer" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type ClaimRequest struct {
	Email string `json:"email" binding:"required,email"`
}
