package response

import (
	"time"

	"auction-engine/internal/usecase/commands"
	"auction-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AuctionResponse struct {
	ID          uuid.UUID        `json:"id"`
	TenantID    string           `json:"tenantId"`
	ProductRef  string           `json:"productRef"`
	Title       string           `json:"title"`
	Status      string           `json:"status"`
	StartingBid decimal.Decimal  `json:"startingBid"`
	CurrentBid  decimal.Decimal  `json:"currentBid"`
	BuyNowPrice *decimal.Decimal `json:"buyNowPrice,omitempty"`
	BidCount    int              `json:"bidCount"`
	TopBidder   *string          `json:"topBidder,omitempty"`
	StartTime   time.Time        `json:"startTime"`
	EndTime     time.Time        `json:"endTime"`
	Result      *string          `json:"result,omitempty"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

type AuctionListResponse struct {
	ID         uuid.UUID       `json:"id"`
	ProductRef string          `json:"productRef"`
	Title      string          `json:"title"`
	Status     string          `json:"status"`
	CurrentBid decimal.Decimal `json:"currentBid"`
	BidCount   int             `json:"bidCount"`
	EndTime    time.Time       `json:"endTime"`
	Result     *string         `json:"result,omitempty"`
}

type BidResponse struct {
	Idx      int             `json:"idx"`
	Bidder   string          `json:"bidder"`
	Amount   decimal.Decimal `json:"amount"`
	PlacedAt time.Time       `json:"placedAt"`
}

type BidReceiptResponse struct {
	AuctionID  uuid.UUID       `json:"auctionId"`
	CurrentBid decimal.Decimal `json:"currentBid"`
	BidCount   int             `json:"bidCount"`
}

type BuyNowResponse struct {
	AuctionID   uuid.UUID       `json:"auctionId"`
	Amount      decimal.Decimal `json:"amount"`
	ListingURL  string          `json:"listingUrl"`
	AccessToken string          `json:"accessToken"`
}

type ClaimResponse struct {
	AuctionID   uuid.UUID `json:"auctionId"`
	ListingURL  string    `json:"listingUrl"`
	AccessToken string    `json:"accessToken"`
}

func FromSnapshot(snap *queries.AuctionSnapshot) *AuctionResponse {
	return &AuctionResponse{
		ID:          snap.ID,
		TenantID:    snap.TenantID,
		ProductRef:  snap.ProductRef,
		Title:       snap.Title,
		Status:      snap.Status,
		StartingBid: snap.StartingBid,
		CurrentBid:  snap.CurrentBid,
		BuyNowPrice: snap.BuyNowPrice,
		BidCount:    snap.BidCount,
		TopBidder:   snap.TopBidder,
		StartTime:   snap.StartTime,
		EndTime:     snap.EndTime,
		Result:      snap.Result,
		UpdatedAt:   snap.UpdatedAt,
	}
}

func FromAuctionListItem(item *queries.AuctionListItem) *AuctionListResponse {
	return &AuctionListResponse{
		ID:         item.ID,
		ProductRef: item.ProductRef,
		Title:      item.Title,
		Status:     item.Status,
		CurrentBid: item.CurrentBid,
		BidCount:   item.BidCount,
		EndTime:    item.EndTime,
		Result:     item.Result,
	}
}

func FromBidView(bv *queries.BidView) *BidResponse {
	return &BidResponse{
		Idx:      bv.Idx,
		Bidder:   bv.Bidder,
		Amount:   bv.Amount,
		PlacedAt: bv.PlacedAt,
	}
}

func FromBidReceipt(r *commands.BidReceipt) *BidReceiptResponse {
	return &BidReceiptResponse{
		AuctionID:  r.AuctionID,
		CurrentBid: r.CurrentBid,
		BidCount:   r.BidCount,
	}
}

func FromBuyNowReceipt(r *commands.BuyNowReceipt) *BuyNowResponse {
	return &BuyNowResponse{
		AuctionID:   r.AuctionID,
		Amount:      r.Amount,
		ListingURL:  r.ListingURL,
		AccessToken: r.AccessToken,
	}
}

func FromClaimReceipt(r *commands.ClaimReceipt) *ClaimResponse {
	return &ClaimResponse{
		AuctionID:   r.AuctionID,
		ListingURL:  r.ListingURL,
		AccessToken: r.AccessToken,
	}
}
