package commands

import (
	"context"
	"time"

	"auction-engine/internal/domain/auction"
	"auction-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AuctionRepository is the write-side store contract. Every mutating
// operation that takes an expected previous value is a compare-and-set and
// reports a lost race as infra.KindConflict; this is the sole concurrency
// control mechanism, no locks are held anywhere above it.
type AuctionRepository interface {
	Create(ctx context.Context, a *auction.Auction) error
	FindByID(ctx context.Context, id uuid.UUID) (*auction.Auction, error)

	// AppendBid atomically extends the bid history and advances currentBid,
	// failing if the stored currentBid no longer equals expectedCurrentBid.
	AppendBid(ctx context.Context, id uuid.UUID, b auction.Bid, expectedCurrentBid decimal.Decimal) error

	// ApplyBuyNow records the terminal bid, forces status to ended and
	// stores the implicit claim in a single transaction.
	ApplyBuyNow(ctx context.Context, id uuid.UUID, b auction.Bid, expectedCurrentBid decimal.Decimal, claim auction.WinnerClaim) error

	SetStatus(ctx context.Context, id uuid.UUID, next, expected auction.Status) error
	ForceClose(ctx context.Context, id uuid.UUID) error
	SetResult(ctx context.Context, id uuid.UUID, result auction.Result) error
	SoftDelete(ctx context.Context, id uuid.UUID) error

	CreateClaim(ctx context.Context, id uuid.UUID, claim auction.WinnerClaim) error
	// UpdateClaim succeeds only while the stored claim still points at
	// expectedCandidateIdx in expectedState.
	UpdateClaim(ctx context.Context, id uuid.UUID, claim auction.WinnerClaim, expectedCandidateIdx int, expectedState auction.ClaimState) error
	FindClaim(ctx context.Context, id uuid.UUID) (*auction.WinnerClaim, error)

	// ListDueTransitions returns non-deleted auctions whose stored status
	// disagrees with the schedule at the given instant.
	ListDueTransitions(ctx context.Context, now time.Time) ([]*auction.Auction, error)
	// ListExpiredClaims returns auction ids with an offered claim past its
	// deadline.
	ListExpiredClaims(ctx context.Context, now time.Time) ([]uuid.UUID, error)
}

// EventBroadcaster fans out state changes to subscribers. Best-effort,
// at-least-once; the core logs failures and moves on.
type EventBroadcaster interface {
	PublishBidUpdate(ctx context.Context, auctionID uuid.UUID, snap *queries.AuctionSnapshot) error
	PublishStatusChange(ctx context.Context, auctionID uuid.UUID, status auction.Status, snap *queries.AuctionSnapshot) error
}

// NotificationDispatcher hands messages to the external delivery pipeline.
// Fire-and-forget; failures are logged by the caller and never block the
// lifecycle.
type NotificationDispatcher interface {
	SendWinnerOffer(ctx context.Context, candidate auction.Bid, auctionID uuid.UUID, amount decimal.Decimal, claimDeadline time.Time) error
	SendOutbidNotice(ctx context.Context, bidder auction.Bid, auctionID uuid.UUID, newAmount decimal.Decimal) error
	SendAuctionEnded(ctx context.Context, bidders []auction.Bid, auctionID uuid.UUID) error
	SendAdminAlert(ctx context.Context, subject, message string, auctionID uuid.UUID) error
}

// Commerce platform product API, abstracted to the narrow slice the
// provisioner needs.
type ProductSnapshot struct {
	ID          string
	Title       string
	Description string
	Vendor      string
	Options     []ProductOption
	Images      []ProductImage
}

type ProductOption struct {
	Name   string
	Values []string
}

type ProductImage struct {
	URL string
	Alt string
}

type NewListing struct {
	Title       string
	Description string
	Vendor      string
	Options     []ProductOption
	Hidden      bool
	Metadata    map[string]string
}

type CreatedListing struct {
	ID     string
	Handle string
}

type NewVariant struct {
	Price    decimal.Decimal
	Quantity int
}

type CommerceClient interface {
	GetProduct(ctx context.Context, tenantID, productRef string) (*ProductSnapshot, error)
	CreateProduct(ctx context.Context, tenantID string, listing NewListing) (*CreatedListing, error)
	CreateVariant(ctx context.Context, tenantID, productID string, v NewVariant) error
	AttachImages(ctx context.Context, tenantID, productID string, images []ProductImage) error
}

// AccessTokenIssuer issues and verifies private-listing access tokens bound
// to (winner email, product reference).
type AccessTokenIssuer interface {
	Issue(winnerEmail, productRef string, now time.Time) (string, error)
	Verify(token, winnerEmail, productRef string) error
}
