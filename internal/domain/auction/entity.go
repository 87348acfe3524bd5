package auction

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidSchedule     = errors.New("end time must be after start time")
	ErrNegativeStartingBid = errors.New("starting bid cannot be negative")
	ErrBuyNowBelowStart    = errors.New("buy now price must exceed starting bid")
	ErrNotActive           = errors.New("auction is not active")
	ErrWindowClosed        = errors.New("bidding window is closed")
	ErrBidTooLow           = errors.New("bid must exceed the current bid")
	ErrBuyNowUnavailable   = errors.New("buy now is not available")
	ErrHistoryOrder        = errors.New("bid history amounts must be strictly increasing")
)

// Auction exclusively owns its bid history; appends go through the store's
// compare-and-set, never through in-place mutation of a shared instance.
type Auction struct {
	id          uuid.UUID
	tenantID    string
	productRef  string
	title       string
	startTime   time.Time
	endTime     time.Time
	startingBid decimal.Decimal
	currentBid  decimal.Decimal
	buyNowPrice *decimal.Decimal
	status      Status
	result      *Result
	bids        []Bid
	createdAt   time.Time
	updatedAt   time.Time
}

func NewAuction(
	tenantID, productRef, title string,
	startTime, endTime time.Time,
	startingBid decimal.Decimal,
	buyNowPrice *decimal.Decimal,
	now time.Time,
) (*Auction, error) {
	if !endTime.After(startTime) {
		return nil, ErrInvalidSchedule
	}
	if startingBid.IsNegative() {
		return nil, ErrNegativeStartingBid
	}
	if buyNowPrice != nil && !buyNowPrice.GreaterThan(startingBid) {
		return nil, ErrBuyNowBelowStart
	}

	return &Auction{
		id:          uuid.New(),
		tenantID:    tenantID,
		productRef:  productRef,
		title:       title,
		startTime:   startTime,
		endTime:     endTime,
		startingBid: startingBid,
		currentBid:  startingBid,
		buyNowPrice: buyNowPrice,
		status:      StatusPending,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructAuction(
	id uuid.UUID,
	tenantID, productRef, title string,
	startTime, endTime time.Time,
	startingBid, currentBid decimal.Decimal,
	buyNowPrice *decimal.Decimal,
	status Status,
	result *Result,
	bids []Bid,
	createdAt, updatedAt time.Time,
) *Auction {
	return &Auction{
		id:          id,
		tenantID:    tenantID,
		productRef:  productRef,
		title:       title,
		startTime:   startTime,
		endTime:     endTime,
		startingBid: startingBid,
		currentBid:  currentBid,
		buyNowPrice: buyNowPrice,
		status:      status,
		result:      result,
		bids:        bids,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// DeriveStatus recomputes the status from the schedule instead of trusting
// the stored value. Closed is a manual terminal override.
func (a *Auction) DeriveStatus(now time.Time) Status {
	if a.status == StatusClosed {
		return StatusClosed
	}
	switch {
	case now.Before(a.startTime):
		return StatusPending
	case now.Before(a.endTime):
		return StatusActive
	default:
		return StatusEnded
	}
}

// ValidateBid checks the bid-acceptance preconditions against the snapshot.
func (a *Auction) ValidateBid(amount decimal.Decimal, now time.Time) error {
	if a.status != StatusActive {
		return ErrNotActive
	}
	if now.Before(a.startTime) || !now.Before(a.endTime) {
		return ErrWindowClosed
	}
	if amount.LessThan(a.startingBid) || !amount.GreaterThan(a.currentBid) {
		return ErrBidTooLow
	}
	return nil
}

// ValidateBuyNow checks that an immediate purchase can terminate the auction.
func (a *Auction) ValidateBuyNow(now time.Time) error {
	if a.buyNowPrice == nil {
		return ErrBuyNowUnavailable
	}
	if a.status != StatusActive {
		return ErrNotActive
	}
	if now.Before(a.startTime) || !now.Before(a.endTime) {
		return ErrWindowClosed
	}
	// A manual price override can push the current bid past the buy-now
	// price; the shortcut is gone once bidding reaches it.
	if !a.currentBid.LessThan(*a.buyNowPrice) {
		return ErrBuyNowUnavailable
	}
	return nil
}

// NextBid builds the record that would extend the history.
func (a *Auction) NextBid(bidder, email string, amount decimal.Decimal, now time.Time) Bid {
	return Bid{
		Idx:      len(a.bids),
		Bidder:   bidder,
		Email:    email,
		Amount:   amount,
		PlacedAt: now,
	}
}

// ValidateHistory asserts the strict monotonic-amount invariant and the
// currentBid/history coupling.
func (a *Auction) ValidateHistory() error {
	for i := 1; i < len(a.bids); i++ {
		if !a.bids[i].Amount.GreaterThan(a.bids[i-1].Amount) {
			return ErrHistoryOrder
		}
	}
	if len(a.bids) == 0 {
		if !a.currentBid.Equal(a.startingBid) {
			return ErrHistoryOrder
		}
		return nil
	}
	if !a.currentBid.Equal(a.bids[len(a.bids)-1].Amount) {
		return ErrHistoryOrder
	}
	return nil
}

func (a *Auction) HighestBid() *Bid {
	if len(a.bids) == 0 {
		return nil
	}
	b := a.bids[len(a.bids)-1]
	return &b
}

func (a *Auction) BidAt(idx int) (Bid, bool) {
	if idx < 0 || idx >= len(a.bids) {
		return Bid{}, false
	}
	return a.bids[idx], true
}

func (a *Auction) ID() uuid.UUID                 { return a.id }
func (a *Auction) TenantID() string              { return a.tenantID }
func (a *Auction) ProductRef() string            { return a.productRef }
func (a *Auction) Title() string                 { return a.title }
func (a *Auction) StartTime() time.Time          { return a.startTime }
func (a *Auction) EndTime() time.Time            { return a.endTime }
func (a *Auction) StartingBid() decimal.Decimal  { return a.startingBid }
func (a *Auction) CurrentBid() decimal.Decimal   { return a.currentBid }
func (a *Auction) BuyNowPrice() *decimal.Decimal { return a.buyNowPrice }
func (a *Auction) Status() Status                { return a.status }
func (a *Auction) Result() *Result               { return a.result }
func (a *Auction) Bids() []Bid                   { return a.bids }
func (a *Auction) BidCount() int                 { return len(a.bids) }
func (a *Auction) CreatedAt() time.Time          { return a.createdAt }
func (a *Auction) UpdatedAt() time.Time          { return a.updatedAt }
