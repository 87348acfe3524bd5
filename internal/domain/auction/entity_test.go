//go:build unit

package auction_test

import (
	"testing"
	"time"

	"auction-engine/internal/domain/auction"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestAuction(t *testing.T, mutate func(*testAuctionParams)) *auction.Auction {
	t.Helper()
	params := &testAuctionParams{
		tenantID:    "shop-1.example.com",
		productRef:  "prod-100",
		title:       "Vintage Lamp",
		startTime:   t0,
		endTime:     t0.Add(time.Hour),
		startingBid: dec("100"),
	}
	if mutate != nil {
		mutate(params)
	}
	a, err := auction.NewAuction(
		params.tenantID, params.productRef, params.title,
		params.startTime, params.endTime,
		params.startingBid, params.buyNowPrice,
		t0.Add(-time.Hour),
	)
	require.NoError(t, err)
	return a
}

type testAuctionParams struct {
	tenantID    string
	productRef  string
	title       string
	startTime   time.Time
	endTime     time.Time
	startingBid decimal.Decimal
	buyNowPrice *decimal.Decimal
}

func TestNewAuction(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		a := newTestAuction(t, nil)
		assert.NotEqual(t, uuid.Nil, a.ID())
		assert.Equal(t, auction.StatusPending, a.Status())
		assert.True(t, a.CurrentBid().Equal(dec("100")))
		assert.Zero(t, a.BidCount())
		assert.NoError(t, a.ValidateHistory())
	})

	t.Run("schedule validation", func(t *testing.T) {
		_, err := auction.NewAuction("s", "p", "t", t0, t0, dec("1"), nil, t0)
		assert.ErrorIs(t, err, auction.ErrInvalidSchedule)

		_, err = auction.NewAuction("s", "p", "t", t0, t0.Add(-time.Minute), dec("1"), nil, t0)
		assert.ErrorIs(t, err, auction.ErrInvalidSchedule)
	})

	t.Run("negative starting bid", func(t *testing.T) {
		_, err := auction.NewAuction("s", "p", "t", t0, t0.Add(time.Hour), dec("-1"), nil, t0)
		assert.ErrorIs(t, err, auction.ErrNegativeStartingBid)
	})

	t.Run("buy now must exceed starting bid", func(t *testing.T) {
		low := dec("100")
		_, err := auction.NewAuction("s", "p", "t", t0, t0.Add(time.Hour), dec("100"), &low, t0)
		assert.ErrorIs(t, err, auction.ErrBuyNowBelowStart)
	})
}

func TestDeriveStatus(t *testing.T) {
	a := newTestAuction(t, nil)

	cases := []struct {
		name string
		now  time.Time
		want auction.Status
	}{
		{name: "before start", now: t0.Add(-time.Second), want: auction.StatusPending},
		{name: "at start", now: t0, want: auction.StatusActive},
		{name: "mid window", now: t0.Add(30 * time.Minute), want: auction.StatusActive},
		{name: "at end", now: t0.Add(time.Hour), want: auction.StatusEnded},
		{name: "after end", now: t0.Add(2 * time.Hour), want: auction.StatusEnded},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, a.DeriveStatus(tc.now))
		})
	}

	t.Run("closed is sticky regardless of schedule", func(t *testing.T) {
		closed := auction.ReconstructAuction(
			uuid.New(), "s", "p", "t",
			t0, t0.Add(time.Hour),
			dec("100"), dec("100"), nil,
			auction.StatusClosed, nil, nil, t0, t0,
		)
		assert.Equal(t, auction.StatusClosed, closed.DeriveStatus(t0.Add(30*time.Minute)))
	})
}

func TestValidateBid(t *testing.T) {
	active := func(bids []auction.Bid, current decimal.Decimal) *auction.Auction {
		return auction.ReconstructAuction(
			uuid.New(), "s", "p", "t",
			t0, t0.Add(time.Hour),
			dec("100"), current, nil,
			auction.StatusActive, nil, bids, t0, t0,
		)
	}

	t.Run("accepts amount above current bid inside window", func(t *testing.T) {
		a := active(nil, dec("100"))
		assert.NoError(t, a.ValidateBid(dec("150"), t0.Add(5*time.Minute)))
	})

	t.Run("rejects amount equal to current bid", func(t *testing.T) {
		a := active(nil, dec("100"))
		assert.ErrorIs(t, a.ValidateBid(dec("100"), t0.Add(5*time.Minute)), auction.ErrBidTooLow)
	})

	t.Run("rejects amount below a later high bid", func(t *testing.T) {
		bids := []auction.Bid{{Idx: 0, Bidder: "a", Amount: dec("150"), PlacedAt: t0.Add(5 * time.Minute)}}
		a := active(bids, dec("150"))
		assert.ErrorIs(t, a.ValidateBid(dec("140"), t0.Add(6*time.Minute)), auction.ErrBidTooLow)
	})

	t.Run("rejects outside the window", func(t *testing.T) {
		a := active(nil, dec("100"))
		assert.ErrorIs(t, a.ValidateBid(dec("150"), t0.Add(-time.Second)), auction.ErrWindowClosed)
		assert.ErrorIs(t, a.ValidateBid(dec("150"), t0.Add(time.Hour)), auction.ErrWindowClosed)
	})

	t.Run("rejects when not active", func(t *testing.T) {
		for _, st := range []auction.Status{auction.StatusPending, auction.StatusEnded, auction.StatusClosed} {
			a := auction.ReconstructAuction(
				uuid.New(), "s", "p", "t",
				t0, t0.Add(time.Hour),
				dec("100"), dec("100"), nil,
				st, nil, nil, t0, t0,
			)
			assert.ErrorIs(t, a.ValidateBid(dec("150"), t0.Add(5*time.Minute)), auction.ErrNotActive, st)
		}
	})
}

func TestValidateBuyNow(t *testing.T) {
	buyNow := dec("500")
	build := func(current decimal.Decimal, price *decimal.Decimal, st auction.Status) *auction.Auction {
		return auction.ReconstructAuction(
			uuid.New(), "s", "p", "t",
			t0, t0.Add(time.Hour),
			dec("100"), current, price,
			st, nil, nil, t0, t0,
		)
	}

	t.Run("available while active and below buy now price", func(t *testing.T) {
		a := build(dec("100"), &buyNow, auction.StatusActive)
		assert.NoError(t, a.ValidateBuyNow(t0.Add(2*time.Minute)))
	})

	t.Run("unavailable without a buy now price", func(t *testing.T) {
		a := build(dec("100"), nil, auction.StatusActive)
		assert.ErrorIs(t, a.ValidateBuyNow(t0.Add(2*time.Minute)), auction.ErrBuyNowUnavailable)
	})

	t.Run("unavailable once bidding reaches the price", func(t *testing.T) {
		a := build(dec("500"), &buyNow, auction.StatusActive)
		assert.ErrorIs(t, a.ValidateBuyNow(t0.Add(2*time.Minute)), auction.ErrBuyNowUnavailable)
	})

	t.Run("rejected when not active", func(t *testing.T) {
		a := build(dec("100"), &buyNow, auction.StatusEnded)
		assert.ErrorIs(t, a.ValidateBuyNow(t0.Add(2*time.Minute)), auction.ErrNotActive)
	})
}

func TestValidateHistory(t *testing.T) {
	build := func(bids []auction.Bid, current decimal.Decimal) *auction.Auction {
		return auction.ReconstructAuction(
			uuid.New(), "s", "p", "t",
			t0, t0.Add(time.Hour),
			dec("100"), current, nil,
			auction.StatusActive, nil, bids, t0, t0,
		)
	}

	t.Run("strictly increasing history with matching current bid", func(t *testing.T) {
		bids := []auction.Bid{
			{Idx: 0, Amount: dec("150"), PlacedAt: t0.Add(5 * time.Minute)},
			{Idx: 1, Amount: dec("200"), PlacedAt: t0.Add(10 * time.Minute)},
		}
		assert.NoError(t, build(bids, dec("200")).ValidateHistory())
	})

	t.Run("tie in history is rejected", func(t *testing.T) {
		bids := []auction.Bid{
			{Idx: 0, Amount: dec("150")},
			{Idx: 1, Amount: dec("150")},
		}
		assert.ErrorIs(t, build(bids, dec("150")).ValidateHistory(), auction.ErrHistoryOrder)
	})

	t.Run("current bid must equal last bid amount", func(t *testing.T) {
		bids := []auction.Bid{{Idx: 0, Amount: dec("150")}}
		assert.ErrorIs(t, build(bids, dec("160")).ValidateHistory(), auction.ErrHistoryOrder)
	})

	t.Run("empty history requires current bid equal to starting bid", func(t *testing.T) {
		assert.NoError(t, build(nil, dec("100")).ValidateHistory())
		assert.ErrorIs(t, build(nil, dec("120")).ValidateHistory(), auction.ErrHistoryOrder)
	})
}

func TestNextBid(t *testing.T) {
	a := newTestAuction(t, nil)
	b := a.NextBid("alice", "alice@example.com", dec("150"), t0.Add(5*time.Minute))
	assert.Equal(t, 0, b.Idx)
	assert.Equal(t, "alice", b.Bidder)
	assert.True(t, b.Amount.Equal(dec("150")))
}
