//go:build unit

package auction_test

import (
	"testing"
	"time"

	"auction-engine/internal/domain/auction"

	"github.com/stretchr/testify/assert"
)

const claimWindow = 30 * time.Minute

func TestNewOfferedClaim(t *testing.T) {
	c := auction.NewOfferedClaim(3, t0, claimWindow)

	assert.Equal(t, 2, c.CandidateIdx)
	assert.Equal(t, auction.ClaimOffered, c.State)
	assert.Equal(t, t0.Add(claimWindow), c.Deadline)
	assert.Empty(t, c.Attempted)
	assert.False(t, c.IsTerminal())
}

func TestClaimExpiry(t *testing.T) {
	c := auction.NewOfferedClaim(1, t0, claimWindow)

	assert.False(t, c.Expired(t0.Add(claimWindow)))
	assert.True(t, c.Expired(t0.Add(claimWindow+time.Second)))

	claimed := c.Confirm()
	assert.Equal(t, auction.ClaimClaimed, claimed.State)
	assert.False(t, claimed.Expired(t0.Add(time.Hour)))
}

func TestReoffer(t *testing.T) {
	t.Run("falls back to the next highest bid with a fresh deadline", func(t *testing.T) {
		c := auction.NewOfferedClaim(3, t0, claimWindow)
		later := t0.Add(claimWindow + time.Minute)

		next := c.Reoffer(later, claimWindow)
		assert.Equal(t, 1, next.CandidateIdx)
		assert.Equal(t, auction.ClaimOffered, next.State)
		assert.Equal(t, later.Add(claimWindow), next.Deadline)
		assert.Equal(t, []int{2}, next.Attempted)
		assert.True(t, next.WasAttempted(2))
	})

	t.Run("never reoffers an attempted candidate", func(t *testing.T) {
		c := auction.NewOfferedClaim(3, t0, claimWindow)
		c = c.Reoffer(t0, claimWindow)
		c = c.Reoffer(t0, claimWindow)

		assert.Equal(t, 0, c.CandidateIdx)
		assert.ElementsMatch(t, []int{2, 1}, c.Attempted)
	})

	t.Run("exhausted when no candidate remains", func(t *testing.T) {
		c := auction.NewOfferedClaim(1, t0, claimWindow)
		final := c.Reoffer(t0, claimWindow)

		assert.Equal(t, auction.ClaimExhausted, final.State)
		assert.True(t, final.IsTerminal())
		assert.Equal(t, []int{0}, final.Attempted)
	})
}

func TestClaimedAndFulfilled(t *testing.T) {
	implicit := auction.NewClaimedClaim(4)
	assert.Equal(t, auction.ClaimClaimed, implicit.State)
	assert.Equal(t, 4, implicit.CandidateIdx)

	done := implicit.Fulfill("https://shop.example.com/listings/abc", "hash")
	assert.Equal(t, auction.ClaimFulfilled, done.State)
	assert.True(t, done.IsTerminal())
	assert.Equal(t, "https://shop.example.com/listings/abc", *done.ListingURL)
	assert.Equal(t, "hash", *done.TokenHash)
}
