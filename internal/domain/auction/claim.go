package auction

import (
	"slices"
	"time"
)

// ClaimState tracks the fulfillment handoff of an ended auction.
type ClaimState string

const (
	ClaimOffered   ClaimState = "offered"
	ClaimClaimed   ClaimState = "claimed"
	ClaimFulfilled ClaimState = "fulfilled"
	ClaimExhausted ClaimState = "exhausted"
)

// WinnerClaim points at the bid currently being offered the win. Because bid
// amounts are strictly increasing by construction, the highest remaining
// candidate is always the largest index not yet attempted.
type WinnerClaim struct {
	CandidateIdx int
	State        ClaimState
	Deadline     time.Time
	Attempted    []int
	ListingURL   *string
	TokenHash    *string
}

// NewOfferedClaim starts the claim window for the highest bid.
func NewOfferedClaim(bidCount int, now time.Time, window time.Duration) WinnerClaim {
	return WinnerClaim{
		CandidateIdx: bidCount - 1,
		State:        ClaimOffered,
		Deadline:     now.Add(window),
	}
}

// NewClaimedClaim records an implicit claim: the buyer completed the purchase
// intent up front, so no claim window applies.
func NewClaimedClaim(candidateIdx int) WinnerClaim {
	return WinnerClaim{
		CandidateIdx: candidateIdx,
		State:        ClaimClaimed,
	}
}

func (c WinnerClaim) Expired(now time.Time) bool {
	return c.State == ClaimOffered && now.After(c.Deadline)
}

func (c WinnerClaim) IsTerminal() bool {
	return c.State == ClaimFulfilled || c.State == ClaimExhausted
}

func (c WinnerClaim) WasAttempted(idx int) bool {
	return slices.Contains(c.Attempted, idx)
}

// Reoffer moves the expired candidate into the attempted set and offers the
// next-highest bid under a fresh deadline. When no candidate remains the
// returned claim is Exhausted.
func (c WinnerClaim) Reoffer(now time.Time, window time.Duration) WinnerClaim {
	attempted := append(slices.Clone(c.Attempted), c.CandidateIdx)
	next := c.CandidateIdx - 1
	for next >= 0 && slices.Contains(attempted, next) {
		next--
	}
	if next < 0 {
		return WinnerClaim{
			CandidateIdx: c.CandidateIdx,
			State:        ClaimExhausted,
			Attempted:    attempted,
		}
	}
	return WinnerClaim{
		CandidateIdx: next,
		State:        ClaimOffered,
		Deadline:     now.Add(window),
		Attempted:    attempted,
	}
}

// Confirm moves an offered claim to claimed.
func (c WinnerClaim) Confirm() WinnerClaim {
	next := c
	next.State = ClaimClaimed
	return next
}

// Fulfill finalizes a claimed claim with the private listing descriptor.
func (c WinnerClaim) Fulfill(listingURL, tokenHash string) WinnerClaim {
	next := c
	next.State = ClaimFulfilled
	next.ListingURL = &listingURL
	next.TokenHash = &tokenHash
	return next
}
