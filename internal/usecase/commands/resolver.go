package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"auction-engine/internal/domain/auction"
	"auction-engine/internal/infra"
	"auction-engine/internal/pkg/clock"
	"auction-engine/internal/pkg/errs"
	"auction-engine/internal/pkg/metrics"

	"github.com/google/uuid"
)

type ClaimReceipt struct {
	AuctionID   uuid.UUID
	ListingURL  string
	AccessToken string
}

// WinnerResolver drives the claim state machine of an ended auction:
// Offered -> Claimed -> Fulfilled, with deadline-driven fallback to the
// next-highest bidder until a claim succeeds or candidates are exhausted.
type WinnerResolver struct {
	repo        AuctionRepository
	notifier    NotificationDispatcher
	provisioner FulfillmentProvisioner
	clock       clock.Clock
	claimWindow time.Duration
}

func NewWinnerResolver(
	repo AuctionRepository,
	notifier NotificationDispatcher,
	provisioner FulfillmentProvisioner,
	clk clock.Clock,
	claimWindow time.Duration,
) *WinnerResolver {
	return &WinnerResolver{
		repo:        repo,
		notifier:    notifier,
		provisioner: provisioner,
		clock:       clk,
		claimWindow: claimWindow,
	}
}

// HandleEnded starts the claim window for a freshly ended auction with at
// least one bid. The caller guarantees single invocation via the status
// compare-and-set; the claim row's primary key is the backstop.
func (r *WinnerResolver) HandleEnded(ctx context.Context, a *auction.Auction) error {
	if a.BidCount() == 0 {
		return errs.New("resolver invoked for auction without bids")
	}

	now := r.clock.Now()
	claim := auction.NewOfferedClaim(a.BidCount(), now, r.claimWindow)

	if err := r.repo.CreateClaim(ctx, a.ID(), claim); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			// Another instance already created the claim.
			return nil
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	candidate, ok := a.BidAt(claim.CandidateIdx)
	if !ok {
		return errs.New("claim candidate index out of range")
	}

	if err := r.notifier.SendWinnerOffer(ctx, candidate, a.ID(), candidate.Amount, claim.Deadline); err != nil {
		slog.Warn("failed to send winner offer", "auction_id", a.ID(), "error", err)
	}
	if others := otherBidders(a, candidate.Email); len(others) > 0 {
		if err := r.notifier.SendAuctionEnded(ctx, others, a.ID()); err != nil {
			slog.Warn("failed to send auction ended notices", "auction_id", a.ID(), "error", err)
		}
	}
	return nil
}

// ReofferExpired advances an expired offered claim to the next candidate, or
// marks the auction unsold when candidates are exhausted. Safe to call from
// concurrent scheduler instances: the claim update is a compare-and-set.
func (r *WinnerResolver) ReofferExpired(ctx context.Context, auctionID uuid.UUID) error {
	a, err := r.repo.FindByID(ctx, auctionID)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	claim, err := r.repo.FindClaim(ctx, auctionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	now := r.clock.Now()
	if !claim.Expired(now) {
		return nil
	}

	next := claim.Reoffer(now, r.claimWindow)
	if err := r.repo.UpdateClaim(ctx, auctionID, next, claim.CandidateIdx, auction.ClaimOffered); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			// Another tick already advanced the claim.
			return nil
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if next.State == auction.ClaimExhausted {
		if err := r.repo.SetResult(ctx, auctionID, auction.ResultUnsold); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := r.notifier.SendAdminAlert(ctx, "auction unsold",
			"all winner candidates expired without claiming", auctionID); err != nil {
			slog.Warn("failed to send admin alert", "auction_id", auctionID, "error", err)
		}
		return nil
	}

	metrics.ObserveClaimReoffer()
	candidate, ok := a.BidAt(next.CandidateIdx)
	if !ok {
		return errs.New("reoffer candidate index out of range")
	}
	if err := r.notifier.SendWinnerOffer(ctx, candidate, auctionID, candidate.Amount, next.Deadline); err != nil {
		slog.Warn("failed to send winner offer on reoffer", "auction_id", auctionID, "error", err)
	}
	return nil
}

// Confirm is the winning candidate's explicit claim inside the window.
func (r *WinnerResolver) Confirm(ctx context.Context, auctionID uuid.UUID, email string) (*ClaimReceipt, error) {
	a, err := r.repo.FindByID(ctx, auctionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrAuctionNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	claim, err := r.repo.FindClaim(ctx, auctionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrClaimNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if claim.State != auction.ClaimOffered {
		return nil, errs.ErrClaimNotOffered
	}
	candidate, ok := a.BidAt(claim.CandidateIdx)
	if !ok {
		return nil, errs.New("claim candidate index out of range")
	}
	if candidate.Email != email {
		return nil, errs.ErrNotCandidate
	}
	if r.clock.Now().After(claim.Deadline) {
		return nil, errs.ErrClaimExpired
	}

	confirmed := claim.Confirm()
	if err := r.repo.UpdateClaim(ctx, auctionID, confirmed, claim.CandidateIdx, auction.ClaimOffered); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.ErrClaimNotOffered
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	handle, err := r.Fulfill(ctx, a, confirmed, candidate)
	if err != nil {
		return nil, err
	}
	return &ClaimReceipt{
		AuctionID:   auctionID,
		ListingURL:  handle.ListingURL,
		AccessToken: handle.AccessToken,
	}, nil
}

// Fulfill provisions the private listing for a claimed candidate and
// finalizes the claim. On provisioning failure the claim stays Claimed so the
// operation can be retried without duplicating side effects.
func (r *WinnerResolver) Fulfill(ctx context.Context, a *auction.Auction, claim auction.WinnerClaim, winner auction.Bid) (*ListingHandle, error) {
	handle, err := r.provisioner.CreatePrivateListing(ctx, a, winner)
	if err != nil {
		if alertErr := r.notifier.SendAdminAlert(ctx, "fulfillment failed",
			fmt.Sprintf("private listing creation failed for winner %s: %v", winner.Email, err), a.ID()); alertErr != nil {
			slog.Warn("failed to send admin alert", "auction_id", a.ID(), "error", alertErr)
		}
		return nil, err
	}

	final := claim.Fulfill(handle.ListingURL, hashToken(handle.AccessToken))
	if err := r.repo.UpdateClaim(ctx, a.ID(), final, claim.CandidateIdx, auction.ClaimClaimed); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if err := r.repo.SetResult(ctx, a.ID(), auction.ResultSold); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := r.notifier.SendAdminAlert(ctx, "auction fulfilled",
		fmt.Sprintf("winner %s received private listing %s", winner.Email, handle.ListingURL), a.ID()); err != nil {
		slog.Warn("failed to send admin alert", "auction_id", a.ID(), "error", err)
	}
	return handle, nil
}

func otherBidders(a *auction.Auction, winnerEmail string) []auction.Bid {
	seen := make(map[string]bool, a.BidCount())
	var others []auction.Bid
	for _, b := range a.Bids() {
		if b.Email == winnerEmail || seen[b.Email] {
			continue
		}
		seen[b.Email] = true
		others = append(others, b)
	}
	return others
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
