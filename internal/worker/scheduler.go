package worker

import (
	"context"
	"log/slog"
	"time"

	"auction-engine/internal/domain/auction"
	"auction-engine/internal/infra"
	"auction-engine/internal/pkg/clock"
	"auction-engine/internal/pkg/metrics"
	"auction-engine/internal/usecase/commands"
	"auction-engine/internal/usecase/queries"
)

// Scheduler re-derives auction status from the schedule on a single
// recurring loop instead of arming a timer per auction. Multiple instances
// may run redundantly: every transition is a compare-and-set, so only one
// tick wins and performs the ended handoff.
type Scheduler struct {
	repo        commands.AuctionRepository
	resolver    *commands.WinnerResolver
	broadcaster commands.EventBroadcaster
	notifier    commands.NotificationDispatcher
	clock       clock.Clock
	interval    time.Duration
}

func NewScheduler(
	repo commands.AuctionRepository,
	resolver *commands.WinnerResolver,
	broadcaster commands.EventBroadcaster,
	notifier commands.NotificationDispatcher,
	clk clock.Clock,
	interval time.Duration,
) *Scheduler {
	return &Scheduler{
		repo:        repo,
		resolver:    resolver,
		broadcaster: broadcaster,
		notifier:    notifier,
		clock:       clk,
		interval:    interval,
	}
}

// Run blocks until the context is canceled.
func (s *Scheduler) Run(ctx context.Context) {
	slog.Info("status scheduler started", "interval", s.interval)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("status scheduler stopped")
			return
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick performs one scan. Per-auction errors are logged and never abort the
// scan; the failed auction is retried on the next tick.
func (s *Scheduler) Tick(ctx context.Context) {
	now := s.clock.Now()
	s.applyTransitions(ctx, now)
	s.expireClaims(ctx, now)
}

func (s *Scheduler) applyTransitions(ctx context.Context, now time.Time) {
	due, err := s.repo.ListDueTransitions(ctx, now)
	if err != nil {
		slog.Error("failed to list due transitions", "error", err)
		return
	}
	for _, a := range due {
		if err := s.transition(ctx, a, now); err != nil {
			slog.Error("status transition failed", "auction_id", a.ID(), "error", err)
		}
	}
}

func (s *Scheduler) transition(ctx context.Context, a *auction.Auction, now time.Time) error {
	next := a.DeriveStatus(now)
	if next == a.Status() {
		return nil
	}

	if err := s.repo.SetStatus(ctx, a.ID(), next, a.Status()); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			// Another tick already applied this transition.
			return nil
		}
		return err
	}
	metrics.ObserveStatusTransition(next.String())
	s.broadcastStatus(ctx, a, next)

	if next != auction.StatusEnded {
		return nil
	}

	// Only the tick that wins the CAS reaches this handoff, so the
	// resolver is invoked exactly once per ended auction.
	if a.BidCount() == 0 {
		if err := s.repo.SetResult(ctx, a.ID(), auction.ResultUnsold); err != nil {
			return err
		}
		if err := s.notifier.SendAdminAlert(ctx, "auction ended unsold",
			"auction ended without bids", a.ID()); err != nil {
			slog.Warn("failed to send admin alert", "auction_id", a.ID(), "error", err)
		}
		return nil
	}
	return s.resolver.HandleEnded(ctx, a)
}

func (s *Scheduler) broadcastStatus(ctx context.Context, a *auction.Auction, next auction.Status) {
	fresh, err := s.repo.FindByID(ctx, a.ID())
	var snap *queries.AuctionSnapshot
	if err != nil {
		slog.Warn("failed to re-read auction for status broadcast", "auction_id", a.ID(), "error", err)
		snap = queries.SnapshotOf(a)
		snap.Status = next.String()
	} else {
		snap = queries.SnapshotOf(fresh)
	}
	if err := s.broadcaster.PublishStatusChange(ctx, a.ID(), next, snap); err != nil {
		slog.Warn("failed to broadcast status change", "auction_id", a.ID(), "error", err)
	}
}

func (s *Scheduler) expireClaims(ctx context.Context, now time.Time) {
	ids, err := s.repo.ListExpiredClaims(ctx, now)
	if err != nil {
		slog.Error("failed to list expired claims", "error", err)
		return
	}
	for _, id := range ids {
		if err := s.resolver.ReofferExpired(ctx, id); err != nil {
			slog.Error("claim reoffer failed", "auction_id", id, "error", err)
		}
	}
}
