//go:build unit

package worker_test

import (
	"context"
	"testing"
	"time"

	"auction-engine/internal/domain/auction"
	"auction-engine/internal/infra"
	"auction-engine/internal/pkg/clock"
	"auction-engine/internal/usecase/commands"
	"auction-engine/internal/usecase/queries"
	"auction-engine/internal/worker"
	"auction-engine/tests/common/builder"
	commandsmock "auction-engine/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SchedulerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	repo        *commandsmock.MockAuctionRepository
	broadcaster *commandsmock.MockEventBroadcaster
	notifier    *commandsmock.MockNotificationDispatcher
	provisioner *commandsmock.MockFulfillmentProvisioner
	clock       *clock.MockClock
	scheduler   *worker.Scheduler
	baseTime    time.Time
}

func (s *SchedulerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = commandsmock.NewMockAuctionRepository(s.ctrl)
	s.broadcaster = commandsmock.NewMockEventBroadcaster(s.ctrl)
	s.notifier = commandsmock.NewMockNotificationDispatcher(s.ctrl)
	s.provisioner = commandsmock.NewMockFulfillmentProvisioner(s.ctrl)
	s.baseTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.clock = clock.NewMockClock(s.baseTime)
	resolver := commands.NewWinnerResolver(s.repo, s.notifier, s.provisioner, s.clock, 30*time.Minute)
	s.scheduler = worker.NewScheduler(s.repo, resolver, s.broadcaster, s.notifier, s.clock, time.Second)
}

func (s *SchedulerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSchedulerSuite(t *testing.T) {
	suite.Run(t, new(SchedulerTestSuite))
}

func (s *SchedulerTestSuite) expectNoExpiredClaims() {
	s.repo.EXPECT().ListExpiredClaims(gomock.Any(), s.baseTime).Return(nil, nil)
}

func (s *SchedulerTestSuite) TestTick_ActivatesPendingAuction() {
	a := builder.NewAuctionBuilder().
		With(func(b *builder.AuctionBuilder) {
			b.Status = auction.StatusPending
			b.StartTime = s.baseTime.Add(-time.Minute)
			b.EndTime = s.baseTime.Add(time.Hour)
		}).
		BuildEntity()

	s.repo.EXPECT().ListDueTransitions(gomock.Any(), s.baseTime).Return([]*auction.Auction{a}, nil)
	s.repo.EXPECT().SetStatus(gomock.Any(), a.ID(), auction.StatusActive, auction.StatusPending).Return(nil)
	s.repo.EXPECT().FindByID(gomock.Any(), a.ID()).Return(a, nil)
	s.broadcaster.EXPECT().PublishStatusChange(gomock.Any(), a.ID(), auction.StatusActive, gomock.Any()).Return(nil)
	s.expectNoExpiredClaims()

	s.scheduler.Tick(context.Background())
}

func (s *SchedulerTestSuite) TestTick_EndsAuctionAndStartsClaimWindow() {
	a := builder.NewAuctionBuilder().
		With(func(b *builder.AuctionBuilder) { b.EndTime = s.baseTime.Add(-time.Minute) }).
		WithBids(100, 150).
		BuildEntity()

	s.repo.EXPECT().ListDueTransitions(gomock.Any(), s.baseTime).Return([]*auction.Auction{a}, nil)
	s.repo.EXPECT().SetStatus(gomock.Any(), a.ID(), auction.StatusEnded, auction.StatusActive).Return(nil)
	s.repo.EXPECT().FindByID(gomock.Any(), a.ID()).Return(a, nil)
	s.broadcaster.EXPECT().PublishStatusChange(gomock.Any(), a.ID(), auction.StatusEnded, gomock.Any()).Return(nil)
	s.repo.EXPECT().CreateClaim(gomock.Any(), a.ID(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, claim auction.WinnerClaim) error {
			s.Equal(1, claim.CandidateIdx)
			s.Equal(auction.ClaimOffered, claim.State)
			return nil
		})
	s.notifier.EXPECT().SendWinnerOffer(gomock.Any(), gomock.Any(), a.ID(), gomock.Any(), gomock.Any()).Return(nil)
	s.notifier.EXPECT().SendAuctionEnded(gomock.Any(), gomock.Any(), a.ID()).Return(nil)
	s.expectNoExpiredClaims()

	s.scheduler.Tick(context.Background())
}

func (s *SchedulerTestSuite) TestTick_EndedWithoutBidsGoesUnsold() {
	a := builder.NewAuctionBuilder().
		With(func(b *builder.AuctionBuilder) { b.EndTime = s.baseTime.Add(-time.Minute) }).
		BuildEntity()

	s.repo.EXPECT().ListDueTransitions(gomock.Any(), s.baseTime).Return([]*auction.Auction{a}, nil)
	s.repo.EXPECT().SetStatus(gomock.Any(), a.ID(), auction.StatusEnded, auction.StatusActive).Return(nil)
	s.repo.EXPECT().FindByID(gomock.Any(), a.ID()).Return(a, nil)
	s.broadcaster.EXPECT().PublishStatusChange(gomock.Any(), a.ID(), auction.StatusEnded, gomock.Any()).Return(nil)
	s.repo.EXPECT().SetResult(gomock.Any(), a.ID(), auction.ResultUnsold).Return(nil)
	s.notifier.EXPECT().SendAdminAlert(gomock.Any(), gomock.Any(), gomock.Any(), a.ID()).Return(nil)
	s.expectNoExpiredClaims()

	s.scheduler.Tick(context.Background())
}

// A lost compare-and-set means another instance already applied the
// transition; the tick must not broadcast or hand off again.
func (s *SchedulerTestSuite) TestTick_LostTransitionRaceIsSkipped() {
	a := builder.NewAuctionBuilder().
		With(func(b *builder.AuctionBuilder) { b.EndTime = s.baseTime.Add(-time.Minute) }).
		WithBids(100).
		BuildEntity()

	s.repo.EXPECT().ListDueTransitions(gomock.Any(), s.baseTime).Return([]*auction.Auction{a}, nil)
	s.repo.EXPECT().SetStatus(gomock.Any(), a.ID(), auction.StatusEnded, auction.StatusActive).
		Return(infra.NewRepoErr("status changed since read", infra.KindConflict))
	s.expectNoExpiredClaims()

	s.scheduler.Tick(context.Background())
}

// Broadcast falls back to the stale entity with the status patched when the
// re-read fails; the transition itself already committed.
func (s *SchedulerTestSuite) TestTick_BroadcastFallsBackToStaleSnapshot() {
	a := builder.NewAuctionBuilder().
		With(func(b *builder.AuctionBuilder) {
			b.Status = auction.StatusPending
			b.StartTime = s.baseTime.Add(-time.Minute)
			b.EndTime = s.baseTime.Add(time.Hour)
		}).
		BuildEntity()

	s.repo.EXPECT().ListDueTransitions(gomock.Any(), s.baseTime).Return([]*auction.Auction{a}, nil)
	s.repo.EXPECT().SetStatus(gomock.Any(), a.ID(), auction.StatusActive, auction.StatusPending).Return(nil)
	s.repo.EXPECT().FindByID(gomock.Any(), a.ID()).
		Return(nil, infra.NewRepoErr("connection reset", infra.KindDBFailure))
	s.broadcaster.EXPECT().PublishStatusChange(gomock.Any(), a.ID(), auction.StatusActive, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ auction.Status, snap *queries.AuctionSnapshot) error {
			s.Equal("active", snap.Status)
			return nil
		})
	s.expectNoExpiredClaims()

	s.scheduler.Tick(context.Background())
}

func (s *SchedulerTestSuite) TestTick_ReoffersExpiredClaims() {
	a := builder.NewAuctionBuilder().WithBids(100, 150).Ended().BuildEntity()
	expired := &auction.WinnerClaim{
		CandidateIdx: 1,
		State:        auction.ClaimOffered,
		Deadline:     s.baseTime.Add(-time.Minute),
	}

	s.repo.EXPECT().ListDueTransitions(gomock.Any(), s.baseTime).Return(nil, nil)
	s.repo.EXPECT().ListExpiredClaims(gomock.Any(), s.baseTime).Return([]uuid.UUID{a.ID()}, nil)
	s.repo.EXPECT().FindByID(gomock.Any(), a.ID()).Return(a, nil)
	s.repo.EXPECT().FindClaim(gomock.Any(), a.ID()).Return(expired, nil)
	s.repo.EXPECT().UpdateClaim(gomock.Any(), a.ID(), gomock.Any(), 1, auction.ClaimOffered).Return(nil)
	s.notifier.EXPECT().SendWinnerOffer(gomock.Any(), gomock.Any(), a.ID(), gomock.Any(), gomock.Any()).Return(nil)

	s.scheduler.Tick(context.Background())
}

// One failing auction must not abort the scan for the rest.
func (s *SchedulerTestSuite) TestTick_ContinuesPastFailedTransition() {
	failing := builder.NewAuctionBuilder().
		With(func(b *builder.AuctionBuilder) { b.EndTime = s.baseTime.Add(-time.Minute) }).
		BuildEntity()
	healthy := builder.NewAuctionBuilder().
		With(func(b *builder.AuctionBuilder) {
			b.Status = auction.StatusPending
			b.StartTime = s.baseTime.Add(-time.Minute)
			b.EndTime = s.baseTime.Add(time.Hour)
		}).
		BuildEntity()

	s.repo.EXPECT().ListDueTransitions(gomock.Any(), s.baseTime).
		Return([]*auction.Auction{failing, healthy}, nil)
	s.repo.EXPECT().SetStatus(gomock.Any(), failing.ID(), auction.StatusEnded, auction.StatusActive).
		Return(infra.NewRepoErr("connection reset", infra.KindDBFailure))
	s.repo.EXPECT().SetStatus(gomock.Any(), healthy.ID(), auction.StatusActive, auction.StatusPending).Return(nil)
	s.repo.EXPECT().FindByID(gomock.Any(), healthy.ID()).Return(healthy, nil)
	s.broadcaster.EXPECT().PublishStatusChange(gomock.Any(), healthy.ID(), auction.StatusActive, gomock.Any()).Return(nil)
	s.expectNoExpiredClaims()

	s.scheduler.Tick(context.Background())
}
