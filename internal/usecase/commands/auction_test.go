//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"auction-engine/internal/domain/auction"
	"auction-engine/internal/infra"
	"auction-engine/internal/pkg/clock"
	"auction-engine/internal/pkg/errs"
	"auction-engine/internal/usecase/commands"
	"auction-engine/tests/common/builder"
	commandsmock "auction-engine/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuctionCommandsTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	repo        *commandsmock.MockAuctionRepository
	broadcaster *commandsmock.MockEventBroadcaster
	clock       *clock.MockClock
	commands    commands.AuctionCommands
	baseTime    time.Time
}

func (s *AuctionCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = commandsmock.NewMockAuctionRepository(s.ctrl)
	s.broadcaster = commandsmock.NewMockEventBroadcaster(s.ctrl)
	s.baseTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.clock = clock.NewMockClock(s.baseTime)
	s.commands = commands.NewAuctionCommands(s.repo, s.broadcaster, s.clock)
}

func (s *AuctionCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuctionCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuctionCommandsTestSuite))
}

func (s *AuctionCommandsTestSuite) validParams() commands.CreateAuctionParams {
	return commands.CreateAuctionParams{
		TenantID:    "tenant-1",
		ProductRef:  "prod-100",
		Title:       "Vintage Lamp",
		StartTime:   s.baseTime.Add(time.Hour),
		EndTime:     s.baseTime.Add(2 * time.Hour),
		StartingBid: decimal.NewFromInt(100),
	}
}

func (s *AuctionCommandsTestSuite) TestCreate_ReturnsPendingSnapshot() {
	ctx := context.Background()
	params := s.validParams()

	s.repo.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, a *auction.Auction) error {
			s.Equal(params.TenantID, a.TenantID())
			s.Equal(params.ProductRef, a.ProductRef())
			s.Equal(auction.StatusPending, a.Status())
			s.True(a.CurrentBid().Equal(params.StartingBid))
			return nil
		})

	snap, err := s.commands.Create(ctx, params)
	s.Require().NoError(err)
	s.Equal("pending", snap.Status)
	s.Equal(0, snap.BidCount)
	s.True(snap.CurrentBid.Equal(params.StartingBid))
}

func (s *AuctionCommandsTestSuite) TestCreate_RejectsEndBeforeStart() {
	params := s.validParams()
	params.EndTime = params.StartTime.Add(-time.Minute)

	_, err := s.commands.Create(context.Background(), params)
	s.Require().ErrorIs(err, errs.ErrInvalidSchedule)
}

func (s *AuctionCommandsTestSuite) TestCreate_RejectsDuplicateLiveAuction() {
	ctx := context.Background()

	s.repo.EXPECT().Create(ctx, gomock.Any()).
		Return(infra.NewRepoErr("duplicate tenant/product", infra.KindDuplicateKey))

	_, err := s.commands.Create(ctx, s.validParams())
	s.Require().ErrorIs(err, errs.ErrDuplicateAuction)
}

func (s *AuctionCommandsTestSuite) TestClose_ForcesClosedAndBroadcasts() {
	a := builder.NewAuctionBuilder().
		With(func(b *builder.AuctionBuilder) { b.Status = auction.StatusClosed }).
		BuildEntity()
	ctx := context.Background()

	gomock.InOrder(
		s.repo.EXPECT().ForceClose(ctx, a.ID()).Return(nil),
		s.repo.EXPECT().FindByID(ctx, a.ID()).Return(a, nil),
		s.broadcaster.EXPECT().PublishStatusChange(ctx, a.ID(), auction.StatusClosed, gomock.Any()).Return(nil),
	)

	s.Require().NoError(s.commands.Close(ctx, a.ID()))
}

// Broadcast is best effort: a failed re-read after the close commits must not
// surface as an error to the admin.
func (s *AuctionCommandsTestSuite) TestClose_SucceedsWhenBroadcastReadFails() {
	id := uuid.New()
	ctx := context.Background()

	s.repo.EXPECT().ForceClose(ctx, id).Return(nil)
	s.repo.EXPECT().FindByID(ctx, id).
		Return(nil, infra.NewRepoErr("connection reset", infra.KindDBFailure))

	s.Require().NoError(s.commands.Close(ctx, id))
}

func (s *AuctionCommandsTestSuite) TestClose_UnknownAuction() {
	id := uuid.New()
	ctx := context.Background()

	s.repo.EXPECT().ForceClose(ctx, id).
		Return(infra.NewRepoErr("no such auction", infra.KindNotFound))

	s.Require().ErrorIs(s.commands.Close(ctx, id), errs.ErrAuctionNotFound)
}

func (s *AuctionCommandsTestSuite) TestSoftDelete() {
	id := uuid.New()
	ctx := context.Background()

	s.repo.EXPECT().SoftDelete(ctx, id).Return(nil)

	s.Require().NoError(s.commands.SoftDelete(ctx, id))
}

func (s *AuctionCommandsTestSuite) TestSoftDelete_UnknownAuction() {
	id := uuid.New()
	ctx := context.Background()

	s.repo.EXPECT().SoftDelete(ctx, id).
		Return(infra.NewRepoErr("no such auction", infra.KindNotFound))

	s.Require().ErrorIs(s.commands.SoftDelete(ctx, id), errs.ErrAuctionNotFound)
}
