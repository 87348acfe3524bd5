//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"auction-engine/internal/handler/api"
	resdto "auction-engine/internal/handler/dto/response"
	"auction-engine/internal/pkg/errs"
	"auction-engine/internal/usecase/queries"
	"auction-engine/tests/common/builder"
	"auction-engine/tests/common/httptest"
	"auction-engine/tests/common/testutil"
	commandsmock "auction-engine/tests/mock/commands"
	queriesmock "auction-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testAdminToken = "test-admin-token"

type AuctionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuctionCommands
	mockQueries  *queriesmock.MockAuctionQueries
	handler      *api.AuctionHandler
}

func (s *AuctionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuctionCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAuctionQueries(s.mockCtrl)
	s.handler = api.NewAuctionHandler(s.mockCommands, s.mockQueries)

	// Mock admin auth middleware for testing
	adminMiddleware := func(c *gin.Context) {
		if c.GetHeader("X-Admin-Token") != testAdminToken {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}

	// Setup routes
	s.router.POST("/auctions", adminMiddleware, s.handler.CreateAuction)
	s.router.GET("/auctions", s.handler.ListAuctions)
	s.router.GET("/auctions/:id", s.handler.GetAuction)
	s.router.GET("/auctions/:id/bids", s.handler.GetBids)
	s.router.POST("/auctions/:id/close", adminMiddleware, s.handler.CloseAuction)
	s.router.DELETE("/auctions/:id", adminMiddleware, s.handler.DeleteAuction)
}

func (s *AuctionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuctionHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuctionHandlerTestSuite))
}

type testCaseAuction struct {
	name         string
	mutate       func(m map[string]any)
	expectCode   int
	expectInBody string
}

// ================================================================================
// TestCreateAuction
// ================================================================================

func (s *AuctionHandlerTestSuite) TestCreateAuction() {
	url := "/auctions"

	reqBody := builder.NewAuctionBuilder().BuildCreateRequestDTO()
	returnSnap := builder.NewAuctionBuilder().BuildSnapshot()

	missing := []testCaseAuction{
		{name: "missing field: tenant_id (required)", mutate: testutil.Field("tenant_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: product_ref (required)", mutate: testutil.Field("product_ref", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: title (required)", mutate: testutil.Field("title", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: start_time (required)", mutate: testutil.Field("start_time", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: end_time (required)", mutate: testutil.Field("end_time", nil), expectCode: http.StatusBadRequest},
	}

	malformed := []testCaseAuction{
		{name: "malformed start_time", mutate: testutil.Field("start_time", "not-a-time"), expectCode: http.StatusBadRequest},
		{name: "malformed starting_bid", mutate: testutil.Field("starting_bid", "abc"), expectCode: http.StatusBadRequest},
	}

	allValidationTestCases := [][]testCaseAuction{missing, malformed}

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(returnSnap, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, testAdminToken)

		var body resdto.AuctionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnSnap.ID, body.ID)
		s.Equal(returnSnap.Status, body.Status)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, testCaseGroup := range allValidationTestCases {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, testAdminToken)
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
				})
			}
		}
	})

	s.Run("error: 401 Unauthorized without admin token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{"invalid schedule", errs.ErrInvalidSchedule, http.StatusBadRequest},
			{"domain validation", errs.ErrDomainValidation, http.StatusUnprocessableEntity},
			{"duplicate auction", errs.ErrDuplicateAuction, http.StatusConflict},
			{"unexpected error", errors.New("boom"), http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, testAdminToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

// ================================================================================
// TestGetAuction
// ================================================================================

func (s *AuctionHandlerTestSuite) TestGetAuction() {
	snap := builder.NewAuctionBuilder().WithBids(100, 150).BuildSnapshot()

	s.Run("success: returns 200 OK with snapshot", func() {
		s.mockQueries.EXPECT().GetSnapshot(gomock.Any(), snap.ID).
			Return(snap, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auctions/"+snap.ID.String(), nil, "")

		var body resdto.AuctionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(snap.ID, body.ID)
		s.Equal(2, body.BidCount)
		s.True(snap.CurrentBid.Equal(body.CurrentBid))
	})

	s.Run("error: 400 Bad Request on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auctions/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid auction ID")
	})

	s.Run("error: 404 Not Found for unknown auction", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetSnapshot(gomock.Any(), id).
			Return(nil, errs.ErrAuctionNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auctions/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Auction not found")
	})
}

// ================================================================================
// TestGetBids
// ================================================================================

func (s *AuctionHandlerTestSuite) TestGetBids() {
	id := uuid.New()

	s.Run("success: returns ordered bid history", func() {
		b := builder.NewAuctionBuilder().WithBids(100, 150, 200)
		views := make([]*queries.BidView, len(b.Bids))
		for i, bid := range b.Bids {
			views[i] = &queries.BidView{
				Idx:      bid.Idx,
				Bidder:   bid.Bidder,
				Amount:   bid.Amount,
				PlacedAt: bid.PlacedAt,
			}
		}
		s.mockQueries.EXPECT().ListBids(gomock.Any(), id).Return(views, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auctions/"+id.String()+"/bids", nil, "")

		var body []resdto.BidResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 3)
		s.Equal(0, body[0].Idx)
		s.Equal("bidder-2", body[2].Bidder)
	})

	s.Run("success: empty history is an empty array", func() {
		s.mockQueries.EXPECT().ListBids(gomock.Any(), id).Return([]*queries.BidView{}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auctions/"+id.String()+"/bids", nil, "")

		var body []resdto.BidResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})

	s.Run("error: 404 Not Found for unknown auction", func() {
		s.mockQueries.EXPECT().ListBids(gomock.Any(), id).
			Return(nil, errs.ErrAuctionNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auctions/"+id.String()+"/bids", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Auction not found")
	})
}

// ================================================================================
// TestListAuctions
// ================================================================================

func (s *AuctionHandlerTestSuite) TestListAuctions() {
	s.Run("success: returns tenant auctions", func() {
		b := builder.NewAuctionBuilder()
		items := []*queries.AuctionListItem{{
			ID:         b.ID,
			ProductRef: b.ProductRef,
			Title:      b.Title,
			Status:     "active",
			CurrentBid: b.CurrentBid,
			EndTime:    b.EndTime,
		}}
		s.mockQueries.EXPECT().ListByTenant(gomock.Any(), "tenant-1").Return(items, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auctions?tenant_id=tenant-1", nil, "")

		var body []resdto.AuctionListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal(b.ID, body[0].ID)
	})

	s.Run("error: 400 Bad Request without tenant_id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auctions", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "tenant_id")
	})
}

// ================================================================================
// TestCloseAuction
// ================================================================================

func (s *AuctionHandlerTestSuite) TestCloseAuction() {
	id := uuid.New()
	url := "/auctions/" + id.String() + "/close"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Close(gomock.Any(), id).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, testAdminToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 401 Unauthorized without admin token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 404 Not Found for unknown auction", func() {
		s.mockCommands.EXPECT().Close(gomock.Any(), id).
			Return(errs.ErrAuctionNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, testAdminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Auction not found")
	})
}

// ================================================================================
// TestDeleteAuction
// ================================================================================

func (s *AuctionHandlerTestSuite) TestDeleteAuction() {
	id := uuid.New()
	url := "/auctions/" + id.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().SoftDelete(gomock.Any(), id).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, testAdminToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found for unknown auction", func() {
		s.mockCommands.EXPECT().SoftDelete(gomock.Any(), id).
			Return(errs.ErrAuctionNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, testAdminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Auction not found")
	})
}
