package api

import (
	"errors"
	"net/http"

	reqdto "auction-engine/internal/handler/dto/request"
	resdto "auction-engine/internal/handler/dto/response"
	"auction-engine/internal/pkg/errs"
	"auction-engine/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type BidHandler struct {
	bidCommands commands.BidCommands
	resolver    *commands.WinnerResolver
}

func NewBidHandler(bidCommands commands.BidCommands, resolver *commands.WinnerResolver) *BidHandler {
	return &BidHandler{
		bidCommands: bidCommands,
		resolver:    resolver,
	}
}

// @Summary Place bid
// @Description Place a bid on an active auction
// @Tags bids
// @Accept json
// @Produce json
// @Param id path string true "Auction ID"
// @Param request body reqdto.PlaceBidRequest true "Bid request"
// @Success 201 {object} resdto.BidReceiptResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /auctions/{id}/bids [post]
func (h *BidHandler) PlaceBid(c *gin.Context) {
	id, ok := parseAuctionID(c)
	if !ok {
		return
	}

	var req reqdto.PlaceBidRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	receipt, err := h.bidCommands.PlaceBid(c.Request.Context(), id, req.Bidder, req.Email, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrAuctionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Auction not found",
			})
		case errors.Is(err, errs.ErrAuctionNotActive):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Auction is not active",
			})
		case errors.Is(err, errs.ErrAuctionWindowClosed):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Bidding window is closed",
			})
		case errors.Is(err, errs.ErrBidTooLow):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Bid must exceed the current bid",
			})
		case errors.Is(err, errs.ErrConflictRetryExhausted):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Auction is receiving concurrent bids, try again",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBidReceipt(receipt))
}

// @Summary Buy now
// @Description Immediately win the auction at the buy-now price
// @Tags bids
// @Accept json
// @Produce json
// @Param id path string true "Auction ID"
// @Param request body reqdto.BuyNowRequest true "Buy-now request"
// @Success 200 {object} resdto.BuyNowResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /auctions/{id}/buy-now [post]
func (h *BidHandler) BuyNow(c *gin.Context) {
	id, ok := parseAuctionID(c)
	if !ok {
		return
	}

	var req reqdto.BuyNowRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	receipt, err := h.bidCommands.BuyNow(c.Request.Context(), id, req.Buyer, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrAuctionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Auction not found",
			})
		case errors.Is(err, errs.ErrBuyNowUnavailable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Buy-now is not available for this auction",
			})
		case errors.Is(err, errs.ErrAuctionNotActive):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Auction is not active",
			})
		case errors.Is(err, errs.ErrAuctionWindowClosed):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Bidding window is closed",
			})
		case errors.Is(err, errs.ErrConflictRetryExhausted):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Auction state changed, try again",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBuyNowReceipt(receipt))
}

// @Summary Claim win
// @Description Confirm a winner claim within the claim window
// @Tags bids
// @Accept json
// @Produce json
// @Param id path string true "Auction ID"
// @Param request body reqdto.ClaimRequest true "Claim request"
// @Success 200 {object} resdto.ClaimResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /auctions/{id}/claim [post]
func (h *BidHandler) Claim(c *gin.Context) {
	id, ok := parseAuctionID(c)
	if !ok {
		return
	}

	var req reqdto.ClaimRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	receipt, err := h.resolver.Confirm(c.Request.Context(), id, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrAuctionNotFound), errors.Is(err, errs.ErrClaimNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Claim not found",
			})
		case errors.Is(err, errs.ErrNotCandidate):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Not the current winner candidate",
			})
		case errors.Is(err, errs.ErrClaimNotOffered):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Claim is not open for confirmation",
			})
		case errors.Is(err, errs.ErrClaimExpired):
			c.JSON(http.StatusGone, gin.H{
				"error": "Claim window has expired",
			})
		case errors.Is(err, errs.ErrExternalService):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Fulfillment is temporarily unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromClaimReceipt(receipt))
}
