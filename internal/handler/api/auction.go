package api

import (
	"errors"
	"net/http"

	reqdto "auction-engine/internal/handler/dto/request"
	resdto "auction-engine/internal/handler/dto/response"
	"auction-engine/internal/pkg/errs"
	"auction-engine/internal/usecase/commands"
	"auction-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuctionHandler struct {
	auctionCommands commands.AuctionCommands
	auctionQueries  queries.AuctionQueries
}

func NewAuctionHandler(auctionCommands commands.AuctionCommands, auctionQueries queries.AuctionQueries) *AuctionHandler {
	return &AuctionHandler{
		auctionCommands: auctionCommands,
		auctionQueries:  auctionQueries,
	}
}

// @Summary Create auction
// @Description Register a new auction for a product
// @Tags auctions
// @Accept json
// @Produce json
// @Param X-Admin-Token header string true "Admin API token"
// @Param request body reqdto.CreateAuctionRequest true "Auction request"
// @Success 201 {object} resdto.AuctionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auctions [post]
func (h *AuctionHandler) CreateAuction(c *gin.Context) {
	var req reqdto.CreateAuctionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	snap, err := h.auctionCommands.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidSchedule):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "End time must be after start time",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		case errors.Is(err, errs.ErrDuplicateAuction):
			c.JSON(http.StatusConflict, gin.H{
				"error": "An auction already exists for this product",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSnapshot(snap))
}

// @Summary Get auction
// @Description Get the current auction snapshot
// @Tags auctions
// @Produce json
// @Param id path string true "Auction ID"
// @Success 200 {object} resdto.AuctionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auctions/{id} [get]
func (h *AuctionHandler) GetAuction(c *gin.Context) {
	id, ok := parseAuctionID(c)
	if !ok {
		return
	}

	snap, err := h.auctionQueries.GetSnapshot(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrAuctionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Auction not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSnapshot(snap))
}

// @Summary Get bid history
// @Description Get the ordered bid history of an auction
// @Tags auctions
// @Produce json
// @Param id path string true "Auction ID"
// @Success 200 {array} resdto.BidResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auctions/{id}/bids [get]
func (h *AuctionHandler) GetBids(c *gin.Context) {
	id, ok := parseAuctionID(c)
	if !ok {
		return
	}

	bids, err := h.auctionQueries.ListBids(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrAuctionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Auction not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	response := make([]*resdto.BidResponse, len(bids))
	for i, b := range bids {
		response[i] = resdto.FromBidView(b)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary List auctions
// @Description List auctions for a tenant
// @Tags auctions
// @Produce json
// @Param tenant_id query string true "Tenant ID"
// @Success 200 {array} resdto.AuctionListResponse
// @Failure 400 {object} map[string]string
// @Router /auctions [get]
func (h *AuctionHandler) ListAuctions(c *gin.Context) {
	tenantID := c.Query("tenant_id")
	if tenantID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "tenant_id query parameter is required",
		})
		return
	}

	items, err := h.auctionQueries.ListByTenant(c.Request.Context(), tenantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.AuctionListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromAuctionListItem(item)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Close auction
// @Description Force an auction closed regardless of schedule
// @Tags auctions
// @Produce json
// @Param X-Admin-Token header string true "Admin API token"
// @Param id path string true "Auction ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auctions/{id}/close [post]
func (h *AuctionHandler) CloseAuction(c *gin.Context) {
	id, ok := parseAuctionID(c)
	if !ok {
		return
	}

	if err := h.auctionCommands.Close(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, errs.ErrAuctionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Auction not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete auction
// @Description Soft delete an auction
// @Tags auctions
// @Produce json
// @Param X-Admin-Token header string true "Admin API token"
// @Param id path string true "Auction ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auctions/{id} [delete]
func (h *AuctionHandler) DeleteAuction(c *gin.Context) {
	id, ok := parseAuctionID(c)
	if !ok {
		return
	}

	if err := h.auctionCommands.SoftDelete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, errs.ErrAuctionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Auction not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func parseAuctionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid auction ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}
