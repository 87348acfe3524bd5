package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"auction-engine/internal/handler/api"
	"auction-engine/internal/handler/middleware"
	"auction-engine/internal/handler/ws"
	"auction-engine/internal/pkg/config"
	"auction-engine/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	auctionHandler *api.AuctionHandler,
	bidHandler *api.BidHandler,
	liveHandler *ws.LiveHandler,
	adminAuth *middleware.AdminAuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	bidLimit := middleware.NewBidRateLimiter(cfg.Auction).Limit()
	setupRoutes(engine, auctionHandler, bidHandler, liveHandler, adminAuth, bidLimit)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(metrics.Middleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	auctionHandler *api.AuctionHandler,
	bidHandler *api.BidHandler,
	liveHandler *ws.LiveHandler,
	adminAuth *middleware.AdminAuthMiddleware,
	bidLimit gin.HandlerFunc,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", metrics.Handler())

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	engine.GET("/ws/auctions/:id", liveHandler.Serve)

	apiGroup := engine.Group("/api")
	{
		auctions := apiGroup.Group("/auctions")
		{
			addRoutes(auctions, []route{
				{Method: http.MethodGet, Path: "", Handler: auctionHandler.ListAuctions},
				{Method: http.MethodGet, Path: "/:id", Handler: auctionHandler.GetAuction},
				{Method: http.MethodGet, Path: "/:id/bids", Handler: auctionHandler.GetBids},
				{Method: http.MethodPost, Path: "/:id/bids", Handler: bidHandler.PlaceBid, Mw: []gin.HandlerFunc{bidLimit}},
				{Method: http.MethodPost, Path: "/:id/buy-now", Handler: bidHandler.BuyNow, Mw: []gin.HandlerFunc{bidLimit}},
				{Method: http.MethodPost, Path: "/:id/claim", Handler: bidHandler.Claim},
			})

			adminRequired := auctions.Group("")
			adminRequired.Use(adminAuth.RequireAdmin())
			addRoutes(adminRequired, []route{
				{Method: http.MethodPost, Path: "", Handler: auctionHandler.CreateAuction},
				{Method: http.MethodPost, Path: "/:id/close", Handler: auctionHandler.CloseAuction},
				{Method: http.MethodDelete, Path: "/:id", Handler: auctionHandler.DeleteAuction},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
