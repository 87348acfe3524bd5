package ws

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"auction-engine/internal/infra/broadcast"
	"auction-engine/internal/pkg/errs"
	"auction-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 50 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// Browser origins are filtered by the CORS layer; the upgrade itself
	// accepts any origin.
	CheckOrigin: func(*http.Request) bool { return true },
}

// LiveHandler streams auction updates to websocket clients. Each connection
// subscribes to the auction's pub/sub channel and relays messages verbatim,
// after sending the current snapshot so clients need no separate fetch.
type LiveHandler struct {
	broadcaster *broadcast.RedisBroadcaster
	queries     queries.AuctionQueries
}

func NewLiveHandler(broadcaster *broadcast.RedisBroadcaster, q queries.AuctionQueries) *LiveHandler {
	return &LiveHandler{broadcaster: broadcaster, queries: q}
}

func (h *LiveHandler) Serve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid auction ID format"})
		return
	}

	snap, err := h.queries.GetSnapshot(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrAuctionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Auction not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the handshake failure.
		slog.Warn("websocket upgrade failed", "auction_id", id, "error", err)
		return
	}
	defer conn.Close()

	ctx := c.Request.Context()
	sub := h.broadcaster.Subscribe(ctx, id)
	defer sub.Close()

	initial, err := json.Marshal(gin.H{"type": "snapshot", "snapshot": snap})
	if err == nil {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, initial); err != nil {
			return
		}
	}

	// Reader goroutine only services control frames and signals close.
	done := make(chan struct{})
	go func() {
		defer close(done)
		conn.SetReadLimit(512)
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	ch := sub.Channel()
	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
