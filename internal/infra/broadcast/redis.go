package broadcast

import (
	"context"
	"encoding/json"
	"fmt"

	"auction-engine/internal/domain/auction"
	"auction-engine/internal/infra"
	"auction-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Channel carries one auction's live updates; websocket sessions subscribe to
// it per connection.
func Channel(auctionID uuid.UUID) string {
	return fmt.Sprintf("auction:updates:%s", auctionID)
}

type event struct {
	Type     string                   `json:"type"`
	Status   string                   `json:"status,omitempty"`
	Snapshot *queries.AuctionSnapshot `json:"snapshot,omitempty"`
}

type RedisBroadcaster struct {
	client *redis.Client
}

func NewRedisBroadcaster(client *redis.Client) *RedisBroadcaster {
	return &RedisBroadcaster{client: client}
}

func (b *RedisBroadcaster) PublishBidUpdate(ctx context.Context, auctionID uuid.UUID, snap *queries.AuctionSnapshot) error {
	return b.publish(ctx, auctionID, event{Type: "bid", Snapshot: snap})
}

func (b *RedisBroadcaster) PublishStatusChange(ctx context.Context, auctionID uuid.UUID, status auction.Status, snap *queries.AuctionSnapshot) error {
	return b.publish(ctx, auctionID, event{Type: "status", Status: status.String(), Snapshot: snap})
}

func (b *RedisBroadcaster) publish(ctx context.Context, auctionID uuid.UUID, ev event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return infra.WrapRepoErr("failed to marshal event", err)
	}
	if err := b.client.Publish(ctx, Channel(auctionID), payload).Err(); err != nil {
		return infra.WrapRepoErr("failed to publish event", err)
	}
	return nil
}

// Subscribe opens a pub/sub subscription for one auction's channel. The
// caller owns the returned subscription and must close it.
func (b *RedisBroadcaster) Subscribe(ctx context.Context, auctionID uuid.UUID) *redis.PubSub {
	return b.client.Subscribe(ctx, Channel(auctionID))
}
