package notify

import (
	"context"
	"encoding/json"
	"time"

	"auction-engine/internal/domain/auction"
	"auction-engine/internal/infra"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/shopspring/decimal"
)

const (
	subjectWinner = "notify.winner"
	subjectOutbid = "notify.outbid"
	subjectEnded  = "notify.ended"
	subjectAdmin  = "notify.admin"
)

// NatsDispatcher publishes notification payloads for the delivery pipeline
// to pick up. Delivery itself (mail, push) lives outside this service.
type NatsDispatcher struct {
	conn *nats.Conn
}

func NewNatsDispatcher(conn *nats.Conn) *NatsDispatcher {
	return &NatsDispatcher{conn: conn}
}

type winnerOfferMessage struct {
	AuctionID     uuid.UUID       `json:"auction_id"`
	Email         string          `json:"email"`
	Bidder        string          `json:"bidder"`
	Amount        decimal.Decimal `json:"amount"`
	ClaimDeadline time.Time       `json:"claim_deadline"`
}

type outbidMessage struct {
	AuctionID uuid.UUID       `json:"auction_id"`
	Email     string          `json:"email"`
	Bidder    string          `json:"bidder"`
	NewAmount decimal.Decimal `json:"new_amount"`
}

type endedMessage struct {
	AuctionID uuid.UUID `json:"auction_id"`
	Emails    []string  `json:"emails"`
}

type adminAlertMessage struct {
	AuctionID uuid.UUID `json:"auction_id"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
}

func (d *NatsDispatcher) SendWinnerOffer(_ context.Context, candidate auction.Bid, auctionID uuid.UUID, amount decimal.Decimal, claimDeadline time.Time) error {
	return d.publish(subjectWinner, winnerOfferMessage{
		AuctionID:     auctionID,
		Email:         candidate.Email,
		Bidder:        candidate.Bidder,
		Amount:        amount,
		ClaimDeadline: claimDeadline,
	})
}

func (d *NatsDispatcher) SendOutbidNotice(_ context.Context, bidder auction.Bid, auctionID uuid.UUID, newAmount decimal.Decimal) error {
	return d.publish(subjectOutbid, outbidMessage{
		AuctionID: auctionID,
		Email:     bidder.Email,
		Bidder:    bidder.Bidder,
		NewAmount: newAmount,
	})
}

func (d *NatsDispatcher) SendAuctionEnded(_ context.Context, bidders []auction.Bid, auctionID uuid.UUID) error {
	emails := make([]string, 0, len(bidders))
	for _, b := range bidders {
		emails = append(emails, b.Email)
	}
	return d.publish(subjectEnded, endedMessage{AuctionID: auctionID, Emails: emails})
}

func (d *NatsDispatcher) SendAdminAlert(_ context.Context, subject, message string, auctionID uuid.UUID) error {
	return d.publish(subjectAdmin, adminAlertMessage{
		AuctionID: auctionID,
		Subject:   subject,
		Message:   message,
	})
}

func (d *NatsDispatcher) publish(subject string, msg any) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return infra.WrapRepoErr("failed to marshal notification", err)
	}
	if err := d.conn.Publish(subject, payload); err != nil {
		return infra.WrapRepoErr("failed to publish notification", err)
	}
	return nil
}
