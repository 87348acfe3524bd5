package auction

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bid is immutable once recorded. Idx is the position in the auction's
// append-only history; amounts are strictly increasing by Idx.
type Bid struct {
	Idx      int
	Bidder   string
	Email    string
	Amount   decimal.Decimal
	PlacedAt time.Time
}
