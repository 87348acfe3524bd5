package readstore

import (
	"context"

	"auction-engine/internal/infra"
	"auction-engine/internal/pkg/pgconv"
	"auction-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AuctionReadStore serves the query side directly from SQL projections, no
// entity reconstruction.
type AuctionReadStore struct {
	pool *pgxpool.Pool
}

func NewAuctionReadStore(pool *pgxpool.Pool) *AuctionReadStore {
	return &AuctionReadStore{pool: pool}
}

func (s *AuctionReadStore) GetSnapshot(ctx context.Context, id uuid.UUID) (*queries.AuctionSnapshot, error) {
	var (
		snap        queries.AuctionSnapshot
		startingBid pgtype.Numeric
		currentBid  pgtype.Numeric
		buyNowPrice pgtype.Numeric
		topBidder   pgtype.Text
		result      pgtype.Text
	)
	err := s.pool.QueryRow(ctx, `
		SELECT a.id, a.tenant_id, a.product_ref, a.title, a.status,
		       a.starting_bid, a.current_bid, a.buy_now_price,
		       (SELECT count(*) FROM bids b WHERE b.auction_id = a.id),
		       (SELECT b.bidder FROM bids b WHERE b.auction_id = a.id ORDER BY b.idx DESC LIMIT 1),
		       a.start_time, a.end_time, a.result, a.updated_at
		FROM auctions a
		WHERE a.id = $1 AND a.deleted_at IS NULL`,
		id,
	).Scan(
		&snap.ID, &snap.TenantID, &snap.ProductRef, &snap.Title, &snap.Status,
		&startingBid, &currentBid, &buyNowPrice,
		&snap.BidCount, &topBidder,
		&snap.StartTime, &snap.EndTime, &result, &snap.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("auction not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get auction snapshot", err)
	}

	snap.StartingBid = pgconv.DecimalFromNumeric(startingBid)
	snap.CurrentBid = pgconv.DecimalFromNumeric(currentBid)
	snap.BuyNowPrice = pgconv.DecimalPtrFromNumeric(buyNowPrice)
	snap.TopBidder = pgconv.StringPtrFromPgtype(topBidder)
	snap.Result = pgconv.StringPtrFromPgtype(result)
	return &snap, nil
}

func (s *AuctionReadStore) ListBids(ctx context.Context, id uuid.UUID) ([]*queries.BidView, error) {
	var exists bool
	if err := s.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM auctions WHERE id = $1 AND deleted_at IS NULL)`, id,
	).Scan(&exists); err != nil {
		return nil, infra.WrapRepoErr("failed to check auction existence", err)
	}
	if !exists {
		return nil, infra.NewRepoErr("auction not found", infra.KindNotFound)
	}

	rows, err := s.pool.Query(ctx, `
		SELECT idx, bidder, amount, created_at
		FROM bids
		WHERE auction_id = $1
		ORDER BY idx`,
		id,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bids", err)
	}
	defer rows.Close()

	bids := make([]*queries.BidView, 0)
	for rows.Next() {
		var (
			b      queries.BidView
			amount pgtype.Numeric
		)
		if err := rows.Scan(&b.Idx, &b.Bidder, &amount, &b.PlacedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan bid", err)
		}
		b.Amount = pgconv.DecimalFromNumeric(amount)
		bids = append(bids, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bids", err)
	}
	return bids, nil
}

func (s *AuctionReadStore) ListByTenant(ctx context.Context, tenantID string) ([]*queries.AuctionListItem, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT a.id, a.product_ref, a.title, a.status, a.current_bid,
		       (SELECT count(*) FROM bids b WHERE b.auction_id = a.id),
		       a.end_time, a.result
		FROM auctions a
		WHERE a.tenant_id = $1 AND a.deleted_at IS NULL
		ORDER BY a.end_time`,
		tenantID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list auctions", err)
	}
	defer rows.Close()

	items := make([]*queries.AuctionListItem, 0)
	for rows.Next() {
		var (
			item       queries.AuctionListItem
			currentBid pgtype.Numeric
			result     pgtype.Text
		)
		if err := rows.Scan(
			&item.ID, &item.ProductRef, &item.Title, &item.Status, &currentBid,
			&item.BidCount, &item.EndTime, &result,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan auction", err)
		}
		item.CurrentBid = pgconv.DecimalFromNumeric(currentBid)
		item.Result = pgconv.StringPtrFromPgtype(result)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate auctions", err)
	}
	return items, nil
}
