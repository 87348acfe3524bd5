package repository

import (
	"context"
	"errors"
	"time"

	"auction-engine/internal/domain/auction"
	"auction-engine/internal/infra"
	"auction-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const pgUniqueViolation = "23505"

// AuctionRepository is the Postgres write-side store. Conditional UPDATEs on
// the previously read value are the compare-and-set primitive; a zero row
// count means the expectation no longer held and surfaces as KindConflict.
type AuctionRepository struct {
	pool *pgxpool.Pool
}

func NewAuctionRepository(pool *pgxpool.Pool) *AuctionRepository {
	return &AuctionRepository{pool: pool}
}

func (r *AuctionRepository) Create(ctx context.Context, a *auction.Auction) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO auctions (
			id, tenant_id, product_ref, title,
			start_time, end_time,
			starting_bid, current_bid, buy_now_price,
			status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		a.ID(), a.TenantID(), a.ProductRef(), a.Title(),
		a.StartTime(), a.EndTime(),
		pgconv.NumericFromDecimal(a.StartingBid()),
		pgconv.NumericFromDecimal(a.CurrentBid()),
		pgconv.NumericPtrFromDecimal(a.BuyNowPrice()),
		a.Status().String(), a.CreatedAt(), a.UpdatedAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("auction already exists for product", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create auction", err)
	}
	return nil
}

func (r *AuctionRepository) FindByID(ctx context.Context, id uuid.UUID) (*auction.Auction, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, tenant_id, product_ref, title,
		       start_time, end_time,
		       starting_bid, current_bid, buy_now_price,
		       status, result, created_at, updated_at
		FROM auctions
		WHERE id = $1 AND deleted_at IS NULL`,
		id,
	)
	a, err := scanAuction(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("auction not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find auction", err)
	}

	bids, err := r.loadBids(ctx, id)
	if err != nil {
		return nil, err
	}
	return reconstruct(a, bids), nil
}

// AppendBid extends the history and advances current_bid in one transaction,
// conditioned on the caller's snapshot of current_bid.
func (r *AuctionRepository) AppendBid(ctx context.Context, id uuid.UUID, b auction.Bid, expectedCurrentBid decimal.Decimal) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE auctions
			SET current_bid = $1, updated_at = $2
			WHERE id = $3 AND status = 'active' AND current_bid = $4 AND deleted_at IS NULL`,
			pgconv.NumericFromDecimal(b.Amount), b.PlacedAt, id,
			pgconv.NumericFromDecimal(expectedCurrentBid),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to advance current bid", err)
		}
		if tag.RowsAffected() == 0 {
			return infra.NewRepoErr("current bid changed since read", infra.KindConflict)
		}
		return r.insertBid(ctx, tx, id, b)
	})
}

// ApplyBuyNow records the terminal bid, forces ended and stores the implicit
// claim atomically.
func (r *AuctionRepository) ApplyBuyNow(ctx context.Context, id uuid.UUID, b auction.Bid, expectedCurrentBid decimal.Decimal, claim auction.WinnerClaim) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE auctions
			SET current_bid = $1, status = 'ended', updated_at = $2
			WHERE id = $3 AND status = 'active' AND current_bid = $4 AND deleted_at IS NULL`,
			pgconv.NumericFromDecimal(b.Amount), b.PlacedAt, id,
			pgconv.NumericFromDecimal(expectedCurrentBid),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to apply buy now", err)
		}
		if tag.RowsAffected() == 0 {
			return infra.NewRepoErr("auction changed since read", infra.KindConflict)
		}
		if err := r.insertBid(ctx, tx, id, b); err != nil {
			return err
		}
		return insertClaim(ctx, tx, id, claim, b.PlacedAt)
	})
}

func (r *AuctionRepository) SetStatus(ctx context.Context, id uuid.UUID, next, expected auction.Status) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE auctions
		SET status = $1, updated_at = now()
		WHERE id = $2 AND status = $3 AND deleted_at IS NULL`,
		next.String(), id, expected.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to set status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr("status changed since read", infra.KindConflict)
	}
	return nil
}

// ForceClose is the manual admin override; already-closed is not an error.
func (r *AuctionRepository) ForceClose(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE auctions
		SET status = 'closed', updated_at = now()
		WHERE id = $1 AND status <> 'closed' AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to close auction", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.pool.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM auctions WHERE id = $1 AND deleted_at IS NULL)`, id,
		).Scan(&exists); err != nil {
			return infra.WrapRepoErr("failed to check auction existence", err)
		}
		if !exists {
			return infra.NewRepoErr("auction not found", infra.KindNotFound)
		}
	}
	return nil
}

func (r *AuctionRepository) SetResult(ctx context.Context, id uuid.UUID, result auction.Result) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE auctions
		SET result = $1, updated_at = now()
		WHERE id = $2 AND deleted_at IS NULL`,
		string(result), id,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to set result", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr("auction not found", infra.KindNotFound)
	}
	return nil
}

func (r *AuctionRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE auctions
		SET deleted_at = now(), updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to soft delete auction", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr("auction not found", infra.KindNotFound)
	}
	return nil
}

func (r *AuctionRepository) CreateClaim(ctx context.Context, id uuid.UUID, claim auction.WinnerClaim) error {
	return insertClaim(ctx, r.pool, id, claim, time.Now())
}

func (r *AuctionRepository) UpdateClaim(ctx context.Context, id uuid.UUID, claim auction.WinnerClaim, expectedCandidateIdx int, expectedState auction.ClaimState) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE winner_claims
		SET candidate_idx = $1, state = $2, deadline = $3, attempted = $4,
		    listing_url = $5, access_token_hash = $6, updated_at = now()
		WHERE auction_id = $7 AND candidate_idx = $8 AND state = $9`,
		claim.CandidateIdx, string(claim.State), claimDeadline(claim), attemptedInt32(claim.Attempted),
		claim.ListingURL, claim.TokenHash,
		id, expectedCandidateIdx, string(expectedState),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update claim", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr("claim changed since read", infra.KindConflict)
	}
	return nil
}

func (r *AuctionRepository) FindClaim(ctx context.Context, id uuid.UUID) (*auction.WinnerClaim, error) {
	var (
		candidateIdx int
		state        string
		deadline     pgtype.Timestamptz
		attempted    []int32
		listingURL   pgtype.Text
		tokenHash    pgtype.Text
	)
	err := r.pool.QueryRow(ctx, `
		SELECT candidate_idx, state, deadline, attempted, listing_url, access_token_hash
		FROM winner_claims
		WHERE auction_id = $1`,
		id,
	).Scan(&candidateIdx, &state, &deadline, &attempted, &listingURL, &tokenHash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("claim not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find claim", err)
	}

	claim := &auction.WinnerClaim{
		CandidateIdx: candidateIdx,
		State:        auction.ClaimState(state),
		Attempted:    attemptedInts(attempted),
		ListingURL:   pgconv.StringPtrFromPgtype(listingURL),
		TokenHash:    pgconv.StringPtrFromPgtype(tokenHash),
	}
	if deadline.Valid {
		claim.Deadline = deadline.Time
	}
	return claim, nil
}

func (r *AuctionRepository) ListDueTransitions(ctx context.Context, now time.Time) ([]*auction.Auction, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, tenant_id, product_ref, title,
		       start_time, end_time,
		       starting_bid, current_bid, buy_now_price,
		       status, result, created_at, updated_at
		FROM auctions
		WHERE deleted_at IS NULL
		  AND ((status = 'pending' AND start_time <= $1)
		    OR (status = 'active' AND end_time <= $1))
		ORDER BY end_time`,
		now,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list due transitions", err)
	}
	defer rows.Close()

	var result []*auction.Auction
	for rows.Next() {
		a, err := scanAuction(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan auction", err)
		}
		bids, err := r.loadBids(ctx, a.id)
		if err != nil {
			return nil, err
		}
		result = append(result, reconstruct(a, bids))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate due transitions", err)
	}
	return result, nil
}

func (r *AuctionRepository) ListExpiredClaims(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.auction_id
		FROM winner_claims c
		JOIN auctions a ON a.id = c.auction_id
		WHERE c.state = 'offered' AND c.deadline < $1 AND a.deleted_at IS NULL`,
		now,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expired claims", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan claim id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate expired claims", err)
	}
	return ids, nil
}

// --- helpers ---

type auctionRow struct {
	id          uuid.UUID
	tenantID    string
	productRef  string
	title       string
	startTime   time.Time
	endTime     time.Time
	startingBid pgtype.Numeric
	currentBid  pgtype.Numeric
	buyNowPrice pgtype.Numeric
	status      string
	result      pgtype.Text
	createdAt   time.Time
	updatedAt   time.Time
}

func scanAuction(row pgx.Row) (auctionRow, error) {
	var a auctionRow
	err := row.Scan(
		&a.id, &a.tenantID, &a.productRef, &a.title,
		&a.startTime, &a.endTime,
		&a.startingBid, &a.currentBid, &a.buyNowPrice,
		&a.status, &a.result, &a.createdAt, &a.updatedAt,
	)
	return a, err
}

func reconstruct(a auctionRow, bids []auction.Bid) *auction.Auction {
	var result *auction.Result
	if a.result.Valid {
		res := auction.Result(a.result.String)
		result = &res
	}
	return auction.ReconstructAuction(
		a.id, a.tenantID, a.productRef, a.title,
		a.startTime, a.endTime,
		pgconv.DecimalFromNumeric(a.startingBid),
		pgconv.DecimalFromNumeric(a.currentBid),
		pgconv.DecimalPtrFromNumeric(a.buyNowPrice),
		auction.Status(a.status), result, bids,
		a.createdAt, a.updatedAt,
	)
}

func (r *AuctionRepository) loadBids(ctx context.Context, id uuid.UUID) ([]auction.Bid, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT idx, bidder, bidder_email, amount, created_at
		FROM bids
		WHERE auction_id = $1
		ORDER BY idx`,
		id,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load bids", err)
	}
	defer rows.Close()

	var bids []auction.Bid
	for rows.Next() {
		var (
			b      auction.Bid
			amount pgtype.Numeric
		)
		if err := rows.Scan(&b.Idx, &b.Bidder, &b.Email, &amount, &b.PlacedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan bid", err)
		}
		b.Amount = pgconv.DecimalFromNumeric(amount)
		bids = append(bids, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bids", err)
	}
	return bids, nil
}

func (r *AuctionRepository) insertBid(ctx context.Context, tx pgx.Tx, id uuid.UUID, b auction.Bid) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO bids (auction_id, idx, bidder, bidder_email, amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		id, b.Idx, b.Bidder, b.Email, pgconv.NumericFromDecimal(b.Amount), b.PlacedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			// The (auction_id, idx) key caught a concurrent append.
			return infra.WrapRepoErr("bid index already taken", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to insert bid", err)
	}
	return nil
}

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func insertClaim(ctx context.Context, db execer, id uuid.UUID, claim auction.WinnerClaim, now time.Time) error {
	_, err := db.Exec(ctx, `
		INSERT INTO winner_claims (
			auction_id, candidate_idx, state, deadline, attempted,
			listing_url, access_token_hash, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		id, claim.CandidateIdx, string(claim.State), claimDeadline(claim),
		attemptedInt32(claim.Attempted), claim.ListingURL, claim.TokenHash, now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("claim already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert claim", err)
	}
	return nil
}

func (r *AuctionRepository) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit transaction", err)
	}
	return nil
}

func claimDeadline(claim auction.WinnerClaim) pgtype.Timestamptz {
	if claim.Deadline.IsZero() {
		return pgtype.Timestamptz{Valid: false}
	}
	return pgconv.TimeToPgtype(claim.Deadline)
}

func attemptedInt32(attempted []int) []int32 {
	out := make([]int32, len(attempted))
	for i, v := range attempted {
		out[i] = int32(v)
	}
	return out
}

func attemptedInts(attempted []int32) []int {
	if len(attempted) == 0 {
		return nil
	}
	out := make([]int, len(attempted))
	for i, v := range attempted {
		out[i] = int(v)
	}
	return out
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
