package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Auction lifecycle errors
	ErrAuctionNotFound  = errors.New("auction not found")
	ErrAuctionNotActive = errors.New("auction not active")
	ErrAuctionClosed    = errors.New("auction closed")
	ErrDuplicateAuction = errors.New("auction already exists for product")
	ErrInvalidSchedule  = errors.New("invalid auction schedule")

	// Bid errors
	ErrBidTooLow              = errors.New("bid too low")
	ErrAuctionWindowClosed    = errors.New("auction window closed")
	ErrConflictRetryExhausted = errors.New("concurrent bid conflict, retry exhausted")
	ErrBuyNowUnavailable      = errors.New("buy now unavailable")

	// Claim errors
	ErrClaimNotFound   = errors.New("winner claim not found")
	ErrClaimNotOffered = errors.New("winner claim not in offered state")
	ErrClaimExpired    = errors.New("claim window expired")
	ErrNotCandidate    = errors.New("claimant is not the current candidate")

	// Fulfillment errors
	ErrExternalService = errors.New("commerce platform request failed")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
