package commands

import (
	"context"
	"fmt"
	"log/slog"

	"auction-engine/internal/domain/auction"
	"auction-engine/internal/pkg/clock"
	"auction-engine/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

type ListingHandle struct {
	ProductID   string
	ListingURL  string
	AccessToken string
}

// FulfillmentProvisioner creates a private, price-locked purchasable listing
// for a confirmed winner.
type FulfillmentProvisioner interface {
	CreatePrivateListing(ctx context.Context, a *auction.Auction, winner auction.Bid) (*ListingHandle, error)
}

type provisionerImpl struct {
	commerce      CommerceClient
	tokens        AccessTokenIssuer
	storefrontURL string
	clock         clock.Clock
}

func NewFulfillmentProvisioner(
	commerce CommerceClient,
	tokens AccessTokenIssuer,
	storefrontURL string,
	clk clock.Clock,
) FulfillmentProvisioner {
	return &provisionerImpl{
		commerce:      commerce,
		tokens:        tokens,
		storefrontURL: storefrontURL,
		clock:         clk,
	}
}

// CreatePrivateListing duplicates the original product's descriptive data
// into a hidden listing with exactly one unit at the winning amount.
// Variant/price failures are fatal and leave no listing addressable to the
// winner; image copy failures are logged and skipped.
func (p *provisionerImpl) CreatePrivateListing(ctx context.Context, a *auction.Auction, winner auction.Bid) (*ListingHandle, error) {
	src, err := p.commerce.GetProduct(ctx, a.TenantID(), a.ProductRef())
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "read original product"), errs.ErrExternalService)
	}

	accessToken, err := p.tokens.Issue(winner.Email, a.ProductRef(), p.clock.Now())
	if err != nil {
		return nil, errs.Wrap(err, "issue listing access token")
	}

	var listing NewListing
	if err := copier.Copy(&listing, src); err != nil {
		return nil, errs.Wrap(err, "copy product descriptive data")
	}
	listing.Hidden = true
	listing.Metadata = map[string]string{
		"original_product_ref": a.ProductRef(),
		"auction_id":           a.ID().String(),
		"winner_email":         winner.Email,
		"access_token":         accessToken,
	}

	created, err := p.commerce.CreateProduct(ctx, a.TenantID(), listing)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "create private listing"), errs.ErrExternalService)
	}

	if err := p.commerce.CreateVariant(ctx, a.TenantID(), created.ID, NewVariant{
		Price:    winner.Amount,
		Quantity: 1,
	}); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "create price-locked variant"), errs.ErrExternalService)
	}

	if len(src.Images) > 0 {
		if err := p.commerce.AttachImages(ctx, a.TenantID(), created.ID, src.Images); err != nil {
			// Media copy is non-fatal: the listing is usable without images.
			slog.Warn("failed to copy product images to private listing",
				"auction_id", a.ID(), "product_id", created.ID, "error", err)
		}
	}

	return &ListingHandle{
		ProductID:   created.ID,
		ListingURL:  fmt.Sprintf("%s/listings/%s?token=%s", p.storefrontURL, created.Handle, accessToken),
		AccessToken: accessToken,
	}, nil
}
