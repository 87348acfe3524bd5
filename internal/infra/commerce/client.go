package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"auction-engine/internal/pkg/config"
	"auction-engine/internal/pkg/errs"
	"auction-engine/internal/usecase/commands"

	"golang.org/x/time/rate"
)

// Client talks to the commerce platform's admin API. Outbound calls share a
// token-bucket limiter so a burst of fulfillments cannot trip the platform's
// rate limit.
type Client struct {
	baseURL  string
	apiToken string
	http     *http.Client
	limiter  *rate.Limiter
}

func NewClient(cfg config.CommerceConfig) *Client {
	return &Client{
		baseURL:  cfg.BaseURL,
		apiToken: cfg.APIToken,
		http:     &http.Client{Timeout: cfg.Timeout},
		limiter:  rate.NewLimiter(rate.Limit(cfg.RatePerSec), 1),
	}
}

type productPayload struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Vendor      string            `json:"vendor"`
	Handle      string            `json:"handle"`
	Options     []optionPayload   `json:"options"`
	Images      []imagePayload    `json:"images"`
	Hidden      bool              `json:"hidden"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type optionPayload struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

type imagePayload struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

type variantPayload struct {
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
}

func (c *Client) GetProduct(ctx context.Context, tenantID, productRef string) (*commands.ProductSnapshot, error) {
	var p productPayload
	path := fmt.Sprintf("/api/tenants/%s/products/%s", tenantID, productRef)
	if err := c.do(ctx, http.MethodGet, path, nil, &p); err != nil {
		return nil, err
	}

	snap := &commands.ProductSnapshot{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Vendor:      p.Vendor,
	}
	for _, o := range p.Options {
		snap.Options = append(snap.Options, commands.ProductOption{Name: o.Name, Values: o.Values})
	}
	for _, img := range p.Images {
		snap.Images = append(snap.Images, commands.ProductImage{URL: img.URL, Alt: img.Alt})
	}
	return snap, nil
}

func (c *Client) CreateProduct(ctx context.Context, tenantID string, listing commands.NewListing) (*commands.CreatedListing, error) {
	body := productPayload{
		Title:       listing.Title,
		Description: listing.Description,
		Vendor:      listing.Vendor,
		Hidden:      listing.Hidden,
		Metadata:    listing.Metadata,
	}
	for _, o := range listing.Options {
		body.Options = append(body.Options, optionPayload{Name: o.Name, Values: o.Values})
	}

	var created struct {
		ID     string `json:"id"`
		Handle string `json:"handle"`
	}
	path := fmt.Sprintf("/api/tenants/%s/products", tenantID)
	if err := c.do(ctx, http.MethodPost, path, body, &created); err != nil {
		return nil, err
	}
	return &commands.CreatedListing{ID: created.ID, Handle: created.Handle}, nil
}

func (c *Client) CreateVariant(ctx context.Context, tenantID, productID string, v commands.NewVariant) error {
	body := variantPayload{Price: v.Price.String(), Quantity: v.Quantity}
	path := fmt.Sprintf("/api/tenants/%s/products/%s/variants", tenantID, productID)
	return c.do(ctx, http.MethodPost, path, body, nil)
}

func (c *Client) AttachImages(ctx context.Context, tenantID, productID string, images []commands.ProductImage) error {
	body := struct {
		Images []imagePayload `json:"images"`
	}{}
	for _, img := range images {
		body.Images = append(body.Images, imagePayload{URL: img.URL, Alt: img.Alt})
	}
	path := fmt.Sprintf("/api/tenants/%s/products/%s/images", tenantID, productID)
	return c.do(ctx, http.MethodPost, path, body, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return errs.Wrap(err, "rate limiter interrupted")
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errs.Wrap(err, "failed to marshal request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errs.Wrap(err, "failed to build request")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "commerce request failed"), errs.ErrExternalService)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errs.Wrapf(errs.ErrExternalService, "commerce API %s %s: status %d: %s", method, path, resp.StatusCode, msg)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errs.Mark(errs.Wrap(err, "failed to decode commerce response"), errs.ErrExternalService)
		}
	}
	return nil
}
