package shopify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// DefaultPageSize is Shopify's maximum page size for the public feed.
const DefaultPageSize = 250

// ClientConfig configures the storefront feed client.
type ClientConfig struct {
	UserAgent      string
	RequestDelay   time.Duration // pacing between successive requests
	RequestTimeout time.Duration
	PageSize       int
	Scheme         string // "https" outside tests
}

// DefaultClientConfig returns the politeness defaults every brand sync uses.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		UserAgent:      "IndieMarketBot/1.0 (+https://indiemarket.link/bot)",
		RequestDelay:   time.Second,
		RequestTimeout: 30 * time.Second,
		PageSize:       DefaultPageSize,
		Scheme:         "https",
	}
}

// Client fetches the public JSON feeds of a Shopify storefront. All
// requests across products and collections share one rate limiter, so the
// inter-request delay holds store-wide.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	cfg        ClientConfig
}

func NewClient(cfg ClientConfig) *Client {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.Scheme == "" {
		cfg.Scheme = "https"
	}
	if cfg.RequestDelay <= 0 {
		cfg.RequestDelay = time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		limiter:    rate.NewLimiter(rate.Every(cfg.RequestDelay), 1),
		cfg:        cfg,
	}
}

// FetchProducts retrieves the full product listing. Pagination stops when a
// page comes back empty or shorter than the page size; the feed exposes no
// total count. Any failed page fails the whole fetch.
func (c *Client) FetchProducts(ctx context.Context, domain string) ([]Product, error) {
	var all []Product
	for page := 1; ; page++ {
		url := fmt.Sprintf("%s://%s/products.json?limit=%d&page=%d", c.cfg.Scheme, domain, c.cfg.PageSize, page)
		var env productsEnvelope
		if err := c.getJSON(ctx, url, &env); err != nil {
			return nil, fmt.Errorf("fetch products page %d from %s: %w", page, domain, err)
		}
		all = append(all, env.Products...)
		if len(env.Products) < c.cfg.PageSize {
			break
		}
	}
	return all, nil
}

// FetchCollections retrieves the collection listing in one request.
func (c *Client) FetchCollections(ctx context.Context, domain string) ([]Collection, error) {
	url := fmt.Sprintf("%s://%s/collections.json", c.cfg.Scheme, domain)
	var env collectionsEnvelope
	if err := c.getJSON(ctx, url, &env); err != nil {
		return nil, fmt.Errorf("fetch collections from %s: %w", domain, err)
	}
	return env.Collections, nil
}

// FetchCollectionProducts retrieves one collection's product listing, same
// pagination contract as FetchProducts.
func (c *Client) FetchCollectionProducts(ctx context.Context, domain, handle string) ([]Product, error) {
	var all []Product
	for page := 1; ; page++ {
		url := fmt.Sprintf("%s://%s/collections/%s/products.json?limit=%d&page=%d",
			c.cfg.Scheme, domain, handle, c.cfg.PageSize, page)
		var env productsEnvelope
		if err := c.getJSON(ctx, url, &env); err != nil {
			return nil, fmt.Errorf("fetch collection %q page %d from %s: %w", handle, page, domain, err)
		}
		all = append(all, env.Products...)
		if len(env.Products) < c.cfg.PageSize {
			break
		}
	}
	return all, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	log.Debug().Str("url", url).Msg("feed page fetched")
	return nil
}
