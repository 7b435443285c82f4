package shopify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	domain "github.com/Alchez/shopify-integration/internal/domain/shopify"
)

const (
	// maxResponseSize limits the response body size to prevent memory exhaustion
	maxResponseSize = 10 * 1024 * 1024 // 10MB max response
	// pageLimit is the maximum page size the Admin API allows
	pageLimit = 250
)

// Client is a Shopify Admin API client. It implements both the catalog and
// the payout client interfaces of the domain.
type Client struct {
	config     *Config
	httpClient *http.Client
}

// NewClient creates a new Shopify Admin API client with the given configuration.
func NewClient(config *Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNotConfigured, err)
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}, nil
}

// ---------------------------------------------------------------------------
// Catalog operations
// ---------------------------------------------------------------------------

// ListActiveProducts pulls all active products, paging by since_id until a
// short page signals the end.
func (c *Client) ListActiveProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	var sinceID int64

	for {
		query := url.Values{}
		query.Set("limit", strconv.Itoa(pageLimit))
		query.Set("status", string(domain.ProductStatusActive))
		if sinceID > 0 {
			query.Set("since_id", strconv.FormatInt(sinceID, 10))
		}

		body, err := c.doRequest(ctx, "/products.json", query)
		if err != nil {
			return nil, err
		}

		var resp productListResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidResponse, err)
		}

		for i := range resp.Products {
			products = append(products, resp.Products[i].toDomain())
			if resp.Products[i].ID > sinceID {
				sinceID = resp.Products[i].ID
			}
		}

		if len(resp.Products) < pageLimit {
			return products, nil
		}
	}
}

// ---------------------------------------------------------------------------
// Payout operations
// ---------------------------------------------------------------------------

// ListPayoutsSince lists Shopify Payments payouts settled on or after the
// given time. A nil time lists all payouts the API will return.
func (c *Client) ListPayoutsSince(ctx context.Context, since *time.Time) ([]domain.Payout, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(pageLimit))
	if since != nil {
		query.Set("date_min", since.Format(payoutDateLayout))
	}

	body, err := c.doRequest(ctx, "/shopify_payments/payouts.json", query)
	if err != nil {
		return nil, err
	}

	var resp payoutListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidResponse, err)
	}

	payouts := make([]domain.Payout, len(resp.Payouts))
	for i := range resp.Payouts {
		payouts[i] = resp.Payouts[i].toDomain()
	}
	return payouts, nil
}

// ListTransactions lists the balance transactions settled under a payout.
func (c *Client) ListTransactions(ctx context.Context, payoutID int64) ([]domain.Transaction, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(pageLimit))
	query.Set("payout_id", strconv.FormatInt(payoutID, 10))

	body, err := c.doRequest(ctx, "/shopify_payments/balance/transactions.json", query)
	if err != nil {
		return nil, err
	}

	var resp transactionListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidResponse, err)
	}

	transactions := make([]domain.Transaction, len(resp.Transactions))
	for i := range resp.Transactions {
		transactions[i] = resp.Transactions[i].toDomain()
	}
	return transactions, nil
}

// GetOrder fetches a single order.
func (c *Client) GetOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	body, err := c.doRequest(ctx, fmt.Sprintf("/orders/%d.json", orderID), nil)
	if err != nil {
		return nil, err
	}

	var resp orderResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidResponse, err)
	}
	if resp.Order == nil {
		return nil, domain.ErrNotFound
	}
	return resp.Order.toDomain(), nil
}

// ---------------------------------------------------------------------------
// HTTP plumbing
// ---------------------------------------------------------------------------

// doRequest performs one GET against the Admin API, retrying on rate limits
// up to the configured attempt budget.
func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	requestURL := c.config.BaseURL() + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	for attempt := 0; ; attempt++ {
		body, retryAfter, err := c.doAttempt(ctx, requestURL)
		if err == nil {
			return body, nil
		}
		if !errors.Is(err, domain.ErrRateLimited) || attempt >= c.config.MaxRetries {
			return nil, err
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryAfter):
		}
	}
}

// doAttempt performs a single request. On rate limiting it reports the
// server-suggested wait alongside ErrRateLimited.
func (c *Client) doAttempt(ctx context.Context, requestURL string) ([]byte, time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("shopify: failed to create request: %w", err)
	}

	req.Header.Set("X-Shopify-Access-Token", c.config.Password)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, 0, fmt.Errorf("shopify: failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, 0, domain.ErrNotFound
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, parseRetryAfter(resp.Header.Get("Retry-After")), domain.ErrRateLimited
	case resp.StatusCode >= 400:
		return nil, 0, fmt.Errorf("%w: HTTP %d", domain.ErrRequestFailed, resp.StatusCode)
	}

	return body, 0, nil
}

// parseRetryAfter parses the Retry-After header, defaulting to one second.
func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return time.Second
	}
	seconds, err := strconv.ParseFloat(value, 64)
	if err != nil || seconds <= 0 {
		return time.Second
	}
	return time.Duration(seconds * float64(time.Second))
}

// Ensure Client implements the domain client interfaces
var (
	_ domain.CatalogClient = (*Client)(nil)
	_ domain.PayoutClient  = (*Client)(nil)
)
