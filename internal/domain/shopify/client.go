package shopify

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotConfigured indicates the Shopify credentials are missing or invalid
	ErrNotConfigured = errors.New("shopify: client not configured")
	// ErrRequestFailed indicates a network or API-level failure
	ErrRequestFailed = errors.New("shopify: request failed")
	// ErrInvalidResponse indicates the platform returned an unparseable payload
	ErrInvalidResponse = errors.New("shopify: invalid response")
	// ErrNotFound indicates the requested remote entity does not exist
	ErrNotFound = errors.New("shopify: resource not found")
	// ErrRateLimited indicates the platform throttled the request
	ErrRateLimited = errors.New("shopify: rate limited")
)

// CatalogClient is the port for pulling catalog data from Shopify.
// Implementations live in the infrastructure layer.
type CatalogClient interface {
	// ListActiveProducts returns all products with active status, in remote
	// list order. Pagination is handled inside the client.
	ListActiveProducts(ctx context.Context) ([]Product, error)
}

// PayoutClient is the port for pulling Shopify Payments data.
type PayoutClient interface {
	// ListPayoutsSince returns payouts settled at or after since, oldest
	// first. A nil since returns the platform's full payout history window.
	ListPayoutsSince(ctx context.Context, since *time.Time) ([]Payout, error)

	// ListTransactions returns the balance transactions settled by a payout.
	ListTransactions(ctx context.Context, payoutID int64) ([]Transaction, error)

	// GetOrder fetches a single order by its Shopify ID.
	// Returns ErrNotFound when the order does not exist.
	GetOrder(ctx context.Context, orderID int64) (*Order, error)
}
