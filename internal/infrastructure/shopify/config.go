package shopify

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// APIVersion is the pinned Shopify Admin API version.
const APIVersion = "2023-10"

// Errors for client configuration
var (
	ErrConfigMissingShopURL  = errors.New("shopify: shop URL is required")
	ErrConfigMissingPassword = errors.New("shopify: password (access token) is required")
)

// Config holds configuration for the Shopify Admin API client.
type Config struct {
	// ShopURL is the myshopify domain, e.g. "my-store.myshopify.com"
	ShopURL string
	// APIKey is the private app API key
	APIKey string
	// Password is the private app password, sent as the access token
	Password string
	// Timeout is the HTTP request timeout
	Timeout time.Duration
	// MaxRetries bounds retry attempts on rate limiting
	MaxRetries int
}

// NewConfig creates a new Shopify client configuration with defaults.
func NewConfig(shopURL, apiKey, password string) *Config {
	return &Config{
		ShopURL:    shopURL,
		APIKey:     apiKey,
		Password:   password,
		Timeout:    30 * time.Second,
		MaxRetries: 3,
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.ShopURL == "" {
		return ErrConfigMissingShopURL
	}
	if c.Password == "" {
		return ErrConfigMissingPassword
	}
	return nil
}

// BaseURL returns the versioned Admin API base URL.
func (c *Config) BaseURL() string {
	host := strings.TrimSuffix(strings.TrimPrefix(strings.TrimPrefix(c.ShopURL, "https://"), "http://"), "/")
	return fmt.Sprintf("https://%s/admin/api/%s", host, APIVersion)
}
