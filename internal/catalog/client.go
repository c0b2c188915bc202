package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/tair/storefront/internal/detail/domain"
	"github.com/tair/storefront/pkg/logger"
)

// Client fetches product snapshots from the catalog service
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a new catalog client
func NewClient(baseURL string) *Client {
	client := &http.Client{
		Timeout:   5 * time.Second,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	logger.Logger.Info().
		Str("base_url", baseURL).
		Msg("Catalog client initialized")

	return &Client{baseURL: baseURL, http: client}
}

// FetchProduct fetches an immutable product record by id
func (c *Client) FetchProduct(ctx context.Context, productID string) (*domain.ProductSnapshot, error) {
	url := fmt.Sprintf("%s/products/%s", c.baseURL, productID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product %s: %w", productID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog returned status %d for product %s", resp.StatusCode, productID)
	}

	var snapshot domain.ProductSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode product %s: %w", productID, err)
	}

	return &snapshot, nil
}
