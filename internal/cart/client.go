package cart

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/tair/storefront/internal/detail/domain"
	"github.com/tair/storefront/pkg/logger"
)

// Client submits cart-creation requests to the cart service
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a new cart client
func NewClient(baseURL string) *Client {
	client := &http.Client{
		Timeout:   5 * time.Second,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	logger.Logger.Info().
		Str("base_url", baseURL).
		Msg("Cart client initialized")

	return &Client{baseURL: baseURL, http: client}
}

type createCartRequest struct {
	UserID     uint            `json:"userId"`
	CartItem   domain.CartItem `json:"cartItem"`
	TotalPrice int64           `json:"totalPrice"`
}

// CreateCart posts a cart-creation request. Success means the cart
// service acknowledged creation; any other status resolves to
// domain.ErrCartRejected. No retry is attempted on any outcome.
func (c *Client) CreateCart(ctx context.Context, userID uint, item domain.CartItem, totalPrice int64) error {
	body, err := json.Marshal(createCartRequest{
		UserID:     userID,
		CartItem:   item,
		TotalPrice: totalPrice,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal cart request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/carts", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build cart request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to submit cart request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("%w: status %d", domain.ErrCartRejected, resp.StatusCode)
	}

	return nil
}
