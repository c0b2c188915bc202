package kafka

import "time"

// CartItemAddedEvent is emitted after the cart service acknowledges an
// add-to-cart submission
type CartItemAddedEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	UserID     uint      `json:"user_id"`
	ProductID  string    `json:"product_id"`
	Color      string    `json:"color"`
	Size       string    `json:"size"`
	Quantity   int       `json:"quantity"`
	TotalPrice int64     `json:"total_price"`
	Currency   string    `json:"currency"`
	Timestamp  time.Time `json:"timestamp"`
}

// CheckoutStartedEvent is emitted when a buy-now action hands an order
// draft to checkout
type CheckoutStartedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	UserID    uint      `json:"user_id"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Subtotal  int64     `json:"subtotal"`
	Shipping  int64     `json:"shipping"`
	Total     int64     `json:"total"`
	Currency  string    `json:"currency"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeCartItemAdded   = "cart.item_added"
	EventTypeCheckoutStarted = "checkout.started"
)

// Kafka topics
const (
	TopicCartItemAdded   = "cart-item-added"
	TopicCheckoutStarted = "checkout-started"
)
