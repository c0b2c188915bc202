package command

import (
	"context"

	"github.com/tair/storefront/internal/detail/domain"
	"github.com/tair/storefront/kafka"
)

// EventPublisher emits purchase-intent analytics events. A nil publisher
// disables event emission; publishing is fire-and-forget either way.
type EventPublisher interface {
	PublishCartItemAdded(ctx context.Context, event kafka.CartItemAddedEvent) error
	PublishCheckoutStarted(ctx context.Context, event kafka.CheckoutStartedEvent) error
}

func kafkaCartItemAdded(session *domain.Session, userID uint, totalPrice int64) kafka.CartItemAddedEvent {
	return kafka.CartItemAddedEvent{
		UserID:     userID,
		ProductID:  session.ProductID,
		Color:      session.SelectedColor,
		Size:       session.SelectedSize,
		Quantity:   session.Quantity,
		TotalPrice: totalPrice,
		Currency:   "VND",
	}
}

func kafkaCheckoutStarted(session *domain.Session, userID uint, draft domain.OrderDraft) kafka.CheckoutStartedEvent {
	return kafka.CheckoutStartedEvent{
		UserID:    userID,
		ProductID: session.ProductID,
		Quantity:  session.Quantity,
		Subtotal:  draft.Subtotal,
		Shipping:  draft.Shipping,
		Total:     draft.Total,
		Currency:  "VND",
	}
}
