package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/storefront/internal/detail/domain"
	"github.com/tair/storefront/pkg/logger"
)

// Outcome classifies how a purchase-intent action resolved
type Outcome string

const (
	OutcomeAdded         Outcome = "added"
	OutcomeInvalid       Outcome = "invalid"
	OutcomeLoginRequired Outcome = "login_required"
	OutcomeFailed        Outcome = "failed"
	OutcomeCheckout      Outcome = "checkout"
)

// User-facing notices
const (
	NoticeLoginRequired = "Please login to add items to your cart."
	NoticeCartAdded     = "Product added to cart successfully!"
	NoticeCartRejected  = "Failed to add product to cart."
	NoticeCartFailed    = "An error occurred while adding the product to cart."
)

// Navigation targets carried back to the client
const (
	LoginPath    = "/login"
	CheckoutPath = "/checkout"
)

// AddToCartCommand represents the add-to-cart purchase intent
type AddToCartCommand struct {
	SessionID string
}

// AddToCartResult is the resolved outcome of an add-to-cart attempt
type AddToCartResult struct {
	Outcome         Outcome `json:"outcome"`
	Notice          string  `json:"notice,omitempty"`
	ValidationError string  `json:"validation_error,omitempty"`
	Redirect        string  `json:"redirect,omitempty"`
	TotalPrice      int64   `json:"total_price,omitempty"`
}

// AddToCartHandler resolves the add-to-cart purchase intent
type AddToCartHandler struct {
	repo    domain.SessionRepository
	cart    domain.CartGateway
	pending domain.PendingStore
	auth    domain.AuthProvider
	events  EventPublisher
}

// NewAddToCartHandler creates a new add-to-cart handler
func NewAddToCartHandler(
	repo domain.SessionRepository,
	cart domain.CartGateway,
	pending domain.PendingStore,
	auth domain.AuthProvider,
	events EventPublisher,
) *AddToCartHandler {
	return &AddToCartHandler{repo: repo, cart: cart, pending: pending, auth: auth, events: events}
}

// Handle executes the add-to-cart command. An incomplete selection sets
// the session's validation error and stops before any network call. A
// guest gets their pending selection persisted and a login redirect.
// There is no retry on failure and nothing to roll back; the cart item
// is never added optimistically.
func (h *AddToCartHandler) Handle(ctx context.Context, cmd AddToCartCommand) (*AddToCartResult, error) {
	session, err := h.repo.FindByID(ctx, cmd.SessionID)
	if err != nil {
		return nil, err
	}
	if !session.Loaded() {
		return nil, domain.ErrSnapshotNotLoaded
	}

	if !session.IsComplete() {
		session.ValidationError = domain.MsgSelectColorAndSize
		if err := h.repo.Save(ctx, session); err != nil {
			return nil, fmt.Errorf("failed to save session: %w", err)
		}
		return &AddToCartResult{
			Outcome:         OutcomeInvalid,
			ValidationError: domain.MsgSelectColorAndSize,
		}, nil
	}

	totalPrice := session.TotalPrice()

	identity, ok := h.auth.Identify(ctx)
	if !ok {
		if err := h.pending.SavePendingSelection(ctx, session.ID, session.PendingSelection()); err != nil {
			return nil, fmt.Errorf("failed to persist pending selection: %w", err)
		}
		return &AddToCartResult{
			Outcome:  OutcomeLoginRequired,
			Notice:   NoticeLoginRequired,
			Redirect: LoginPath,
		}, nil
	}

	if err := h.cart.CreateCart(ctx, identity.UserID, session.CartItem(), totalPrice); err != nil {
		notice := NoticeCartFailed
		if errors.Is(err, domain.ErrCartRejected) {
			notice = NoticeCartRejected
		}
		logger.Error(ctx).
			Err(err).
			Str("session_id", session.ID).
			Str("product_id", session.ProductID).
			Msg("Failed to add product to cart")
		return &AddToCartResult{
			Outcome:    OutcomeFailed,
			Notice:     notice,
			TotalPrice: totalPrice,
		}, nil
	}

	if h.events != nil {
		event := kafkaCartItemAdded(session, identity.UserID, totalPrice)
		if err := h.events.PublishCartItemAdded(ctx, event); err != nil {
			logger.Warn(ctx).Err(err).Msg("Failed to publish cart event")
		}
	}

	return &AddToCartResult{
		Outcome:    OutcomeAdded,
		Notice:     NoticeCartAdded,
		TotalPrice: totalPrice,
	}, nil
}
