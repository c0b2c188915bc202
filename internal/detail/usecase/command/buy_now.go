package command

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/detail/domain"
	"github.com/tair/storefront/pkg/logger"
)

// BuyNowCommand represents the buy-now purchase intent
type BuyNowCommand struct {
	SessionID string
}

// BuyNowResult is the resolved outcome of a buy-now attempt
type BuyNowResult struct {
	Outcome  Outcome            `json:"outcome"`
	Notice   string             `json:"notice,omitempty"`
	Redirect string             `json:"redirect,omitempty"`
	Order    *domain.OrderDraft `json:"order,omitempty"`
}

// BuyNowHandler resolves the buy-now purchase intent
type BuyNowHandler struct {
	repo    domain.SessionRepository
	pending domain.PendingStore
	auth    domain.AuthProvider
	events  EventPublisher
}

// NewBuyNowHandler creates a new buy-now handler
func NewBuyNowHandler(
	repo domain.SessionRepository,
	pending domain.PendingStore,
	auth domain.AuthProvider,
	events EventPublisher,
) *BuyNowHandler {
	return &BuyNowHandler{repo: repo, pending: pending, auth: auth, events: events}
}

// Handle executes the buy-now command. Unlike add-to-cart, no variant
// completeness check happens on this path; the order draft carries
// whatever is selected. The draft travels as navigation payload and is
// not persisted.
func (h *BuyNowHandler) Handle(ctx context.Context, cmd BuyNowCommand) (*BuyNowResult, error) {
	session, err := h.repo.FindByID(ctx, cmd.SessionID)
	if err != nil {
		return nil, err
	}
	if !session.Loaded() {
		return nil, domain.ErrSnapshotNotLoaded
	}

	identity, ok := h.auth.Identify(ctx)
	if !ok {
		if err := h.pending.SavePendingSelection(ctx, session.ID, session.PendingSelection()); err != nil {
			return nil, fmt.Errorf("failed to persist pending selection: %w", err)
		}
		return &BuyNowResult{
			Outcome:  OutcomeLoginRequired,
			Notice:   NoticeLoginRequired,
			Redirect: LoginPath,
		}, nil
	}

	draft := session.OrderDraft()

	if h.events != nil {
		event := kafkaCheckoutStarted(session, identity.UserID, draft)
		if err := h.events.PublishCheckoutStarted(ctx, event); err != nil {
			logger.Warn(ctx).Err(err).Msg("Failed to publish checkout event")
		}
	}

	return &BuyNowResult{
		Outcome:  OutcomeCheckout,
		Redirect: CheckoutPath,
		Order:    &draft,
	}, nil
}
