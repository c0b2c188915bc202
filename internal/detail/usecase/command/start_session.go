package command

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tair/storefront/internal/detail/domain"
	"github.com/tair/storefront/pkg/logger"
)

// StartSessionCommand represents the command to open a detail session
type StartSessionCommand struct {
	ProductID string
}

// StartSessionHandler handles session creation and the one-time snapshot fetch
type StartSessionHandler struct {
	repo    domain.SessionRepository
	catalog domain.Catalog
}

// NewStartSessionHandler creates a new start session handler
func NewStartSessionHandler(repo domain.SessionRepository, catalog domain.Catalog) *StartSessionHandler {
	return &StartSessionHandler{repo: repo, catalog: catalog}
}

// Handle executes the start session command. The catalog is queried
// exactly once per session; a failed fetch is logged and leaves the
// session in its not-loaded state with no retry surface.
func (h *StartSessionHandler) Handle(ctx context.Context, cmd StartSessionCommand) (*domain.Session, error) {
	if cmd.ProductID == "" {
		return nil, fmt.Errorf("product id is required")
	}

	session := domain.NewSession(uuid.NewString(), cmd.ProductID)

	snapshot, err := h.catalog.FetchProduct(ctx, cmd.ProductID)
	if err != nil {
		logger.Error(ctx).
			Err(err).
			Str("product_id", cmd.ProductID).
			Msg("Failed to fetch product snapshot")
	} else {
		session.Snapshot = snapshot
	}

	if err := h.repo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}
