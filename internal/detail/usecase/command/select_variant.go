package command

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/detail/domain"
)

// SelectVariantCommand overwrites any subset of the variant selection.
// Nil fields are left untouched. Values are not validated against the
// snapshot's lists; completeness is only enforced at submit time.
type SelectVariantCommand struct {
	SessionID string
	Color     *string
	Size      *string
	Image     *string
}

// SelectVariantHandler handles variant selection command
type SelectVariantHandler struct {
	repo domain.SessionRepository
}

// NewSelectVariantHandler creates a new select variant handler
func NewSelectVariantHandler(repo domain.SessionRepository) *SelectVariantHandler {
	return &SelectVariantHandler{repo: repo}
}

// Handle executes the select variant command
func (h *SelectVariantHandler) Handle(ctx context.Context, cmd SelectVariantCommand) (*domain.Session, error) {
	session, err := h.repo.FindByID(ctx, cmd.SessionID)
	if err != nil {
		return nil, err
	}

	if cmd.Color != nil {
		session.SetColor(*cmd.Color)
	}
	if cmd.Size != nil {
		session.SetSize(*cmd.Size)
	}
	if cmd.Image != nil {
		session.PinImage(*cmd.Image)
	}

	if err := h.repo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return session, nil
}
