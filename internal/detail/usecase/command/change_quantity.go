package command

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/detail/domain"
)

// StepQuantityCommand adjusts the quantity via the stepper buttons
type StepQuantityCommand struct {
	SessionID string
	Delta     int
}

// StepQuantityHandler handles stepper quantity changes
type StepQuantityHandler struct {
	repo domain.SessionRepository
}

// NewStepQuantityHandler creates a new step quantity handler
func NewStepQuantityHandler(repo domain.SessionRepository) *StepQuantityHandler {
	return &StepQuantityHandler{repo: repo}
}

// Handle executes the step quantity command. The result is clamped into
// [1, stock] with stock read fresh from the snapshot.
func (h *StepQuantityHandler) Handle(ctx context.Context, cmd StepQuantityCommand) (*domain.Session, error) {
	session, err := h.repo.FindByID(ctx, cmd.SessionID)
	if err != nil {
		return nil, err
	}
	if !session.Loaded() {
		return nil, domain.ErrSnapshotNotLoaded
	}

	session.StepQuantity(cmd.Delta)

	if err := h.repo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return session, nil
}

// SetQuantityCommand sets the quantity from direct numeric entry
type SetQuantityCommand struct {
	SessionID string
	Value     string
}

// SetQuantityHandler handles direct quantity entry
type SetQuantityHandler struct {
	repo domain.SessionRepository
}

// NewSetQuantityHandler creates a new set quantity handler
func NewSetQuantityHandler(repo domain.SessionRepository) *SetQuantityHandler {
	return &SetQuantityHandler{repo: repo}
}

// Handle executes the set quantity command. Non-numeric input resolves
// to the clamp's lower edge.
func (h *SetQuantityHandler) Handle(ctx context.Context, cmd SetQuantityCommand) (*domain.Session, error) {
	session, err := h.repo.FindByID(ctx, cmd.SessionID)
	if err != nil {
		return nil, err
	}
	if !session.Loaded() {
		return nil, domain.ErrSnapshotNotLoaded
	}

	session.SetQuantity(cmd.Value)

	if err := h.repo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return session, nil
}
