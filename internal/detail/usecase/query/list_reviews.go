package query

import (
	"context"

	"github.com/tair/storefront/internal/detail/domain"
)

// ListReviewsQuery represents the query for the filtered review list.
// A nil Rating means no filter; exactly one filter value is active.
type ListReviewsQuery struct {
	SessionID string
	Rating    *int
}

// ListReviewsHandler handles the review filter query
type ListReviewsHandler struct {
	repo domain.SessionRepository
}

// NewListReviewsHandler creates a new list reviews handler
func NewListReviewsHandler(repo domain.SessionRepository) *ListReviewsHandler {
	return &ListReviewsHandler{repo: repo}
}

// Handle executes the list reviews query. The derivation is pure and
// order-preserving; the snapshot's review list is never mutated.
func (h *ListReviewsHandler) Handle(ctx context.Context, q ListReviewsQuery) ([]domain.Review, error) {
	session, err := h.repo.FindByID(ctx, q.SessionID)
	if err != nil {
		return nil, err
	}
	if !session.Loaded() {
		return nil, domain.ErrSnapshotNotLoaded
	}

	return session.Snapshot.FilterReviews(q.Rating), nil
}
