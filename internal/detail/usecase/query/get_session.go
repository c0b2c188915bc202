package query

import (
	"context"

	"github.com/tair/storefront/internal/detail/domain"
	"github.com/tair/storefront/pkg/money"
)

// GetSessionQuery represents the query to fetch a detail session view
type GetSessionQuery struct {
	SessionID string
}

// SessionView is the session plus display-ready price strings
type SessionView struct {
	Session      *domain.Session `json:"session"`
	DisplayPrice string          `json:"display_price,omitempty"`
	DisplayTotal string          `json:"display_total,omitempty"`
}

// GetSessionHandler handles get session query
type GetSessionHandler struct {
	repo domain.SessionRepository
}

// NewGetSessionHandler creates a new get session handler
func NewGetSessionHandler(repo domain.SessionRepository) *GetSessionHandler {
	return &GetSessionHandler{repo: repo}
}

// Handle executes the get session query
func (h *GetSessionHandler) Handle(ctx context.Context, q GetSessionQuery) (*SessionView, error) {
	session, err := h.repo.FindByID(ctx, q.SessionID)
	if err != nil {
		return nil, err
	}

	view := &SessionView{Session: session}
	if session.Loaded() {
		view.DisplayPrice = money.FormatVND(session.Snapshot.Price)
		view.DisplayTotal = money.FormatVND(session.TotalPrice())
	}

	return view, nil
}
