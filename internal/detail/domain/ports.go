package domain

import (
	"context"
	"errors"
)

var (
	// ErrSessionNotFound is returned when a detail session id is unknown
	ErrSessionNotFound = errors.New("detail session not found")

	// ErrSnapshotNotLoaded is returned when an action fires against a
	// session whose catalog fetch never completed
	ErrSnapshotNotLoaded = errors.New("product snapshot not loaded")

	// ErrCartRejected is returned by the cart gateway when the cart
	// service answers with anything other than a creation status
	ErrCartRejected = errors.New("cart service rejected the request")
)

// Identity is the authenticated actor, resolved by an AuthProvider
type Identity struct {
	UserID   uint
	Username string
}

// AuthProvider resolves the acting user from the request context.
// The second return value is false for guests.
type AuthProvider interface {
	Identify(ctx context.Context) (Identity, bool)
}

// Catalog fetches immutable product records from the catalog service
type Catalog interface {
	FetchProduct(ctx context.Context, productID string) (*ProductSnapshot, error)
}

// CartGateway submits cart-creation requests to the cart service
type CartGateway interface {
	CreateCart(ctx context.Context, userID uint, item CartItem, totalPrice int64) error
}

// PendingStore durably persists a guest's pending selection across the
// authentication redirect. Write-only from this service.
type PendingStore interface {
	SavePendingSelection(ctx context.Context, sessionID string, sel PendingSelection) error
}

// SessionRepository defines the contract for detail session storage
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	FindByID(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, session *Session) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
