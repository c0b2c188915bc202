package command

import (
	"context"
	"errors"
	"sync"

	"github.com/tair/storefront/internal/detail/domain"
	"github.com/tair/storefront/kafka"
)

var errCatalogDown = errors.New("catalog unavailable")

type mockCatalog struct {
	snapshot *domain.ProductSnapshot
	err      error
	calls    int
}

func (m *mockCatalog) FetchProduct(context.Context, string) (*domain.ProductSnapshot, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.snapshot, nil
}

type mockCartGateway struct {
	mu         sync.Mutex
	err        error
	calls      int
	lastUserID uint
	lastItem   domain.CartItem
	lastTotal  int64
}

func (m *mockCartGateway) CreateCart(_ context.Context, userID uint, item domain.CartItem, totalPrice int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.lastUserID = userID
	m.lastItem = item
	m.lastTotal = totalPrice
	return m.err
}

type mockPendingStore struct {
	mu    sync.Mutex
	err   error
	saved map[string]domain.PendingSelection
}

func newMockPendingStore() *mockPendingStore {
	return &mockPendingStore{saved: make(map[string]domain.PendingSelection)}
}

func (m *mockPendingStore) SavePendingSelection(_ context.Context, sessionID string, sel domain.PendingSelection) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.saved[sessionID] = sel
	return nil
}

type staticAuth struct {
	identity domain.Identity
	ok       bool
}

func (a staticAuth) Identify(context.Context) (domain.Identity, bool) {
	return a.identity, a.ok
}

type mockEvents struct {
	mu        sync.Mutex
	cartAdded []kafka.CartItemAddedEvent
	checkouts []kafka.CheckoutStartedEvent
}

func (m *mockEvents) PublishCartItemAdded(_ context.Context, event kafka.CartItemAddedEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cartAdded = append(m.cartAdded, event)
	return nil
}

func (m *mockEvents) PublishCheckoutStarted(_ context.Context, event kafka.CheckoutStartedEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checkouts = append(m.checkouts, event)
	return nil
}

func testSnapshot() *domain.ProductSnapshot {
	return &domain.ProductSnapshot{
		ID:     "prod-1",
		Title:  "Ao Thun Basic",
		Price:  100000,
		Stock:  5,
		Images: []string{"img-a.jpg", "img-b.jpg"},
		Colors: []string{"Red", "Blue"},
		Sizes:  []string{"S", "M"},
		Reviews: []domain.Review{
			{Rating: 5, Comment: "great"},
			{Rating: 4, Comment: "good"},
		},
	}
}
