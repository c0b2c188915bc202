package repository

import (
	"context"
	"sync"

	"github.com/tair/storefront/internal/detail/domain"
)

// MemorySessionRepository is a process-local session store used in tests
// and local runs without Redis
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
	pending  map[string]domain.PendingSelection
}

// NewMemorySessionRepository creates a new in-memory session repository
func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{
		sessions: make(map[string]*domain.Session),
		pending:  make(map[string]domain.PendingSelection),
	}
}

// Create stores a new session
func (r *MemorySessionRepository) Create(_ context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *session
	r.sessions[session.ID] = &cp
	return nil
}

// FindByID returns the session with the given id
func (r *MemorySessionRepository) FindByID(_ context.Context, id string) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	cp := *session
	return &cp, nil
}

// Save persists session mutations
func (r *MemorySessionRepository) Save(_ context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[session.ID]; !ok {
		return domain.ErrSessionNotFound
	}
	cp := *session
	r.sessions[session.ID] = &cp
	return nil
}

// Delete removes a session
func (r *MemorySessionRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

// Count returns the number of live sessions
func (r *MemorySessionRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.sessions)), nil
}

// SavePendingSelection stores a guest's pending selection
func (r *MemorySessionRepository) SavePendingSelection(_ context.Context, sessionID string, sel domain.PendingSelection) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending[sessionID] = sel
	return nil
}

// PendingSelection returns the stored pending selection, for tests
func (r *MemorySessionRepository) PendingSelection(sessionID string) (domain.PendingSelection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sel, ok := r.pending[sessionID]
	return sel, ok
}
