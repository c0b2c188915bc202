package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/internal/detail/domain"
	"github.com/tair/storefront/internal/detail/repository"
)

func TestStepQuantity_PersistsClampedValue(t *testing.T) {
	repo := repository.NewMemorySessionRepository()
	seedSession(t, repo, nil)

	handler := NewStepQuantityHandler(repo)

	session, err := handler.Handle(context.Background(), StepQuantityCommand{SessionID: "sess-1", Delta: 100})
	require.NoError(t, err)
	assert.Equal(t, 5, session.Quantity)

	saved, err := repo.FindByID(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 5, saved.Quantity)

	session, err = handler.Handle(context.Background(), StepQuantityCommand{SessionID: "sess-1", Delta: -100})
	require.NoError(t, err)
	assert.Equal(t, 1, session.Quantity)
}

func TestSetQuantity_PersistsClampedValue(t *testing.T) {
	repo := repository.NewMemorySessionRepository()
	seedSession(t, repo, nil)

	handler := NewSetQuantityHandler(repo)

	session, err := handler.Handle(context.Background(), SetQuantityCommand{SessionID: "sess-1", Value: "4"})
	require.NoError(t, err)
	assert.Equal(t, 4, session.Quantity)

	session, err = handler.Handle(context.Background(), SetQuantityCommand{SessionID: "sess-1", Value: "not a number"})
	require.NoError(t, err)
	assert.Equal(t, 1, session.Quantity)
}

func TestQuantity_NotLoadedSessionErrors(t *testing.T) {
	repo := repository.NewMemorySessionRepository()
	session := domain.NewSession("sess-1", "prod-1")
	require.NoError(t, repo.Create(context.Background(), session))

	_, err := NewStepQuantityHandler(repo).Handle(context.Background(), StepQuantityCommand{SessionID: "sess-1", Delta: 1})
	require.ErrorIs(t, err, domain.ErrSnapshotNotLoaded)

	_, err = NewSetQuantityHandler(repo).Handle(context.Background(), SetQuantityCommand{SessionID: "sess-1", Value: "2"})
	require.ErrorIs(t, err, domain.ErrSnapshotNotLoaded)
}

func TestSelectVariant_OverwritesWithoutValidation(t *testing.T) {
	repo := repository.NewMemorySessionRepository()
	seedSession(t, repo, nil)

	handler := NewSelectVariantHandler(repo)

	color := "Neon"
	session, err := handler.Handle(context.Background(), SelectVariantCommand{SessionID: "sess-1", Color: &color})
	require.NoError(t, err)

	// not in the snapshot's color list; set-time validation is deliberately absent
	assert.Equal(t, "Neon", session.SelectedColor)
	assert.Empty(t, session.SelectedSize)

	size := "M"
	image := "img-b.jpg"
	session, err = handler.Handle(context.Background(), SelectVariantCommand{SessionID: "sess-1", Size: &size, Image: &image})
	require.NoError(t, err)
	assert.Equal(t, "Neon", session.SelectedColor)
	assert.Equal(t, "M", session.SelectedSize)
	assert.Equal(t, "img-b.jpg", session.CurrentImage)
}

func TestSelectVariant_DoesNotClearValidationError(t *testing.T) {
	repo := repository.NewMemorySessionRepository()
	seedSession(t, repo, func(s *domain.Session) {
		s.ValidationError = domain.MsgSelectColorAndSize
	})

	handler := NewSelectVariantHandler(repo)

	color, size := "Red", "M"
	session, err := handler.Handle(context.Background(), SelectVariantCommand{SessionID: "sess-1", Color: &color, Size: &size})
	require.NoError(t, err)

	// the error is only ever set, never proactively cleared
	assert.True(t, session.IsComplete())
	assert.Equal(t, domain.MsgSelectColorAndSize, session.ValidationError)
}

func TestStartSession_FetchesSnapshotOnce(t *testing.T) {
	repo := repository.NewMemorySessionRepository()
	cat := &mockCatalog{snapshot: testSnapshot()}

	handler := NewStartSessionHandler(repo, cat)
	session, err := handler.Handle(context.Background(), StartSessionCommand{ProductID: "prod-1"})
	require.NoError(t, err)

	assert.True(t, session.Loaded())
	assert.Equal(t, 1, session.Quantity)
	assert.Equal(t, 1, cat.calls)

	saved, err := repo.FindByID(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ao Thun Basic", saved.Snapshot.Title)
}

func TestStartSession_CatalogFailureLeavesSessionNotLoaded(t *testing.T) {
	repo := repository.NewMemorySessionRepository()
	cat := &mockCatalog{err: errCatalogDown}

	handler := NewStartSessionHandler(repo, cat)
	session, err := handler.Handle(context.Background(), StartSessionCommand{ProductID: "prod-1"})
	require.NoError(t, err)

	assert.False(t, session.Loaded())

	saved, err := repo.FindByID(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Nil(t, saved.Snapshot)
}

func TestStartSession_RequiresProductID(t *testing.T) {
	handler := NewStartSessionHandler(repository.NewMemorySessionRepository(), &mockCatalog{})
	_, err := handler.Handle(context.Background(), StartSessionCommand{})
	require.Error(t, err)
}
