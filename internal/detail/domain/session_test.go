package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedSession() *Session {
	s := NewSession("sess-1", "prod-1")
	s.Snapshot = &ProductSnapshot{
		ID:     "prod-1",
		Title:  "Ao Thun Basic",
		Price:  100000,
		Stock:  5,
		Images: []string{"img-a.jpg", "img-b.jpg"},
		Colors: []string{"Red", "Blue"},
		Sizes:  []string{"S", "M", "L"},
	}
	return s
}

func TestNewSession_StartsAtQuantityOne(t *testing.T) {
	s := NewSession("sess-1", "prod-1")
	assert.Equal(t, 1, s.Quantity)
	assert.False(t, s.Loaded())
	assert.False(t, s.IsComplete())
}

func TestStepQuantity_StaysWithinBounds(t *testing.T) {
	cases := []struct {
		name  string
		start int
		delta int
		want  int
	}{
		{"step up", 1, 1, 2},
		{"step down at floor", 1, -1, 1},
		{"huge positive delta", 1, 1000000, 5},
		{"huge negative delta", 5, -1000000, 1},
		{"exact ceiling", 4, 1, 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := loadedSession()
			s.Quantity = tc.start
			s.StepQuantity(tc.delta)
			assert.Equal(t, tc.want, s.Quantity)
			assert.GreaterOrEqual(t, s.Quantity, 1)
			assert.LessOrEqual(t, s.Quantity, s.Snapshot.Stock)
		})
	}
}

func TestStepQuantity_SaturatesAtStock(t *testing.T) {
	// price 100000, stock 5: four steps reach the ceiling, a fifth is a no-op
	s := loadedSession()
	for i := 0; i < 4; i++ {
		s.StepQuantity(1)
	}
	assert.Equal(t, 5, s.Quantity)

	s.StepQuantity(1)
	assert.Equal(t, 5, s.Quantity)
}

func TestSetQuantity_ClampsRawInput(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want int
	}{
		{"in range", "3", 3},
		{"above stock", "999", 5},
		{"zero", "0", 1},
		{"negative", "-7", 1},
		{"non-numeric resolves to lower edge", "abc", 1},
		{"empty resolves to lower edge", "", 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := loadedSession()
			s.SetQuantity(tc.raw)
			assert.Equal(t, tc.want, s.Quantity)
		})
	}
}

func TestQuantityAtZeroStock_ChannelsDiverge(t *testing.T) {
	// The stepper clamps lower-then-upper and bottoms out at 0; direct
	// entry clamps upper-then-lower and lands on 1.
	s := loadedSession()
	s.Snapshot.Stock = 0

	s.StepQuantity(1)
	assert.Equal(t, 0, s.Quantity)

	s.SetQuantity("3")
	assert.Equal(t, 1, s.Quantity)
}

func TestStepQuantity_ReadsStockFresh(t *testing.T) {
	s := loadedSession()
	s.SetQuantity("5")
	require.Equal(t, 5, s.Quantity)

	// stock dropped on the snapshot; the next mutation re-clamps
	s.Snapshot.Stock = 3
	s.StepQuantity(1)
	assert.Equal(t, 3, s.Quantity)
}

func TestIsComplete_RequiresColorAndSize(t *testing.T) {
	s := loadedSession()
	assert.False(t, s.IsComplete())

	s.SetColor("Red")
	assert.False(t, s.IsComplete())

	s.SetSize("M")
	assert.True(t, s.IsComplete())
}

func TestThumbnail_PinnedImageWinsOverFirst(t *testing.T) {
	s := loadedSession()
	assert.Equal(t, "img-a.jpg", s.Thumbnail())

	s.PinImage("img-b.jpg")
	assert.Equal(t, "img-b.jpg", s.Thumbnail())
}

func TestTotalPrice(t *testing.T) {
	s := loadedSession()
	s.SetQuantity("2")
	assert.Equal(t, int64(200000), s.TotalPrice())
}

func TestOrderDraft_Totals(t *testing.T) {
	s := loadedSession()
	s.SetColor("Red")
	s.SetSize("M")
	s.SetQuantity("2")

	draft := s.OrderDraft()
	assert.Equal(t, int64(200000), draft.Subtotal)
	assert.Equal(t, int64(35000), draft.Shipping)
	assert.Equal(t, int64(235000), draft.Total)

	require.Len(t, draft.Products, 1)
	assert.Equal(t, "Red", draft.Products[0].Color)
	assert.Equal(t, "M", draft.Products[0].Size)
	assert.Equal(t, 2, draft.Products[0].Quantity)
	assert.Equal(t, "Ao Thun Basic", draft.Products[0].Title)
}

func TestPendingSelection_CapturesSelection(t *testing.T) {
	s := loadedSession()
	s.SetColor("Red")
	s.SetSize("M")
	s.SetQuantity("2")

	sel := s.PendingSelection()
	assert.Equal(t, PendingSelection{
		ProductID:     "prod-1",
		SelectedColor: "Red",
		SelectedSize:  "M",
		Quantity:      2,
	}, sel)
}

func TestFilterReviews(t *testing.T) {
	reviews := []Review{
		{Rating: 5, Comment: "great"},
		{Rating: 4, Comment: "good"},
		{Rating: 4, Comment: "solid"},
		{Rating: 1, Comment: "bad"},
	}
	p := &ProductSnapshot{Reviews: reviews}

	four := 4
	filtered := p.FilterReviews(&four)
	require.Len(t, filtered, 2)
	assert.Equal(t, "good", filtered[0].Comment)
	assert.Equal(t, "solid", filtered[1].Comment)

	all := p.FilterReviews(nil)
	require.Len(t, all, len(reviews))
	for i := range reviews {
		assert.Equal(t, reviews[i], all[i])
	}

	three := 3
	assert.Empty(t, p.FilterReviews(&three))
}
