package domain

import (
	"strconv"
	"time"
)

// ShippingRate is the flat shipping fee applied on the buy-now path, in đồng.
const ShippingRate int64 = 35000

// MsgSelectColorAndSize is the inline validation message shown when a
// purchase is attempted with an incomplete variant selection.
const MsgSelectColorAndSize = "Please select a color and a size."

// Session is the mutable, view-scoped state of one product-detail visit.
// Quantity is re-clamped into [1, stock] on every mutation.
type Session struct {
	ID              string           `json:"id"`
	ProductID       string           `json:"product_id"`
	Snapshot        *ProductSnapshot `json:"snapshot,omitempty"`
	SelectedColor   string           `json:"selected_color,omitempty"`
	SelectedSize    string           `json:"selected_size,omitempty"`
	Quantity        int              `json:"quantity"`
	CurrentImage    string           `json:"current_image,omitempty"`
	ValidationError string           `json:"validation_error,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}

// NewSession creates a detail session for the given product
func NewSession(id, productID string) *Session {
	return &Session{
		ID:        id,
		ProductID: productID,
		Quantity:  1,
		CreatedAt: time.Now(),
	}
}

// Loaded reports whether the catalog fetch has completed for this session
func (s *Session) Loaded() bool {
	return s.Snapshot != nil
}

// SetColor overwrites the selected color. The presented choices are
// trusted; no validation against the snapshot's color list happens here.
func (s *Session) SetColor(color string) {
	s.SelectedColor = color
}

// SetSize overwrites the selected size
func (s *Session) SetSize(size string) {
	s.SelectedSize = size
}

// PinImage overrides the displayed image
func (s *Session) PinImage(url string) {
	s.CurrentImage = url
}

// IsComplete reports whether both color and size have been chosen
func (s *Session) IsComplete() bool {
	return s.SelectedColor != "" && s.SelectedSize != ""
}

// stock is read fresh from the snapshot on every quantity mutation,
// never cached on the session
func (s *Session) stock() int {
	if s.Snapshot == nil {
		return 0
	}
	return s.Snapshot.Stock
}

func (s *Session) clamp(v int) int {
	if v < 1 {
		v = 1
	}
	if max := s.stock(); v > max {
		v = max
	}
	return v
}

// StepQuantity adjusts the quantity by delta, clamped into [1, stock]
func (s *Session) StepQuantity(delta int) {
	s.Quantity = s.clamp(s.Quantity + delta)
}

// SetQuantity sets the quantity from direct numeric entry, clamped into
// [1, stock]. Non-numeric input resolves to the clamp's lower edge.
// Direct entry clamps the upper bound first, so at zero stock it lands
// on 1 where the stepper lands on 0.
func (s *Session) SetQuantity(raw string) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		v = 0
	}
	if max := s.stock(); v > max {
		v = max
	}
	if v < 1 {
		v = 1
	}
	s.Quantity = v
}

// Thumbnail returns the pinned image, falling back to the first product image
func (s *Session) Thumbnail() string {
	if s.CurrentImage != "" {
		return s.CurrentImage
	}
	if s.Snapshot != nil && len(s.Snapshot.Images) > 0 {
		return s.Snapshot.Images[0]
	}
	return ""
}

// TotalPrice computes quantity * unit price
func (s *Session) TotalPrice() int64 {
	if s.Snapshot == nil {
		return 0
	}
	return int64(s.Quantity) * s.Snapshot.Price
}

// PendingSelection captures an in-progress purchase attempt so it
// survives the authentication redirect
func (s *Session) PendingSelection() PendingSelection {
	return PendingSelection{
		ProductID:     s.ProductID,
		SelectedColor: s.SelectedColor,
		SelectedSize:  s.SelectedSize,
		Quantity:      s.Quantity,
	}
}

// PendingSelection is the record written for a guest who attempts a
// purchase action; a post-login flow consumes it elsewhere.
type PendingSelection struct {
	ProductID     string `json:"productId"`
	SelectedColor string `json:"selectedColor"`
	SelectedSize  string `json:"selectedSize"`
	Quantity      int    `json:"quantity"`
}

// CartItem is the line submitted to the cart service
type CartItem struct {
	ProductTitle string `json:"productTitle"`
	ProductID    string `json:"productId"`
	Thumbnail    string `json:"thumbnail"`
	Color        string `json:"color"`
	Size         string `json:"size"`
	Quantity     int    `json:"quantity"`
	Price        int64  `json:"price"`
}

// CartItem builds the cart line for the current selection
func (s *Session) CartItem() CartItem {
	item := CartItem{
		ProductID: s.ProductID,
		Thumbnail: s.Thumbnail(),
		Color:     s.SelectedColor,
		Size:      s.SelectedSize,
		Quantity:  s.Quantity,
	}
	if s.Snapshot != nil {
		item.ProductTitle = s.Snapshot.Title
		item.Price = s.Snapshot.Price
	}
	return item
}

// OrderLine is a product entry inside an order draft
type OrderLine struct {
	ProductSnapshot
	Quantity int    `json:"quantity"`
	Color    string `json:"color"`
	Size     string `json:"size"`
}

// OrderDraft is the computed summary handed to checkout on the buy-now
// path. It travels as navigation payload and is never persisted here.
type OrderDraft struct {
	Products []OrderLine `json:"products"`
	Subtotal int64       `json:"subtotal"`
	Shipping int64       `json:"shipping"`
	Total    int64       `json:"total"`
}

// OrderDraft constructs the buy-now order summary for this session
func (s *Session) OrderDraft() OrderDraft {
	subtotal := s.TotalPrice()
	draft := OrderDraft{
		Subtotal: subtotal,
		Shipping: ShippingRate,
		Total:    subtotal + ShippingRate,
	}
	if s.Snapshot != nil {
		draft.Products = []OrderLine{{
			ProductSnapshot: *s.Snapshot,
			Quantity:        s.Quantity,
			Color:           s.SelectedColor,
			Size:            s.SelectedSize,
		}}
	}
	return draft
}
