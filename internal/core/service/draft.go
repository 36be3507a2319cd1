package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/shefazol/ordering/internal/core/domain"
)

var (
	ErrEmptyProductName = errors.New("product name is empty")
	ErrInvalidQuantity  = errors.New("quantity must be positive")
)

// Draft is the in-memory order being assembled during one customer session.
// It is owned by the OrderService and is not safe for concurrent use on its
// own.
type Draft struct {
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	CustomerAddress string
	CustomerNumber  string
	DeliveryDate    string // YYYY-MM-DD
	DeliveryType    domain.DeliveryType
	Notes           string

	items []domain.LineItem
}

func NewDraft() *Draft {
	return &Draft{}
}

// AddItem appends a new line item with a fresh id. The id only needs to be
// unique within this draft's lifetime.
func (d *Draft) AddItem(name string, quantity int) (domain.LineItem, error) {
	if strings.TrimSpace(name) == "" {
		return domain.LineItem{}, ErrEmptyProductName
	}
	if quantity <= 0 {
		return domain.LineItem{}, ErrInvalidQuantity
	}

	item := domain.LineItem{
		ProductID:   "custom_" + uuid.NewString(),
		ProductName: name,
		Quantity:    quantity,
	}
	d.items = append(d.items, item)
	return item, nil
}

// Increase bumps the quantity of the matching item. Unknown ids are ignored:
// UI affordances may race harmlessly against removal.
func (d *Draft) Increase(itemID string) {
	for i := range d.items {
		if d.items[i].ProductID == itemID {
			d.items[i].Quantity++
			return
		}
	}
}

// Decrease lowers the quantity of the matching item, removing it entirely at
// quantity 1 so a present item never reaches zero.
func (d *Draft) Decrease(itemID string) {
	for i := range d.items {
		if d.items[i].ProductID != itemID {
			continue
		}
		if d.items[i].Quantity > 1 {
			d.items[i].Quantity--
		} else {
			d.items = append(d.items[:i], d.items[i+1:]...)
		}
		return
	}
}

// Remove deletes the matching item regardless of quantity.
func (d *Draft) Remove(itemID string) {
	for i := range d.items {
		if d.items[i].ProductID == itemID {
			d.items = append(d.items[:i], d.items[i+1:]...)
			return
		}
	}
}

// Summary returns an order-preserving copy of the current items. The result
// is never nil, so an empty cart is an explicit empty state rather than a
// missing one.
func (d *Draft) Summary() []domain.LineItem {
	out := make([]domain.LineItem, len(d.items))
	copy(out, d.items)
	return out
}
