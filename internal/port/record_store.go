package port

import (
	"context"

	"github.com/shefazol/ordering/internal/core/domain"
)

// RecordStore is durable key/value persistence for settings and orders.
// Collection operations are whole-collection read-modify-write: there is no
// partial-update primitive, so two concurrent processes against the same
// backing file can race and silently lose updates. Single-writer use only.
type RecordStore interface {
	// GetSettings returns the saved settings, or the documented defaults if
	// nothing has ever been saved.
	GetSettings(ctx context.Context) (domain.Settings, error)

	// SaveSettings overwrites the settings record.
	SaveSettings(ctx context.Context, settings domain.Settings) error

	// GetOrders returns the full order collection, oldest first.
	GetOrders(ctx context.Context) ([]domain.Order, error)

	// GetOrderByID returns the matching order, or nil if absent.
	GetOrderByID(ctx context.Context, id string) (*domain.Order, error)

	// AddOrder assigns id, pending status and createdAt, appends the order to
	// the collection in one write, and returns the completed record.
	AddOrder(ctx context.Context, order domain.Order) (*domain.Order, error)

	// UpdateOrderStatus sets status and updatedAt on the matching order.
	// Returns nil if the id is absent.
	UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)

	// AddOrderItems overwrites the items of the matching order. Returns nil
	// if the id is absent.
	AddOrderItems(ctx context.Context, id string, items []domain.LineItem) (*domain.Order, error)
}
