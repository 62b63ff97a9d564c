package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates
// and their status history.
type OrderRepository interface {
	// Add persists a new order together with its lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get returns errs.ObjectNotFoundError when the id is unknown.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateStatus stores status, payment method and updated_at only if the
	// stored status still equals expected. A miss returns ErrStaleWrite.
	UpdateStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error

	AppendHistory(ctx context.Context, entry order.HistoryEntry) error

	// History returns the applied transitions of an order, oldest first.
	History(ctx context.Context, orderID kernel.UUID) ([]order.HistoryEntry, error)
}
