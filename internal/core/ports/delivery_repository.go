package ports

import (
	"context"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
)

type DeliveryRepository interface {
	// Add returns ErrDuplicateKey when the order already has a delivery.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)

	// Assign stores the assignee only if the job is still open and
	// unassigned. A miss returns ErrStaleWrite.
	Assign(ctx context.Context, aggregate *delivery.Delivery) error

	// UpdateStatus stores the status only if the stored status still equals
	// expected. A miss returns ErrStaleWrite.
	UpdateStatus(ctx context.Context, aggregate *delivery.Delivery, expected delivery.Status) error
}
