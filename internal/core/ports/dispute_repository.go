package ports

import (
	"context"

	"marketplace/internal/core/domain/model/dispute"
	"marketplace/internal/core/domain/model/kernel"
)

type DisputeRepository interface {
	// Add returns ErrDuplicateKey when the order already has a dispute.
	Add(ctx context.Context, aggregate *dispute.Dispute) error

	Get(ctx context.Context, id kernel.UUID) (*dispute.Dispute, error)
	ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error)

	// Resolve stores the resolution only if the stored dispute is still
	// unresolved. A miss returns ErrStaleWrite.
	Resolve(ctx context.Context, aggregate *dispute.Dispute) error
}
