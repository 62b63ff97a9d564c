package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
)

type ProductRepository interface {
	Add(ctx context.Context, aggregate *product.Product) error
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// Reserve decrements stock only if at least quantity units remain.
	// A miss returns ErrStaleWrite.
	Reserve(ctx context.Context, id kernel.UUID, quantity int) error

	Restock(ctx context.Context, id kernel.UUID, quantity int) error
}
