// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	ProfileRepoFactory interface {
		ProfileRepository() ports.ProfileRepository
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	DisputeRepoFactory interface {
		DisputeRepository() ports.DisputeRepository
	}

	// PromotionUoW covers role changes: the user row and its new profile.
	PromotionUoW interface {
		TxManager
		UserRepoFactory
		ProfileRepoFactory
	}

	PromotionUoWFactory interface {
		Create() PromotionUoW
	}

	// OrderUoW covers checkout and order transitions, which move stock.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DeliveryUoW covers delivery jobs and the delivery -> order saga.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   deliveries := uow.DeliveryRepository()
	//   orders := uow.OrderRepository()
	//   // ... advance the delivery, then the order, in one transaction
	//
	//   err = uow.Commit(ctx)
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
		OrderRepoFactory
		ProductRepoFactory
	}

	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	DisputeUoW interface {
		TxManager
		DisputeRepoFactory
		OrderRepoFactory
	}

	DisputeUoWFactory interface {
		Create() DisputeUoW
	}
)
