package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrListDivergentDeliveriesQueryIsNotConstructed = errors.New(
	"ListDivergentDeliveriesQuery must be created via NewListDivergentDeliveriesQuery constructor",
)

// ListDivergentDeliveriesQuery finds delivered jobs whose order is not
// DELIVERED. The completion saga never commits such a pair, so every row
// points at an out-of-band write.
type ListDivergentDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

func NewListDivergentDeliveriesQuery() ListDivergentDeliveriesQuery {
	return ListDivergentDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListDivergentDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListDivergentDeliveriesQueryIsNotConstructed)
}

type DivergentDelivery struct {
	DeliveryID  kernel.UUID
	OrderID     kernel.UUID
	OrderStatus order.Status
	DeliveredAt time.Time
}
