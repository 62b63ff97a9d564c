package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/dispute"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrListMyDisputesQueryIsNotConstructed = errors.New(
	"ListMyDisputesQuery must be created via NewListMyDisputesQuery constructor",
)

type ListMyDisputesQuery struct {
	customerID kernel.UUID
	guard      guard.ConstructorGuard
}

func NewListMyDisputesQuery(customerID kernel.UUID) (ListMyDisputesQuery, error) {
	if err := customerID.Validate(); err != nil {
		return ListMyDisputesQuery{}, err
	}
	return ListMyDisputesQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListMyDisputesQuery) Validate() error {
	return q.guard.Validate(ErrListMyDisputesQueryIsNotConstructed)
}

func (q ListMyDisputesQuery) CustomerID() kernel.UUID { return q.customerID }

// DisputeView is a dispute with its derived status.
type DisputeView struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	Reason      string
	Description string
	Resolution  *string
	Status      dispute.Status
	ResolvedAt  *time.Time
	CreatedAt   time.Time
}
