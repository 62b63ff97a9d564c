package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/guard"
)

var ErrGetDeliveryQueryIsNotConstructed = errors.New(
	"GetDeliveryQuery must be created via NewGetDeliveryQuery constructor",
)

type GetDeliveryQuery struct {
	deliveryID kernel.UUID
	actor      user.Actor
	guard      guard.ConstructorGuard
}

func NewGetDeliveryQuery(deliveryID kernel.UUID, actor user.Actor) (GetDeliveryQuery, error) {
	if err := deliveryID.Validate(); err != nil {
		return GetDeliveryQuery{}, err
	}
	return GetDeliveryQuery{deliveryID: deliveryID, actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueryIsNotConstructed)
}

func (q GetDeliveryQuery) DeliveryID() kernel.UUID { return q.deliveryID }
func (q GetDeliveryQuery) Actor() user.Actor       { return q.actor }

// GetDeliveryQueryResponse is the delivery read model joined with the
// parent order's status.
type GetDeliveryQueryResponse struct {
	ID              kernel.UUID
	OrderID         kernel.UUID
	OrderStatus     order.Status
	AssignedActorID *kernel.UUID
	Status          delivery.Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
