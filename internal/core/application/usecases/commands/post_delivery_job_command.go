package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/guard"
)

var ErrPostDeliveryJobCommandIsNotConstructed = errors.New(
	"PostDeliveryJobCommand must be created via NewPostDeliveryJobCommand constructor",
)

// PostDeliveryJobCommand opens the delivery job of an order.
type PostDeliveryJobCommand struct {
	actor   user.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewPostDeliveryJobCommand(actor user.Actor, orderID kernel.UUID) (PostDeliveryJobCommand, error) {
	if err := orderID.Validate(); err != nil {
		return PostDeliveryJobCommand{}, err
	}
	return PostDeliveryJobCommand{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c PostDeliveryJobCommand) Validate() error {
	return c.guard.Validate(ErrPostDeliveryJobCommandIsNotConstructed)
}

func (c PostDeliveryJobCommand) Actor() user.Actor    { return c.actor }
func (c PostDeliveryJobCommand) OrderID() kernel.UUID { return c.orderID }
