package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/guard"
)

var ErrAssignDeliveryCommandIsNotConstructed = errors.New(
	"AssignDeliveryCommand must be created via NewAssignDeliveryCommand constructor",
)

// AssignDeliveryCommand claims an open delivery job for the acting rider or agency.
type AssignDeliveryCommand struct {
	deliveryID kernel.UUID
	actor      user.Actor

	guard guard.ConstructorGuard
}

func NewAssignDeliveryCommand(deliveryID kernel.UUID, actor user.Actor) (AssignDeliveryCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return AssignDeliveryCommand{}, err
	}
	return AssignDeliveryCommand{deliveryID: deliveryID, actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (c AssignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryCommandIsNotConstructed)
}

func (c AssignDeliveryCommand) DeliveryID() kernel.UUID { return c.deliveryID }
func (c AssignDeliveryCommand) Actor() user.Actor       { return c.actor }
