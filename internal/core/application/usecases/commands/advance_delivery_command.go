package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrAdvanceDeliveryCommandIsNotConstructed = errors.New(
	"AdvanceDeliveryCommand must be created via NewAdvanceDeliveryCommand constructor",
)

// AdvanceDeliveryCommand moves a delivery one step along its chain.
// Targets outside {PICKED_UP, ON_THE_WAY, DELIVERED} are rejected here,
// before any read.
type AdvanceDeliveryCommand struct {
	deliveryID kernel.UUID
	actorID    kernel.UUID
	target     delivery.Status

	guard guard.ConstructorGuard
}

func NewAdvanceDeliveryCommand(deliveryID, actorID kernel.UUID, target delivery.Status) (AdvanceDeliveryCommand, error) {
	if !target.IsRequestable() {
		return AdvanceDeliveryCommand{}, delivery.NotRequestable(target.String())
	}

	if err := errors.Join(deliveryID.Validate(), actorID.Validate()); err != nil {
		return AdvanceDeliveryCommand{}, err
	}

	return AdvanceDeliveryCommand{
		deliveryID: deliveryID,
		actorID:    actorID,
		target:     target,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AdvanceDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceDeliveryCommandIsNotConstructed)
}

func (c AdvanceDeliveryCommand) DeliveryID() kernel.UUID { return c.deliveryID }
func (c AdvanceDeliveryCommand) ActorID() kernel.UUID    { return c.actorID }
func (c AdvanceDeliveryCommand) Target() delivery.Status { return c.target }
