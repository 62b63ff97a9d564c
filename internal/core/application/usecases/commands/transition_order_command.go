package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/guard"
)

var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
)

// TransitionOrderCommand moves an order to a new status on behalf of actor.
// A payment method may only accompany target CONFIRMED.
type TransitionOrderCommand struct {
	orderID       kernel.UUID
	actor         user.Actor
	target        order.Status
	paymentMethod *order.PaymentMethod

	guard guard.ConstructorGuard
}

func NewTransitionOrderCommand(
	orderID kernel.UUID,
	actor user.Actor,
	target order.Status,
	paymentMethod *order.PaymentMethod,
) (TransitionOrderCommand, error) {
	var paymentErr error
	if paymentMethod != nil {
		paymentErr = paymentMethod.Validate()
		if paymentErr == nil && target != order.Confirmed {
			paymentErr = order.ErrPaymentMethodNotAllowed
		}
	}

	if err := errors.Join(orderID.Validate(), target.Validate(), paymentErr); err != nil {
		return TransitionOrderCommand{}, err
	}

	cmd := TransitionOrderCommand{
		orderID: orderID,
		actor:   actor,
		target:  target,
		guard:   guard.NewConstructorGuard(),
	}
	if paymentMethod != nil {
		m := *paymentMethod
		cmd.paymentMethod = &m
	}
	return cmd, nil
}

func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

func (c TransitionOrderCommand) OrderID() kernel.UUID                { return c.orderID }
func (c TransitionOrderCommand) Actor() user.Actor                   { return c.actor }
func (c TransitionOrderCommand) Target() order.Status                { return c.target }
func (c TransitionOrderCommand) PaymentMethod() *order.PaymentMethod { return c.paymentMethod }
