package services

import (
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/domain/policy"
	"marketplace/internal/pkg/errs"
)

// AppliedTransition is the outcome of OrderLifecycle.Apply.
type AppliedTransition struct {
	From order.Status
	To   order.Status
	// Restock is set when the reserved stock of the order must be returned.
	Restock bool
	History order.HistoryEntry
}

// OrderLifecycle owns the order status machine.
//
// Checks run in this order:
//   - the actor relates to the order at all (Forbidden)
//   - the edge exists in the status machine (InvalidTransition with from/to)
//   - the actor's relation may apply this edge (Forbidden)
//
// An actor with no relation to the order never learns its status.
type OrderLifecycle struct {
	registry *policy.Registry
}

func NewOrderLifecycle(registry *policy.Registry) OrderLifecycle {
	return OrderLifecycle{registry: registry}
}

// Authorize runs every check without mutating o.
func (l OrderLifecycle) Authorize(o *order.Order, actor user.Actor, target order.Status) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	rel := policy.RelationsOf(o, actor)
	if rel == policy.None {
		return errs.NewForbiddenError(errs.CodeOrderActorForbidden, "actor has no relation to this order")
	}

	from := o.Status()
	if !l.registry.AllowsOrderTransition(from, target) {
		return errs.NewInvalidTransitionError(errs.CodeInvalidOrderTransition, "order", from, target)
	}

	if !l.registry.AllowsOrderActor(from, target, rel) {
		return errs.NewForbiddenError(
			errs.CodeOrderActorForbidden,
			fmt.Sprintf("%s may not move an order from %s to %s", rel, from, target),
		)
	}
	return nil
}

// Apply authorizes and performs the transition on o. A payment method is
// only accepted together with target CONFIRMED.
func (l OrderLifecycle) Apply(
	o *order.Order,
	actor user.Actor,
	target order.Status,
	paymentMethod *order.PaymentMethod,
	at time.Time,
) (AppliedTransition, error) {
	if paymentMethod != nil && target != order.Confirmed {
		return AppliedTransition{}, order.ErrPaymentMethodNotAllowed
	}
	if err := l.Authorize(o, actor, target); err != nil {
		return AppliedTransition{}, err
	}

	from, err := o.Transition(l.registry.OrderRules(), target, at)
	if err != nil {
		return AppliedTransition{}, err
	}

	if paymentMethod != nil {
		if err = o.RecordPaymentMethod(*paymentMethod); err != nil {
			return AppliedTransition{}, err
		}
	}

	return AppliedTransition{
		From:    from,
		To:      target,
		Restock: order.RequiresRestock(from, target),
		History: order.HistoryEntry{
			OrderID:   o.ID(),
			From:      from,
			To:        target,
			ActorID:   actor.HistoryID(),
			CreatedAt: at,
		},
	}, nil
}
