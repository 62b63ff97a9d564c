package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// applyOrderTransition is the single write path for order status changes,
// shared by TransitionOrder and the delivery completion saga.
//
// The conditional update is keyed on the status the order left, so of two
// concurrent attempts only one reaches the history and restock steps. The
// loser gets InvalidTransition.
func applyOrderTransition(
	ctx context.Context,
	orders ports.OrderRepository,
	products ports.ProductRepository,
	lifecycle services.OrderLifecycle,
	o *order.Order,
	actor user.Actor,
	target order.Status,
	paymentMethod *order.PaymentMethod,
) error {
	applied, err := lifecycle.Apply(o, actor, target, paymentMethod, time.Now().UTC())
	if err != nil {
		return err
	}

	if err = orders.UpdateStatus(ctx, o, applied.From); err != nil {
		if isStale(err) {
			return errs.NewInvalidTransitionError(errs.CodeInvalidOrderTransition, "order", applied.From, target)
		}
		return err
	}

	if err = orders.AppendHistory(ctx, applied.History); err != nil {
		return err
	}

	if applied.Restock {
		for _, line := range o.Lines() {
			if err = products.Restock(ctx, line.ProductID(), line.Quantity()); err != nil {
				return err
			}
		}
	}

	return nil
}
