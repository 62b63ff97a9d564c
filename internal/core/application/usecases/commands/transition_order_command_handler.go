package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/policy"
	"marketplace/internal/core/domain/services"

	"go.uber.org/zap"
)

// TransitionOrderCommandHandler applies an order status change together with
// its side effects: status history and, for pre-dispatch cancellations,
// restocking.
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	lifecycle  services.OrderLifecycle
	logger     *zap.Logger
}

func NewTransitionOrderCommandHandler(
	uowFactory OrderUoWFactory,
	registry *policy.Registry,
	logger *zap.Logger,
) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  services.NewOrderLifecycle(registry),
		logger:     logger,
	}
}

func (h TransitionOrderCommandHandler) Handle(ctx context.Context, command TransitionOrderCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()

	o, err := orders.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}
	from := o.Status()

	if err = applyOrderTransition(ctx, orders, uow.ProductRepository(), h.lifecycle,
		o, command.Actor(), command.Target(), command.PaymentMethod()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.Info("order transitioned",
		zap.Stringer("order_id", o.ID()),
		zap.Stringer("from", from),
		zap.Stringer("to", o.Status()),
		zap.Stringer("actor", command.Actor()),
	)
	return o, nil
}
