package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/domain/policy"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"go.uber.org/zap"
)

// AdvanceResult carries the advanced delivery and, when the saga ran, the
// delivered order.
type AdvanceResult struct {
	Delivery *delivery.Delivery
	Order    *order.Order
}

// AdvanceDeliveryCommandHandler advances a delivery on behalf of its assignee.
//
// Reaching DELIVERED runs a two-step saga inside the same unit of work: the
// delivery write, then the parent order's transition to DELIVERED by the
// system actor. The saga is all-or-nothing: if the order cannot legally
// transition, the whole unit of work rolls back and the order's error is
// returned, so delivery and order never diverge.
type AdvanceDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	registry   *policy.Registry
	lifecycle  services.OrderLifecycle
	logger     *zap.Logger
}

func NewAdvanceDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	registry *policy.Registry,
	logger *zap.Logger,
) AdvanceDeliveryCommandHandler {
	return AdvanceDeliveryCommandHandler{
		uowFactory: uowFactory,
		registry:   registry,
		lifecycle:  services.NewOrderLifecycle(registry),
		logger:     logger,
	}
}

func (h AdvanceDeliveryCommandHandler) Handle(ctx context.Context, command AdvanceDeliveryCommand) (AdvanceResult, error) {
	if err := command.Validate(); err != nil {
		return AdvanceResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AdvanceResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveries := uow.DeliveryRepository()

	d, err := deliveries.Get(ctx, command.DeliveryID())
	if err != nil {
		return AdvanceResult{}, err
	}

	from, err := d.Advance(h.registry.DeliveryRules(), command.ActorID(), command.Target(), time.Now().UTC())
	if err != nil {
		return AdvanceResult{}, err
	}

	if err = deliveries.UpdateStatus(ctx, d, from); err != nil {
		if isStale(err) {
			return AdvanceResult{}, errs.NewInvalidTransitionError(errs.CodeInvalidJobTransition, "delivery", from, command.Target())
		}
		return AdvanceResult{}, err
	}

	result := AdvanceResult{Delivery: d}

	if command.Target() == delivery.Delivered {
		orders := uow.OrderRepository()

		o, err := orders.Get(ctx, d.OrderID())
		if err != nil {
			return AdvanceResult{}, err
		}

		if err = applyOrderTransition(ctx, orders, uow.ProductRepository(), h.lifecycle,
			o, user.SystemActor(), order.Delivered, nil); err != nil {
			h.logger.Warn("delivery completion rolled back, order cannot be delivered",
				zap.Stringer("delivery_id", d.ID()),
				zap.Stringer("order_id", o.ID()),
				zap.Stringer("order_status", o.Status()),
				zap.Error(err),
			)
			return AdvanceResult{}, err
		}
		result.Order = o
	}

	if err = uow.Commit(ctx); err != nil {
		return AdvanceResult{}, err
	}

	h.logger.Info("delivery advanced",
		zap.Stringer("delivery_id", d.ID()),
		zap.Stringer("from", from),
		zap.Stringer("to", d.Status()),
	)
	return result, nil
}
