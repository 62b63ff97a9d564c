package commands

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/policy"
	"marketplace/internal/pkg/errs"

	"go.uber.org/zap"
)

// PostDeliveryJobCommandHandler lets the order's vendor, or an administrator,
// open the single delivery job of a CONFIRMED or PROCESSING order.
type PostDeliveryJobCommandHandler struct {
	uowFactory DeliveryUoWFactory
	logger     *zap.Logger
}

func NewPostDeliveryJobCommandHandler(uowFactory DeliveryUoWFactory, logger *zap.Logger) PostDeliveryJobCommandHandler {
	return PostDeliveryJobCommandHandler{uowFactory: uowFactory, logger: logger}
}

func (h PostDeliveryJobCommandHandler) Handle(ctx context.Context, command PostDeliveryJobCommand) (*delivery.Delivery, error) {
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
	deliveries := uow.DeliveryRepository()

	o, err := orders.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	if !policy.RelationsOf(o, command.Actor()).Has(policy.RelationVendor | policy.RelationAdmin) {
		return nil, errs.NewForbiddenError(errs.CodeOrderActorForbidden, "only the order vendor or an administrator can post a delivery job")
	}

	if !o.Status().IsDispatchable() {
		return nil, errs.NewInvalidStateError(errs.CodeOrderNotDispatchable, "order is "+o.Status().String())
	}

	_, err = deliveries.GetByOrder(ctx, o.ID())
	switch {
	case err == nil:
		return nil, errs.NewConflictError(errs.CodeDeliveryAlreadyExists, "order already has a delivery job")
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	d, err := delivery.NewDelivery(kernel.NewUUID(), o.ID(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = deliveries.Add(ctx, d); err != nil {
		return nil, conflictOn(err, errs.CodeDeliveryAlreadyExists, "order already has a delivery job")
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.Info("delivery job posted",
		zap.Stringer("delivery_id", d.ID()),
		zap.Stringer("order_id", o.ID()),
	)
	return d, nil
}
