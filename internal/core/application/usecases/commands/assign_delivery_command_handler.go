package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"go.uber.org/zap"
)

// AssignDeliveryCommandHandler hands an open job to a delivery actor. The
// storage write is conditional on the job still being unassigned, so of two
// concurrent claims exactly one wins.
type AssignDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	logger     *zap.Logger
}

func NewAssignDeliveryCommandHandler(uowFactory DeliveryUoWFactory, logger *zap.Logger) AssignDeliveryCommandHandler {
	return AssignDeliveryCommandHandler{uowFactory: uowFactory, logger: logger}
}

func (h AssignDeliveryCommandHandler) Handle(ctx context.Context, command AssignDeliveryCommand) (*delivery.Delivery, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	if !command.Actor().Role().IsDeliveryActor() || command.Actor().IsSystem() {
		return nil, errs.NewForbiddenError(errs.CodeNotDeliveryActor, "only riders and delivery agencies can take delivery jobs")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveries := uow.DeliveryRepository()
	orders := uow.OrderRepository()

	d, err := deliveries.Get(ctx, command.DeliveryID())
	if err != nil {
		return nil, err
	}

	o, err := orders.Get(ctx, d.OrderID())
	if err != nil {
		return nil, err
	}
	if o.Status() == order.Cancelled {
		return nil, delivery.JobNotOpen("order was cancelled")
	}

	if err = d.Assign(command.Actor().ID(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = deliveries.Assign(ctx, d); err != nil {
		return nil, conflictOn(err, errs.CodeJobAlreadyAssigned, "delivery job is already assigned")
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.Info("delivery assigned",
		zap.Stringer("delivery_id", d.ID()),
		zap.Stringer("actor", command.Actor()),
	)
	return d, nil
}
