package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/dispute"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"go.uber.org/zap"
)

// CreateDisputeCommandHandler opens a dispute. Checks run in order and the
// first failure wins: order exists (NotFound), caller owns it (Forbidden),
// order is DELIVERED (InvalidState), no dispute yet (Conflict). The unique
// index on disputes.order_id settles races past the last check.
type CreateDisputeCommandHandler struct {
	uowFactory DisputeUoWFactory
	logger     *zap.Logger
}

func NewCreateDisputeCommandHandler(uowFactory DisputeUoWFactory, logger *zap.Logger) CreateDisputeCommandHandler {
	return CreateDisputeCommandHandler{uowFactory: uowFactory, logger: logger}
}

func (h CreateDisputeCommandHandler) Handle(ctx context.Context, command CreateDisputeCommand) (*dispute.Dispute, error) {
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
	disputes := uow.DisputeRepository()

	o, err := orders.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	if !o.CustomerID().IsEqual(command.CustomerID()) {
		return nil, errs.NewForbiddenError(errs.CodeNotOrderOwner, "only the customer who placed the order can dispute it")
	}

	if o.Status() != order.Delivered {
		return nil, errs.NewInvalidStateError(errs.CodeOrderNotDelivered, "only delivered orders can be disputed")
	}

	exists, err := disputes.ExistsForOrder(ctx, o.ID())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.NewConflictError(errs.CodeDisputeAlreadyExists, "dispute already exists")
	}

	d, err := dispute.NewDispute(
		kernel.NewUUID(),
		o.ID(),
		command.CustomerID(),
		command.Reason(),
		command.Description(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = disputes.Add(ctx, d); err != nil {
		return nil, conflictOn(err, errs.CodeDisputeAlreadyExists, "dispute already exists")
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.Info("dispute opened",
		zap.Stringer("dispute_id", d.ID()),
		zap.Stringer("order_id", o.ID()),
	)
	return d, nil
}
