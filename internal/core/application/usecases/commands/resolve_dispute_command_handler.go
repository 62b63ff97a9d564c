package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/dispute"
	"marketplace/internal/pkg/errs"

	"go.uber.org/zap"
)

type ResolveDisputeCommandHandler struct {
	uowFactory DisputeUoWFactory
	logger     *zap.Logger
}

func NewResolveDisputeCommandHandler(uowFactory DisputeUoWFactory, logger *zap.Logger) ResolveDisputeCommandHandler {
	return ResolveDisputeCommandHandler{uowFactory: uowFactory, logger: logger}
}

func (h ResolveDisputeCommandHandler) Handle(ctx context.Context, command ResolveDisputeCommand) (*dispute.Dispute, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	if !command.Actor().IsAdmin() {
		return nil, errs.NewForbiddenError(errs.CodeAdminRequired, "only administrators can resolve disputes")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	disputes := uow.DisputeRepository()

	d, err := disputes.Get(ctx, command.DisputeID())
	if err != nil {
		return nil, err
	}

	if err = d.Resolve(command.Resolution(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = disputes.Resolve(ctx, d); err != nil {
		if isStale(err) {
			return nil, errs.NewInvalidStateError(errs.CodeDisputeNotOpen, "dispute was resolved concurrently")
		}
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.Info("dispute resolved",
		zap.Stringer("dispute_id", d.ID()),
		zap.Stringer("status", d.Status()),
	)
	return d, nil
}
