package commands

import (
	"context"

	"marketplace/internal/core/domain/model/role"
	"marketplace/internal/core/domain/policy"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"go.uber.org/zap"
)

// ProvisionDeliveryAgencyCommandHandler is the administrator path for
// DELIVERY_AGENCY. It bypasses the self-service set but otherwise shares the
// promotion transaction.
type ProvisionDeliveryAgencyCommandHandler struct {
	uowFactory PromotionUoWFactory
	gate       services.PromotionGate
	logger     *zap.Logger
}

func NewProvisionDeliveryAgencyCommandHandler(
	uowFactory PromotionUoWFactory,
	registry *policy.Registry,
	logger *zap.Logger,
) ProvisionDeliveryAgencyCommandHandler {
	return ProvisionDeliveryAgencyCommandHandler{
		uowFactory: uowFactory,
		gate:       services.NewPromotionGate(registry),
		logger:     logger,
	}
}

func (h ProvisionDeliveryAgencyCommandHandler) Handle(
	ctx context.Context,
	command ProvisionDeliveryAgencyCommand,
) (PromotionResult, error) {
	if err := command.Validate(); err != nil {
		return PromotionResult{}, err
	}

	// Non-administrators learn nothing about the target user.
	if !command.Actor().IsAdmin() {
		return PromotionResult{}, errs.NewForbiddenError(errs.CodeAdminRequired, "only administrators can provision delivery agencies")
	}

	result, err := promote(ctx, h.uowFactory, command.UserID(), role.DeliveryAgency, command.Details(),
		func() (policy.PromotionPath, error) {
			return h.gate.CheckProvisioning(command.Actor(), role.DeliveryAgency)
		},
	)
	if err != nil {
		return PromotionResult{}, err
	}

	h.logger.Info("delivery agency provisioned",
		zap.Stringer("user_id", command.UserID()),
		zap.Stringer("admin_id", command.Actor().ID()),
	)
	return result, nil
}
