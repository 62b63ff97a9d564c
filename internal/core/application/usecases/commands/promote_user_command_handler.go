package commands

import (
	"context"

	"marketplace/internal/core/domain/policy"
	"marketplace/internal/core/domain/services"

	"go.uber.org/zap"
)

// PromoteUserCommandHandler performs self-service promotions. Which roles a
// customer may request is decided by the registry's self-service set.
type PromoteUserCommandHandler struct {
	uowFactory PromotionUoWFactory
	gate       services.PromotionGate
	logger     *zap.Logger
}

func NewPromoteUserCommandHandler(
	uowFactory PromotionUoWFactory,
	registry *policy.Registry,
	logger *zap.Logger,
) PromoteUserCommandHandler {
	return PromoteUserCommandHandler{
		uowFactory: uowFactory,
		gate:       services.NewPromotionGate(registry),
		logger:     logger,
	}
}

// Handle checks, in order: user exists (NotFound), role is a promotion target
// (Forbidden), role is self-service (PolicyDisabled), no profile of that kind
// yet (Conflict), user is a CUSTOMER (InvalidState).
func (h PromoteUserCommandHandler) Handle(ctx context.Context, command PromoteUserCommand) (PromotionResult, error) {
	if err := command.Validate(); err != nil {
		return PromotionResult{}, err
	}

	result, err := promote(ctx, h.uowFactory, command.UserID(), command.Target(), command.Details(),
		func() (policy.PromotionPath, error) {
			return h.gate.CheckSelfService(command.Target())
		},
	)
	if err != nil {
		return PromotionResult{}, err
	}

	h.logger.Info("user promoted",
		zap.Stringer("user_id", command.UserID()),
		zap.Stringer("role", command.Target()),
	)
	return result, nil
}
