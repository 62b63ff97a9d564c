package commands

import (
	"context"

	"marketplace/internal/core/domain/model/role"
	"marketplace/internal/core/domain/policy"
	"marketplace/internal/core/domain/services"
)

type ApplyAsRiderCommandHandler struct {
	gate     services.PromotionGate
	promoter PromoteUserCommandHandler
}

func NewApplyAsRiderCommandHandler(registry *policy.Registry, promoter PromoteUserCommandHandler) ApplyAsRiderCommandHandler {
	return ApplyAsRiderCommandHandler{
		gate:     services.NewPromotionGate(registry),
		promoter: promoter,
	}
}

// Handle fails with PolicyDisabled without any reads or writes while RIDER
// is not self-service. Otherwise it is a RIDER promotion.
func (h ApplyAsRiderCommandHandler) Handle(ctx context.Context, command ApplyAsRiderCommand) (PromotionResult, error) {
	if err := command.Validate(); err != nil {
		return PromotionResult{}, err
	}

	if err := h.gate.CheckRiderApplication(); err != nil {
		return PromotionResult{}, err
	}

	cmd, err := NewPromoteUserCommand(command.UserID(), role.Rider, command.Details())
	if err != nil {
		return PromotionResult{}, err
	}
	return h.promoter.Handle(ctx, cmd)
}
