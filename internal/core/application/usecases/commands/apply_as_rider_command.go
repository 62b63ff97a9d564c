package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/profile"
	"marketplace/internal/pkg/guard"
)

var ErrApplyAsRiderCommandIsNotConstructed = errors.New(
	"ApplyAsRiderCommand must be created via NewApplyAsRiderCommand constructor",
)

// ApplyAsRiderCommand is the rider application. It stays available even
// while rider self-service is switched off, in which case it always fails
// with a notice pointing to the administrator path.
type ApplyAsRiderCommand struct {
	userID  kernel.UUID
	details profile.RiderDetails

	guard guard.ConstructorGuard
}

func NewApplyAsRiderCommand(userID kernel.UUID, details profile.RiderDetails) (ApplyAsRiderCommand, error) {
	if err := userID.Validate(); err != nil {
		return ApplyAsRiderCommand{}, err
	}
	return ApplyAsRiderCommand{userID: userID, details: details, guard: guard.NewConstructorGuard()}, nil
}

func (c ApplyAsRiderCommand) Validate() error {
	return c.guard.Validate(ErrApplyAsRiderCommandIsNotConstructed)
}

func (c ApplyAsRiderCommand) UserID() kernel.UUID           { return c.userID }
func (c ApplyAsRiderCommand) Details() profile.RiderDetails { return c.details }
