package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/profile"
	"marketplace/internal/core/domain/model/role"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrPromoteUserCommandIsNotConstructed = errors.New(
		"PromoteUserCommand must be created via NewPromoteUserCommand constructor",
	)
	ErrProfileDetailsAreRequired = errs.NewValueIsRequiredError("profile details")
)

// PromoteUserCommand asks to turn a customer into a profile-backed role on
// the customer's own initiative.
//
// Example:
//
//	cmd, err := NewPromoteUserCommand(userID, role.Vendor, profile.VendorDetails{
//	    BusinessName: "Fresh Fruit",
//	    City:         "Porto",
//	    Phone:        "+351 900 000 000",
//	})
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
type PromoteUserCommand struct {
	userID  kernel.UUID
	target  role.Role
	details profile.Details

	guard guard.ConstructorGuard
}

func NewPromoteUserCommand(userID kernel.UUID, target role.Role, details profile.Details) (PromoteUserCommand, error) {
	var detailsErr error
	if details == nil {
		detailsErr = ErrProfileDetailsAreRequired
	}

	if err := errors.Join(userID.Validate(), target.Validate(), detailsErr); err != nil {
		return PromoteUserCommand{}, err
	}

	return PromoteUserCommand{
		userID:  userID,
		target:  target,
		details: details,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c PromoteUserCommand) Validate() error {
	return c.guard.Validate(ErrPromoteUserCommandIsNotConstructed)
}

func (c PromoteUserCommand) UserID() kernel.UUID      { return c.userID }
func (c PromoteUserCommand) Target() role.Role        { return c.target }
func (c PromoteUserCommand) Details() profile.Details { return c.details }
