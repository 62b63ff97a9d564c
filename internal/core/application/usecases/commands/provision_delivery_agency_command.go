package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/profile"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/guard"
)

var ErrProvisionDeliveryAgencyCommandIsNotConstructed = errors.New(
	"ProvisionDeliveryAgencyCommand must be created via NewProvisionDeliveryAgencyCommand constructor",
)

// ProvisionDeliveryAgencyCommand lets an administrator turn a customer
// account into a delivery agency.
type ProvisionDeliveryAgencyCommand struct {
	actor       user.Actor
	userID      kernel.UUID
	agencyName  string
	serviceArea string

	guard guard.ConstructorGuard
}

func NewProvisionDeliveryAgencyCommand(
	actor user.Actor,
	userID kernel.UUID,
	agencyName, serviceArea string,
) (ProvisionDeliveryAgencyCommand, error) {
	if err := userID.Validate(); err != nil {
		return ProvisionDeliveryAgencyCommand{}, err
	}

	return ProvisionDeliveryAgencyCommand{
		actor:       actor,
		userID:      userID,
		agencyName:  agencyName,
		serviceArea: serviceArea,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c ProvisionDeliveryAgencyCommand) Validate() error {
	return c.guard.Validate(ErrProvisionDeliveryAgencyCommandIsNotConstructed)
}

func (c ProvisionDeliveryAgencyCommand) Actor() user.Actor   { return c.actor }
func (c ProvisionDeliveryAgencyCommand) UserID() kernel.UUID { return c.userID }

// Details builds the agency details, recording the acting administrator.
func (c ProvisionDeliveryAgencyCommand) Details() profile.AgencyDetails {
	return profile.AgencyDetails{
		AgencyName:    c.agencyName,
		ServiceArea:   c.serviceArea,
		ProvisionedBy: c.actor.ID(),
	}
}
