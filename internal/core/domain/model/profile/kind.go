package profile

import (
	"fmt"

	"marketplace/internal/core/domain/model/role"
	"marketplace/internal/pkg/errs"
)

// Kind identifies the profile table a promotion writes to.
type Kind int

const (
	Unknown Kind = iota
	Vendor
	Rider
	Agency
)

func (k Kind) String() string {
	switch k {
	case Vendor:
		return "VENDOR_PROFILE"
	case Rider:
		return "RIDER_PROFILE"
	case Agency:
		return "DELIVERY_AGENCY_PROFILE"
	default:
		return "UNKNOWN"
	}
}

func (k Kind) Validate() error {
	if k < Vendor || k > Agency {
		return errs.NewValueIsInvalidErrorWithCause("profile kind", fmt.Errorf("%d is not a valid profile kind", k))
	}
	return nil
}

// Role returns the role a profile of this kind belongs to.
func (k Kind) Role() role.Role {
	switch k {
	case Vendor:
		return role.Vendor
	case Rider:
		return role.Rider
	case Agency:
		return role.DeliveryAgency
	default:
		return role.Unknown
	}
}
