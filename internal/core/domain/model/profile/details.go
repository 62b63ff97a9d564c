package profile

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

// Details is the caller supplied data for a promotion.
type Details interface {
	Kind() Kind
	// Validate checks the input without building a profile.
	Validate() error
	Build(id, userID kernel.UUID, createdAt time.Time) (Profile, error)
}

type VendorDetails struct {
	BusinessName string
	Street       *string
	City         string
	Phone        string
}

func (d VendorDetails) Kind() Kind { return Vendor }

func (d VendorDetails) Validate() error {
	_, err := d.Build(kernel.NewUUID(), kernel.NewUUID(), time.Time{})
	return err
}

func (d VendorDetails) Build(id, userID kernel.UUID, createdAt time.Time) (Profile, error) {
	address, err := ComposeBusinessAddress(d.Street, d.City)
	if err != nil {
		return nil, err
	}
	return RestoreVendorProfile(id, userID, d.BusinessName, address, d.Phone, createdAt)
}

type RiderDetails struct {
	VehiclePlate  string
	LicenseNumber string
}

func (d RiderDetails) Kind() Kind { return Rider }

func (d RiderDetails) Validate() error {
	_, err := d.Build(kernel.NewUUID(), kernel.NewUUID(), time.Time{})
	return err
}

func (d RiderDetails) Build(id, userID kernel.UUID, createdAt time.Time) (Profile, error) {
	return RestoreRiderProfile(id, userID, d.VehiclePlate, d.LicenseNumber, createdAt)
}

// AgencyDetails is only ever built by the provisioning path, which fills
// ProvisionedBy from the acting administrator.
type AgencyDetails struct {
	AgencyName    string
	ServiceArea   string
	ProvisionedBy kernel.UUID
}

func (d AgencyDetails) Kind() Kind { return Agency }

func (d AgencyDetails) Validate() error {
	_, err := d.Build(kernel.NewUUID(), kernel.NewUUID(), time.Time{})
	return err
}

func (d AgencyDetails) Build(id, userID kernel.UUID, createdAt time.Time) (Profile, error) {
	return RestoreAgencyProfile(id, userID, d.AgencyName, d.ServiceArea, d.ProvisionedBy, createdAt)
}
