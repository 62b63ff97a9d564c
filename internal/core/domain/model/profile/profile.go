package profile

import (
	"errors"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrBusinessNameIsRequired  = errs.NewValueIsRequiredError("business name")
	ErrCityIsRequired          = errs.NewValueIsRequiredError("city")
	ErrPhoneIsRequired         = errs.NewValueIsRequiredError("phone")
	ErrVehiclePlateIsRequired  = errs.NewValueIsRequiredError("vehicle plate")
	ErrLicenseNumberIsRequired = errs.NewValueIsRequiredError("license number")
	ErrAgencyNameIsRequired    = errs.NewValueIsRequiredError("agency name")
	ErrServiceAreaIsRequired   = errs.NewValueIsRequiredError("service area")

	ErrProfileIsNotConstructed = errors.New("profile must be created via its constructor")
)

// Profile is implemented by every profile kind.
type Profile interface {
	ID() kernel.UUID
	UserID() kernel.UUID
	Kind() Kind
	CreatedAt() time.Time
}

type base struct {
	id        kernel.UUID
	userID    kernel.UUID
	createdAt time.Time
	guard     guard.ConstructorGuard
}

func newBase(id, userID kernel.UUID, createdAt time.Time) (base, error) {
	if err := errors.Join(id.Validate(), userID.Validate()); err != nil {
		return base{}, err
	}
	return base{id: id, userID: userID, createdAt: createdAt, guard: guard.NewConstructorGuard()}, nil
}

func (b base) ID() kernel.UUID      { return b.id }
func (b base) UserID() kernel.UUID  { return b.userID }
func (b base) CreatedAt() time.Time { return b.createdAt }

func (b base) Validate() error {
	return b.guard.Validate(ErrProfileIsNotConstructed)
}

// ComposeBusinessAddress joins street and city, falling back to city alone
// when street is absent or blank.
func ComposeBusinessAddress(street *string, city string) (string, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return "", ErrCityIsRequired
	}
	if street == nil || strings.TrimSpace(*street) == "" {
		return city, nil
	}
	return strings.TrimSpace(*street) + ", " + city, nil
}

func required(value string, err error) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", err
	}
	return value, nil
}

// VendorProfile belongs to a VENDOR user.
type VendorProfile struct {
	base
	businessName    string
	businessAddress string
	phone           string
}

// RestoreVendorProfile rebuilds a stored vendor profile. The address is
// taken as already composed.
func RestoreVendorProfile(id, userID kernel.UUID, businessName, businessAddress, phone string, createdAt time.Time) (*VendorProfile, error) {
	b, err := newBase(id, userID, createdAt)
	name, nameErr := required(businessName, ErrBusinessNameIsRequired)
	address, addrErr := required(businessAddress, ErrCityIsRequired)
	phone, phoneErr := required(phone, ErrPhoneIsRequired)
	if err = errors.Join(err, nameErr, addrErr, phoneErr); err != nil {
		return nil, err
	}
	return &VendorProfile{base: b, businessName: name, businessAddress: address, phone: phone}, nil
}

func (p *VendorProfile) Kind() Kind              { return Vendor }
func (p *VendorProfile) BusinessName() string    { return p.businessName }
func (p *VendorProfile) BusinessAddress() string { return p.businessAddress }
func (p *VendorProfile) Phone() string           { return p.phone }

// RiderProfile belongs to a RIDER user.
type RiderProfile struct {
	base
	vehiclePlate  string
	licenseNumber string
}

func RestoreRiderProfile(id, userID kernel.UUID, vehiclePlate, licenseNumber string, createdAt time.Time) (*RiderProfile, error) {
	b, err := newBase(id, userID, createdAt)
	plate, plateErr := required(vehiclePlate, ErrVehiclePlateIsRequired)
	license, licenseErr := required(licenseNumber, ErrLicenseNumberIsRequired)
	if err = errors.Join(err, plateErr, licenseErr); err != nil {
		return nil, err
	}
	return &RiderProfile{base: b, vehiclePlate: strings.ToUpper(plate), licenseNumber: license}, nil
}

func (p *RiderProfile) Kind() Kind            { return Rider }
func (p *RiderProfile) VehiclePlate() string  { return p.vehiclePlate }
func (p *RiderProfile) LicenseNumber() string { return p.licenseNumber }

// AgencyProfile belongs to a DELIVERY_AGENCY user. Agencies are provisioned
// by an administrator whose id is recorded on the profile.
type AgencyProfile struct {
	base
	agencyName    string
	serviceArea   string
	provisionedBy kernel.UUID
}

func RestoreAgencyProfile(id, userID kernel.UUID, agencyName, serviceArea string, provisionedBy kernel.UUID, createdAt time.Time) (*AgencyProfile, error) {
	b, err := newBase(id, userID, createdAt)
	name, nameErr := required(agencyName, ErrAgencyNameIsRequired)
	area, areaErr := required(serviceArea, ErrServiceAreaIsRequired)
	if err = errors.Join(err, nameErr, areaErr, provisionedBy.Validate()); err != nil {
		return nil, err
	}
	return &AgencyProfile{base: b, agencyName: name, serviceArea: area, provisionedBy: provisionedBy}, nil
}

func (p *AgencyProfile) Kind() Kind                 { return Agency }
func (p *AgencyProfile) AgencyName() string         { return p.agencyName }
func (p *AgencyProfile) ServiceArea() string        { return p.serviceArea }
func (p *AgencyProfile) ProvisionedBy() kernel.UUID { return p.provisionedBy }
