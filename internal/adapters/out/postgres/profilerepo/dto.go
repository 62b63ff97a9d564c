// Package profilerepo persists role profiles. Each profile kind has its own
// table and a user can own at most one row per table.
package profilerepo

import (
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/profile"

	"github.com/google/uuid"
)

type VendorProfileDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	BusinessName    string    `gorm:"size:200;not null"`
	BusinessAddress string    `gorm:"size:500;not null"`
	Phone           string    `gorm:"size:50;not null"`
	CreatedAt       time.Time `gorm:"not null"`
}

func (VendorProfileDTO) TableName() string {
	return "vendor_profiles"
}

type RiderProfileDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	VehiclePlate  string    `gorm:"size:32;not null"`
	LicenseNumber string    `gorm:"size:64;not null"`
	CreatedAt     time.Time `gorm:"not null"`
}

func (RiderProfileDTO) TableName() string {
	return "rider_profiles"
}

type AgencyProfileDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	AgencyName    string    `gorm:"size:200;not null"`
	ServiceArea   string    `gorm:"size:200;not null"`
	ProvisionedBy uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt     time.Time `gorm:"not null"`
}

func (AgencyProfileDTO) TableName() string {
	return "delivery_agency_profiles"
}

// fromDomain returns a pointer to the DTO matching the concrete profile type.
func fromDomain(p profile.Profile) (any, error) {
	switch v := p.(type) {
	case *profile.VendorProfile:
		return &VendorProfileDTO{
			ID:              v.ID().Value(),
			UserID:          v.UserID().Value(),
			BusinessName:    v.BusinessName(),
			BusinessAddress: v.BusinessAddress(),
			Phone:           v.Phone(),
			CreatedAt:       v.CreatedAt(),
		}, nil
	case *profile.RiderProfile:
		return &RiderProfileDTO{
			ID:            v.ID().Value(),
			UserID:        v.UserID().Value(),
			VehiclePlate:  v.VehiclePlate(),
			LicenseNumber: v.LicenseNumber(),
			CreatedAt:     v.CreatedAt(),
		}, nil
	case *profile.AgencyProfile:
		return &AgencyProfileDTO{
			ID:            v.ID().Value(),
			UserID:        v.UserID().Value(),
			AgencyName:    v.AgencyName(),
			ServiceArea:   v.ServiceArea(),
			ProvisionedBy: v.ProvisionedBy().Value(),
			CreatedAt:     v.CreatedAt(),
		}, nil
	default:
		return nil, fmt.Errorf("unsupported profile type %T", p)
	}
}

// modelFor returns an empty DTO for the kind, used as query target.
func modelFor(kind profile.Kind) (any, error) {
	switch kind {
	case profile.Vendor:
		return &VendorProfileDTO{}, nil
	case profile.Rider:
		return &RiderProfileDTO{}, nil
	case profile.Agency:
		return &AgencyProfileDTO{}, nil
	default:
		return nil, kind.Validate()
	}
}

func ids(id, userID uuid.UUID) (kernel.UUID, kernel.UUID, error) {
	pid, err := kernel.FromUUID(id)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	uid, err := kernel.FromUUID(userID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	return pid, uid, nil
}

func toDomain(dto any) (profile.Profile, error) {
	switch v := dto.(type) {
	case *VendorProfileDTO:
		id, userID, err := ids(v.ID, v.UserID)
		if err != nil {
			return nil, err
		}
		return profile.RestoreVendorProfile(id, userID, v.BusinessName, v.BusinessAddress, v.Phone, v.CreatedAt)
	case *RiderProfileDTO:
		id, userID, err := ids(v.ID, v.UserID)
		if err != nil {
			return nil, err
		}
		return profile.RestoreRiderProfile(id, userID, v.VehiclePlate, v.LicenseNumber, v.CreatedAt)
	case *AgencyProfileDTO:
		id, userID, err := ids(v.ID, v.UserID)
		if err != nil {
			return nil, err
		}
		provisionedBy, err := kernel.FromUUID(v.ProvisionedBy)
		if err != nil {
			return nil, err
		}
		return profile.RestoreAgencyProfile(id, userID, v.AgencyName, v.ServiceArea, provisionedBy, v.CreatedAt)
	default:
		return nil, fmt.Errorf("unsupported profile row %T", dto)
	}
}
