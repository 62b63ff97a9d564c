// Package userrepo persists user aggregates. Roles are stored by name so the
// table stays readable without the Go enum.
package userrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/role"
	"marketplace/internal/core/domain/model/user"

	"github.com/google/uuid"
)

type UserDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email       string    `gorm:"size:320;uniqueIndex;not null"`
	DisplayName string    `gorm:"size:200;not null"`
	Role        string    `gorm:"size:32;index;not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:          aggregate.ID().Value(),
		Email:       aggregate.Email(),
		DisplayName: aggregate.DisplayName(),
		Role:        aggregate.Role().String(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.FromUUID(dto.ID)
	if err != nil {
		return nil, err
	}

	r, err := role.Parse(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Email, dto.DisplayName, r, dto.CreatedAt)
}
