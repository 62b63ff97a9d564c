// Package deliveryrepo persists delivery jobs. The unique order_id index
// enforces one job per order.
package deliveryrepo

import (
	"time"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type DeliveryDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null"`
	AssignedActorID *uuid.UUID `gorm:"type:uuid;index"`
	Status          string     `gorm:"size:32;index;not null"`
	CreatedAt       time.Time  `gorm:"not null"`
	UpdatedAt       time.Time  `gorm:"not null"`
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	var assignee *uuid.UUID
	if id := aggregate.AssignedActorID(); id != nil {
		raw := id.Value()
		assignee = &raw
	}

	return DeliveryDTO{
		ID:              aggregate.ID().Value(),
		OrderID:         aggregate.OrderID().Value(),
		AssignedActorID: assignee,
		Status:          aggregate.Status().String(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.FromUUID(dto.ID)
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.FromUUID(dto.OrderID)
	if err != nil {
		return nil, err
	}

	var assignee *kernel.UUID
	if dto.AssignedActorID != nil {
		aID, assigneeErr := kernel.FromUUID(*dto.AssignedActorID)
		if assigneeErr != nil {
			return nil, assigneeErr
		}
		assignee = &aID
	}

	status, err := delivery.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(id, orderID, assignee, status, dto.CreatedAt, dto.UpdatedAt)
}
