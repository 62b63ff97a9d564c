// Package disputerepo persists disputes. Dispute status is not stored; it is
// derived from the resolution column on read.
package disputerepo

import (
	"time"

	"marketplace/internal/core/domain/model/dispute"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type DisputeDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	CustomerID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Reason      string    `gorm:"size:200;not null"`
	Description string    `gorm:"type:text;not null"`
	Resolution  *string   `gorm:"type:text"`
	ResolvedAt  *time.Time
	CreatedAt   time.Time `gorm:"index;not null"`
}

func (DisputeDTO) TableName() string {
	return "disputes"
}

func fromDomain(aggregate *dispute.Dispute) DisputeDTO {
	return DisputeDTO{
		ID:          aggregate.ID().Value(),
		OrderID:     aggregate.OrderID().Value(),
		CustomerID:  aggregate.CustomerID().Value(),
		Reason:      aggregate.Reason(),
		Description: aggregate.Description(),
		Resolution:  aggregate.Resolution(),
		ResolvedAt:  aggregate.ResolvedAt(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

func toDomain(dto DisputeDTO) (*dispute.Dispute, error) {
	id, err := kernel.FromUUID(dto.ID)
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.FromUUID(dto.OrderID)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.FromUUID(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	return dispute.RestoreDispute(
		id, orderID, customerID,
		dto.Reason, dto.Description,
		dto.Resolution, dto.ResolvedAt,
		dto.CreatedAt,
	)
}
