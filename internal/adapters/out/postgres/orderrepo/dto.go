// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// An order is stored as one row in orders plus its lines, and every applied
// status change is appended to order_status_history.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Statuses are stored by name and indexed for the reconciliation queries.
type OrderDTO struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID      `gorm:"type:uuid;index;not null"`
	VendorID      uuid.UUID      `gorm:"type:uuid;index;not null"`
	Status        string         `gorm:"size:32;index;not null"`
	PaymentMethod string         `gorm:"size:32;not null"`
	Lines         []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time      `gorm:"not null"`
	UpdatedAt     time.Time      `gorm:"not null"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO is one product line. Position keeps the checkout order.
type OrderLineDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position  int       `gorm:"primaryKey;autoIncrement:false"`
	ProductID uuid.UUID `gorm:"type:uuid;index;not null"`
	Quantity  int       `gorm:"not null"`
	UnitPrice int64     `gorm:"not null"`
}

func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// OrderStatusHistoryDTO is an append-only transition record. ActorID is NULL
// for transitions applied by the system.
type OrderStatusHistoryDTO struct {
	ID         uint64     `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID  `gorm:"type:uuid;index;not null"`
	FromStatus string     `gorm:"size:32;not null"`
	ToStatus   string     `gorm:"size:32;not null"`
	ActorID    *uuid.UUID `gorm:"type:uuid"`
	CreatedAt  time.Time  `gorm:"not null"`
}

func (OrderStatusHistoryDTO) TableName() string {
	return "order_status_history"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	lines := aggregate.Lines()
	dtoLines := make([]OrderLineDTO, 0, len(lines))
	for i, line := range lines {
		dtoLines = append(dtoLines, OrderLineDTO{
			OrderID:   aggregate.ID().Value(),
			Position:  i,
			ProductID: line.ProductID().Value(),
			Quantity:  line.Quantity(),
			UnitPrice: line.UnitPrice(),
		})
	}

	return OrderDTO{
		ID:            aggregate.ID().Value(),
		CustomerID:    aggregate.CustomerID().Value(),
		VendorID:      aggregate.VendorID().Value(),
		Status:        aggregate.Status().String(),
		PaymentMethod: aggregate.PaymentMethod().String(),
		Lines:         dtoLines,
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
	}
}

// toDomain rebuilds the aggregate. Lines must be loaded ordered by position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.FromUUID(dto.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.FromUUID(dto.CustomerID)
	if err != nil {
		return nil, err
	}
	vendorID, err := kernel.FromUUID(dto.VendorID)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	pm, err := order.ParsePaymentMethod(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		productID, productErr := kernel.FromUUID(l.ProductID)
		if productErr != nil {
			return nil, productErr
		}
		line, lineErr := order.NewLine(productID, l.Quantity, l.UnitPrice)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(id, customerID, vendorID, status, pm, lines, dto.CreatedAt, dto.UpdatedAt)
}

func historyFromDomain(entry order.HistoryEntry) OrderStatusHistoryDTO {
	var actorID *uuid.UUID
	if entry.ActorID != nil {
		raw := entry.ActorID.Value()
		actorID = &raw
	}

	return OrderStatusHistoryDTO{
		OrderID:    entry.OrderID.Value(),
		FromStatus: entry.From.String(),
		ToStatus:   entry.To.String(),
		ActorID:    actorID,
		CreatedAt:  entry.CreatedAt,
	}
}

func historyToDomain(dto OrderStatusHistoryDTO) (order.HistoryEntry, error) {
	orderID, err := kernel.FromUUID(dto.OrderID)
	if err != nil {
		return order.HistoryEntry{}, err
	}
	from, err := order.ParseStatus(dto.FromStatus)
	if err != nil {
		return order.HistoryEntry{}, err
	}
	to, err := order.ParseStatus(dto.ToStatus)
	if err != nil {
		return order.HistoryEntry{}, err
	}

	var actorID *kernel.UUID
	if dto.ActorID != nil {
		aID, actorErr := kernel.FromUUID(*dto.ActorID)
		if actorErr != nil {
			return order.HistoryEntry{}, actorErr
		}
		actorID = &aID
	}

	return order.HistoryEntry{
		OrderID:   orderID,
		From:      from,
		To:        to,
		ActorID:   actorID,
		CreatedAt: dto.CreatedAt,
	}, nil
}
