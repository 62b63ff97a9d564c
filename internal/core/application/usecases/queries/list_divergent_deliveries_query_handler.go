package queries

import (
	"context"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListDivergentDeliveriesQueryHandler struct {
	db *gorm.DB
}

func NewListDivergentDeliveriesQueryHandler(db *gorm.DB) ListDivergentDeliveriesQueryHandler {
	return ListDivergentDeliveriesQueryHandler{db: db}
}

func (h ListDivergentDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query ListDivergentDeliveriesQuery,
) ([]DivergentDelivery, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT d.id, d.order_id, o.status, d.updated_at
		FROM deliveries d
		JOIN orders o ON o.id = d.order_id
		WHERE d.status = ? AND o.status <> ?
		ORDER BY d.updated_at
	`, delivery.Delivered.String(), order.Delivered.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]DivergentDelivery, 0)
	for rows.Next() {
		var (
			deliveryID, orderID uuid.UUID
			status              string
			deliveredAt         timestamp
			item                DivergentDelivery
		)
		if err = rows.Scan(&deliveryID, &orderID, &status, &deliveredAt); err != nil {
			return nil, err
		}
		if item.DeliveryID, err = kernel.FromUUID(deliveryID); err != nil {
			return nil, err
		}
		if item.OrderID, err = kernel.FromUUID(orderID); err != nil {
			return nil, err
		}
		if item.OrderStatus, err = order.ParseStatus(status); err != nil {
			return nil, err
		}
		item.DeliveredAt = deliveredAt.Time
		result = append(result, item)
	}

	return result, rows.Err()
}
