package queries

import (
	"context"
	"database/sql"

	"marketplace/internal/core/domain/model/dispute"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListMyDisputesQueryHandler struct {
	db *gorm.DB
}

func NewListMyDisputesQueryHandler(db *gorm.DB) ListMyDisputesQueryHandler {
	return ListMyDisputesQueryHandler{db: db}
}

// Handle lists the customer's disputes, newest first. Status is derived
// from the stored resolution with dispute.DeriveStatus.
func (h ListMyDisputesQueryHandler) Handle(ctx context.Context, query ListMyDisputesQuery) ([]DisputeView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, order_id, reason, description, resolution, resolved_at, created_at
		FROM disputes
		WHERE customer_id = ?
		ORDER BY created_at DESC, id DESC
	`, query.CustomerID().Value()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	disputes := make([]DisputeView, 0)
	for rows.Next() {
		var (
			id, orderID uuid.UUID
			resolution  sql.NullString
			resolvedAt  nullTimestamp
			createdAt   timestamp
			view        DisputeView
		)
		if err = rows.Scan(&id, &orderID, &view.Reason, &view.Description, &resolution, &resolvedAt, &createdAt); err != nil {
			return nil, err
		}
		if view.ID, err = kernel.FromUUID(id); err != nil {
			return nil, err
		}
		if view.OrderID, err = kernel.FromUUID(orderID); err != nil {
			return nil, err
		}
		if resolution.Valid {
			r := resolution.String
			view.Resolution = &r
		}
		view.Status = dispute.DeriveStatus(view.Resolution)
		view.ResolvedAt = resolvedAt.Ptr()
		view.CreatedAt = createdAt.Time
		disputes = append(disputes, view)
	}

	return disputes, rows.Err()
}
