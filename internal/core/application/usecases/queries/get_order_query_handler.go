package queries

import (
	"context"
	"database/sql"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/policy"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db       *gorm.DB
	registry *policy.Registry
}

func NewGetOrderQueryHandler(db *gorm.DB, registry *policy.Registry) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, registry: registry}
}

type orderRow struct {
	ID            uuid.UUID
	CustomerID    uuid.UUID
	VendorID      uuid.UUID
	Status        string
	PaymentMethod string
	CreatedAt     timestamp
	UpdatedAt     timestamp
}

// Handle returns NotFound for unknown ids and Forbidden for actors with no
// relation to the order, so unrelated callers learn nothing about order state.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)

	var row orderRow
	err := db.Raw(`
		SELECT id, customer_id, vendor_id, status, payment_method, created_at, updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Value()).Row().Scan(
		&row.ID, &row.CustomerID, &row.VendorID, &row.Status, &row.PaymentMethod, &row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetOrderQueryResponse{}, err
	}

	response, err := h.header(row)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	rel := policy.RelationsFor(response.CustomerID, response.VendorID, query.Actor())
	if rel == policy.None {
		return GetOrderQueryResponse{}, errs.NewForbiddenError(errs.CodeOrderActorForbidden, "actor has no relation to the order")
	}
	for _, next := range h.registry.NextOrderStatuses(response.Status) {
		if h.registry.AllowsOrderActor(response.Status, next, rel) {
			response.NextStatuses = append(response.NextStatuses, next)
		}
	}

	if response.Lines, err = h.lines(db, row.ID); err != nil {
		return GetOrderQueryResponse{}, err
	}
	for _, line := range response.Lines {
		response.Total += line.Subtotal
	}

	if response.History, err = h.history(db, row.ID); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return response, nil
}

func (h GetOrderQueryHandler) header(row orderRow) (GetOrderQueryResponse, error) {
	id, idErr := kernel.FromUUID(row.ID)
	customerID, customerErr := kernel.FromUUID(row.CustomerID)
	vendorID, vendorErr := kernel.FromUUID(row.VendorID)
	status, statusErr := order.ParseStatus(row.Status)
	pm, pmErr := order.ParsePaymentMethod(row.PaymentMethod)
	if err := errors.Join(idErr, customerErr, vendorErr, statusErr, pmErr); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{
		ID:            id,
		CustomerID:    customerID,
		VendorID:      vendorID,
		Status:        status,
		PaymentMethod: pm,
		Lines:         make([]OrderLineView, 0),
		History:       make([]OrderHistoryView, 0),
		NextStatuses:  make([]order.Status, 0),
		CreatedAt:     row.CreatedAt.Time,
		UpdatedAt:     row.UpdatedAt.Time,
	}, nil
}

func (h GetOrderQueryHandler) lines(db *gorm.DB, orderID uuid.UUID) ([]OrderLineView, error) {
	rows, err := db.Raw(`
		SELECT product_id, quantity, unit_price
		FROM order_lines
		WHERE order_id = ?
		ORDER BY position
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]OrderLineView, 0)
	for rows.Next() {
		var (
			productID uuid.UUID
			line      OrderLineView
		)
		if err = rows.Scan(&productID, &line.Quantity, &line.UnitPrice); err != nil {
			return nil, err
		}
		if line.ProductID, err = kernel.FromUUID(productID); err != nil {
			return nil, err
		}
		line.Subtotal = line.UnitPrice * int64(line.Quantity)
		lines = append(lines, line)
	}

	return lines, rows.Err()
}

func (h GetOrderQueryHandler) history(db *gorm.DB, orderID uuid.UUID) ([]OrderHistoryView, error) {
	rows, err := db.Raw(`
		SELECT from_status, to_status, actor_id, created_at
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY id
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]OrderHistoryView, 0)
	for rows.Next() {
		var (
			from, to string
			actorID  uuid.NullUUID
			at       timestamp
			entry    OrderHistoryView
		)
		if err = rows.Scan(&from, &to, &actorID, &at); err != nil {
			return nil, err
		}
		if entry.From, err = order.ParseStatus(from); err != nil {
			return nil, err
		}
		if entry.To, err = order.ParseStatus(to); err != nil {
			return nil, err
		}
		if actorID.Valid {
			id, idErr := kernel.FromUUID(actorID.UUID)
			if idErr != nil {
				return nil, idErr
			}
			entry.ActorID = &id
		}
		entry.At = at.Time
		history = append(history, entry)
	}

	return history, rows.Err()
}
