package queries

import (
	"context"
	"database/sql"
	"errors"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/policy"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetDeliveryQueryHandler struct {
	db *gorm.DB
}

func NewGetDeliveryQueryHandler(db *gorm.DB) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{db: db}
}

// Handle lets the assignee, the order's customer or vendor, and
// administrators see a delivery. Anyone else gets Forbidden.
func (h GetDeliveryQueryHandler) Handle(ctx context.Context, query GetDeliveryQuery) (GetDeliveryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryQueryResponse{}, err
	}

	var (
		id, orderID, customerID, vendorID uuid.UUID
		assignee                          uuid.NullUUID
		status, orderStatus               string
		createdAt, updatedAt              timestamp
	)
	err := h.db.WithContext(ctx).Raw(`
		SELECT d.id, d.order_id, o.customer_id, o.vendor_id, d.assigned_actor_id,
			d.status, o.status, d.created_at, d.updated_at
		FROM deliveries d
		JOIN orders o ON o.id = d.order_id
		WHERE d.id = ?
	`, query.DeliveryID().Value()).Row().Scan(
		&id, &orderID, &customerID, &vendorID, &assignee,
		&status, &orderStatus, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetDeliveryQueryResponse{}, errs.NewObjectNotFoundError("delivery", query.DeliveryID().String())
		}
		return GetDeliveryQueryResponse{}, err
	}

	deliveryID, idErr := kernel.FromUUID(id)
	parentID, orderErr := kernel.FromUUID(orderID)
	customer, customerErr := kernel.FromUUID(customerID)
	vendor, vendorErr := kernel.FromUUID(vendorID)
	deliveryStatus, statusErr := delivery.ParseStatus(status)
	parentStatus, orderStatusErr := order.ParseStatus(orderStatus)
	if err = errors.Join(idErr, orderErr, customerErr, vendorErr, statusErr, orderStatusErr); err != nil {
		return GetDeliveryQueryResponse{}, err
	}

	response := GetDeliveryQueryResponse{
		ID:          deliveryID,
		OrderID:     parentID,
		OrderStatus: parentStatus,
		Status:      deliveryStatus,
		CreatedAt:   createdAt.Time,
		UpdatedAt:   updatedAt.Time,
	}
	if assignee.Valid {
		actorID, assigneeErr := kernel.FromUUID(assignee.UUID)
		if assigneeErr != nil {
			return GetDeliveryQueryResponse{}, assigneeErr
		}
		response.AssignedActorID = &actorID
	}

	actor := query.Actor()
	isAssignee := response.AssignedActorID != nil && actor.Is(*response.AssignedActorID)
	if !isAssignee && policy.RelationsFor(customer, vendor, actor) == policy.None {
		return GetDeliveryQueryResponse{}, errs.NewForbiddenError(errs.CodeNotDeliveryActor, "actor has no relation to the delivery")
	}

	return response, nil
}
