package http

import (
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/dispute"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/profile"
)

type VendorDetailsRequest struct {
	BusinessName string  `json:"businessName"`
	Street       *string `json:"street"`
	City         string  `json:"city"`
	Phone        string  `json:"phone"`
}

type RiderDetailsRequest struct {
	VehiclePlate  string `json:"vehiclePlate"`
	LicenseNumber string `json:"licenseNumber"`
}

// PromotionRequest carries the target role and the details of the profile
// kind that role requires. Only the matching details object is read.
type PromotionRequest struct {
	Role   string                `json:"role"`
	Vendor *VendorDetailsRequest `json:"vendor"`
	Rider  *RiderDetailsRequest  `json:"rider"`
}

func (r PromotionRequest) details() profile.Details {
	switch {
	case r.Vendor != nil:
		return profile.VendorDetails{
			BusinessName: r.Vendor.BusinessName,
			Street:       r.Vendor.Street,
			City:         r.Vendor.City,
			Phone:        r.Vendor.Phone,
		}
	case r.Rider != nil:
		return profile.RiderDetails{VehiclePlate: r.Rider.VehiclePlate, LicenseNumber: r.Rider.LicenseNumber}
	default:
		return nil
	}
}

type ProvisionAgencyRequest struct {
	UserID      kernel.UUID `json:"userId"`
	AgencyName  string      `json:"agencyName"`
	ServiceArea string      `json:"serviceArea"`
}

type PromotionResponse struct {
	UserID    kernel.UUID `json:"userId"`
	Role      string      `json:"role"`
	ProfileID kernel.UUID `json:"profileId"`
	Profile   string      `json:"profile"`
}

func promotionResponse(r commands.PromotionResult) PromotionResponse {
	return PromotionResponse{
		UserID:    r.User.ID(),
		Role:      r.User.Role().String(),
		ProfileID: r.Profile.ID(),
		Profile:   r.Profile.Kind().String(),
	}
}

type OrderItemRequest struct {
	ProductID kernel.UUID `json:"productId"`
	Quantity  int         `json:"quantity"`
}

type PlaceOrderRequest struct {
	VendorID      kernel.UUID        `json:"vendorId"`
	Items         []OrderItemRequest `json:"items"`
	PaymentMethod string             `json:"paymentMethod"`
}

type TransitionRequest struct {
	Status        string  `json:"status"`
	PaymentMethod *string `json:"paymentMethod"`
}

type OrderLineResponse struct {
	ProductID kernel.UUID `json:"productId"`
	Quantity  int         `json:"quantity"`
	UnitPrice int64       `json:"unitPrice"`
	Subtotal  int64       `json:"subtotal"`
}

type OrderHistoryResponse struct {
	From    string       `json:"from"`
	To      string       `json:"to"`
	ActorID *kernel.UUID `json:"actorId"`
	At      time.Time    `json:"at"`
}

type OrderResponse struct {
	ID            kernel.UUID            `json:"id"`
	CustomerID    kernel.UUID            `json:"customerId"`
	VendorID      kernel.UUID            `json:"vendorId"`
	Status        string                 `json:"status"`
	PaymentMethod string                 `json:"paymentMethod"`
	Total         int64                  `json:"total"`
	Lines         []OrderLineResponse    `json:"lines"`
	History       []OrderHistoryResponse `json:"history,omitempty"`
	NextStatuses  []string               `json:"nextStatuses,omitempty"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
}

func orderResponse(o *order.Order) OrderResponse {
	lines := make([]OrderLineResponse, 0, len(o.Lines()))
	for _, l := range o.Lines() {
		lines = append(lines, OrderLineResponse{
			ProductID: l.ProductID(),
			Quantity:  l.Quantity(),
			UnitPrice: l.UnitPrice(),
			Subtotal:  l.Subtotal(),
		})
	}
	return OrderResponse{
		ID:            o.ID(),
		CustomerID:    o.CustomerID(),
		VendorID:      o.VendorID(),
		Status:        o.Status().String(),
		PaymentMethod: o.PaymentMethod().String(),
		Total:         o.Total(),
		Lines:         lines,
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
	}
}

func orderViewResponse(v queries.GetOrderQueryResponse) OrderResponse {
	lines := make([]OrderLineResponse, 0, len(v.Lines))
	for _, l := range v.Lines {
		lines = append(lines, OrderLineResponse(l))
	}
	history := make([]OrderHistoryResponse, 0, len(v.History))
	for _, h := range v.History {
		history = append(history, OrderHistoryResponse{
			From:    h.From.String(),
			To:      h.To.String(),
			ActorID: h.ActorID,
			At:      h.At,
		})
	}
	next := make([]string, 0, len(v.NextStatuses))
	for _, s := range v.NextStatuses {
		next = append(next, s.String())
	}
	return OrderResponse{
		ID:            v.ID,
		CustomerID:    v.CustomerID,
		VendorID:      v.VendorID,
		Status:        v.Status.String(),
		PaymentMethod: v.PaymentMethod.String(),
		Total:         v.Total,
		Lines:         lines,
		History:       history,
		NextStatuses:  next,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

type AdvanceDeliveryRequest struct {
	Status string `json:"status"`
}

type DeliveryResponse struct {
	ID              kernel.UUID  `json:"id"`
	OrderID         kernel.UUID  `json:"orderId"`
	Status          string       `json:"status"`
	AssignedActorID *kernel.UUID `json:"assignedActorId"`
	OrderStatus     string       `json:"orderStatus,omitempty"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

func deliveryResponse(d *delivery.Delivery) DeliveryResponse {
	return DeliveryResponse{
		ID:              d.ID(),
		OrderID:         d.OrderID(),
		Status:          d.Status().String(),
		AssignedActorID: d.AssignedActorID(),
		CreatedAt:       d.CreatedAt(),
		UpdatedAt:       d.UpdatedAt(),
	}
}

type CreateDisputeRequest struct {
	Reason      string `json:"reason"`
	Description string `json:"description"`
}

type ResolveDisputeRequest struct {
	Resolution string `json:"resolution"`
}

type DisputeResponse struct {
	ID          kernel.UUID `json:"id"`
	OrderID     kernel.UUID `json:"orderId"`
	Reason      string      `json:"reason"`
	Description string      `json:"description"`
	Resolution  *string     `json:"resolution"`
	Status      string      `json:"status"`
	ResolvedAt  *time.Time  `json:"resolvedAt"`
	CreatedAt   time.Time   `json:"createdAt"`
}

func disputeResponse(d *dispute.Dispute) DisputeResponse {
	return DisputeResponse{
		ID:          d.ID(),
		OrderID:     d.OrderID(),
		Reason:      d.Reason(),
		Description: d.Description(),
		Resolution:  d.Resolution(),
		Status:      d.Status().String(),
		ResolvedAt:  d.ResolvedAt(),
		CreatedAt:   d.CreatedAt(),
	}
}
