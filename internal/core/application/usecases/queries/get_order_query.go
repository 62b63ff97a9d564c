package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery loads one order with its lines and status history, as seen
// by actor.
type GetOrderQuery struct {
	orderID kernel.UUID
	actor   user.Actor
	guard   guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID, actor user.Actor) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }
func (q GetOrderQuery) Actor() user.Actor    { return q.actor }

type OrderLineView struct {
	ProductID kernel.UUID
	Quantity  int
	UnitPrice int64
	Subtotal  int64
}

type OrderHistoryView struct {
	From    order.Status
	To      order.Status
	ActorID *kernel.UUID
	At      time.Time
}

// GetOrderQueryResponse is the order read model. NextStatuses lists the
// transitions the requesting actor may apply right now.
type GetOrderQueryResponse struct {
	ID            kernel.UUID
	CustomerID    kernel.UUID
	VendorID      kernel.UUID
	Status        order.Status
	PaymentMethod order.PaymentMethod
	Total         int64
	Lines         []OrderLineView
	History       []OrderHistoryView
	NextStatuses  []order.Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
