package order

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrLinesAreRequired is returned when placing an order without lines.
	ErrLinesAreRequired = errs.NewValueIsRequiredError("order lines")

	// ErrPaymentMethodNotAllowed is returned when a payment method accompanies
	// any transition other than the one into CONFIRMED.
	ErrPaymentMethodNotAllowed = errs.NewValueIsInvalidErrorWithCause(
		"payment method",
		errors.New("payment method can only be recorded when confirming an order"),
	)
)

// TransitionRules decides whether an edge of the status machine is legal.
type TransitionRules interface {
	IsAllowed(from, to Status) bool
}

// Order is the aggregate root of a purchase placed by one customer with one vendor.
//
// Order follows these invariants:
//   - It has a customer, a vendor and at least one line
//   - A new order starts in PENDING
//   - Status changes only through Transition, along an edge the rules allow
//   - The payment method can be replaced only on entry to CONFIRMED
type Order struct {
	id            kernel.UUID
	customerID    kernel.UUID
	vendorID      kernel.UUID
	status        Status
	paymentMethod PaymentMethod
	lines         []Line
	createdAt     time.Time
	updatedAt     time.Time
	guard         guard.ConstructorGuard
}

// NewOrder places a PENDING order. Stock reservation is the caller's concern.
func NewOrder(
	id, customerID, vendorID kernel.UUID,
	lines []Line,
	paymentMethod PaymentMethod,
	now time.Time,
) (*Order, error) {
	return RestoreOrder(id, customerID, vendorID, Pending, paymentMethod, lines, now, now)
}

// RestoreOrder rebuilds an order loaded from storage.
func RestoreOrder(
	id, customerID, vendorID kernel.UUID,
	status Status,
	paymentMethod PaymentMethod,
	lines []Line,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	var linesErr error
	if len(lines) == 0 {
		linesErr = ErrLinesAreRequired
	}

	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		vendorID.Validate(),
		status.Validate(),
		paymentMethod.Validate(),
		linesErr,
	); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		customerID:    customerID,
		vendorID:      vendorID,
		status:        status,
		paymentMethod: paymentMethod,
		lines:         append([]Line(nil), lines...),
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) ID() kernel.UUID              { return o.id }
func (o *Order) CustomerID() kernel.UUID      { return o.customerID }
func (o *Order) VendorID() kernel.UUID        { return o.vendorID }
func (o *Order) Status() Status               { return o.status }
func (o *Order) PaymentMethod() PaymentMethod { return o.paymentMethod }
func (o *Order) CreatedAt() time.Time         { return o.createdAt }
func (o *Order) UpdatedAt() time.Time         { return o.updatedAt }

// Lines returns a copy of the order lines.
func (o *Order) Lines() []Line {
	return append([]Line(nil), o.lines...)
}

// Total returns the order value in minor currency units.
func (o *Order) Total() int64 {
	var total int64
	for _, l := range o.lines {
		total += l.Subtotal()
	}
	return total
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// Transition moves the order to target if rules allow the edge from the
// current status. It returns the status the order left.
//
// A disallowed edge yields an InvalidTransition error carrying both ends and
// leaves the order untouched.
func (o *Order) Transition(rules TransitionRules, target Status, at time.Time) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	from := o.status
	if !rules.IsAllowed(from, target) {
		return Unknown, errs.NewInvalidTransitionError(errs.CodeInvalidOrderTransition, "order", from, target)
	}

	o.status = target
	o.updatedAt = at
	return from, nil
}

// RecordPaymentMethod replaces the payment method. It is only valid while
// the order is CONFIRMED, i.e. right after the confirming transition.
func (o *Order) RecordPaymentMethod(m PaymentMethod) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if o.status != Confirmed {
		return ErrPaymentMethodNotAllowed
	}
	o.paymentMethod = m
	return nil
}

// RequiresRestock reports whether moving from -> to returns reserved stock.
func RequiresRestock(from, to Status) bool {
	return to == Cancelled && from.IsPreDispatch()
}
