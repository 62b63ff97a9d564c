package delivery

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

// TransitionRules decides whether an edge of the delivery chain is legal.
type TransitionRules interface {
	IsAllowed(from, to Status) bool
}

// Delivery is the job of carrying one order to its customer.
//
// Invariants:
//   - There is at most one delivery per order
//   - Once assigned, the assignee never changes
//   - Status only moves forward, and only by the assignee
type Delivery struct {
	id              kernel.UUID
	orderID         kernel.UUID
	assignedActorID *kernel.UUID
	status          Status
	createdAt       time.Time
	updatedAt       time.Time
	guard           guard.ConstructorGuard
}

// NewDelivery posts an unassigned job in AWAITING_PICKUP.
func NewDelivery(id, orderID kernel.UUID, now time.Time) (*Delivery, error) {
	return RestoreDelivery(id, orderID, nil, AwaitingPickup, now, now)
}

func RestoreDelivery(
	id, orderID kernel.UUID,
	assignedActorID *kernel.UUID,
	status Status,
	createdAt, updatedAt time.Time,
) (*Delivery, error) {
	var assigneeErr error
	if assignedActorID != nil {
		assigneeErr = assignedActorID.Validate()
	} else if status != AwaitingPickup {
		assigneeErr = errs.NewValueIsInvalidErrorWithCause(
			"assigned actor",
			fmt.Errorf("%s delivery must have an assignee", status),
		)
	}

	if err := errors.Join(id.Validate(), orderID.Validate(), status.Validate(), assigneeErr); err != nil {
		return nil, err
	}

	d := &Delivery{
		id:        id,
		orderID:   orderID,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}
	if assignedActorID != nil {
		actor := *assignedActorID
		d.assignedActorID = &actor
	}
	return d, nil
}

func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

func (d *Delivery) ID() kernel.UUID      { return d.id }
func (d *Delivery) OrderID() kernel.UUID { return d.orderID }
func (d *Delivery) Status() Status       { return d.status }
func (d *Delivery) CreatedAt() time.Time { return d.createdAt }
func (d *Delivery) UpdatedAt() time.Time { return d.updatedAt }

// AssignedActorID returns the assignee, or nil for an open job.
func (d *Delivery) AssignedActorID() *kernel.UUID {
	if d.assignedActorID == nil {
		return nil
	}
	id := *d.assignedActorID
	return &id
}

// IsAssignedTo reports whether actorID holds the job.
func (d *Delivery) IsAssignedTo(actorID kernel.UUID) bool {
	return d.assignedActorID != nil && d.assignedActorID.IsEqual(actorID)
}

// Assign hands an open job to actorID.
func (d *Delivery) Assign(actorID kernel.UUID, at time.Time) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	if d.status != AwaitingPickup {
		return JobNotOpen(d.status.String())
	}
	if d.assignedActorID != nil {
		return errs.NewConflictError(errs.CodeJobAlreadyAssigned, "delivery job is already assigned")
	}
	d.assignedActorID = &actorID
	d.updatedAt = at
	return nil
}

// Advance moves the job to target on behalf of actorID and returns the
// status it left. Checks run in this order: target requestable, actor is the
// assignee, edge allowed by rules.
func (d *Delivery) Advance(rules TransitionRules, actorID kernel.UUID, target Status, at time.Time) (Status, error) {
	if !target.IsRequestable() {
		return Unknown, NotRequestable(target.String())
	}
	if !d.IsAssignedTo(actorID) {
		return Unknown, errs.NewForbiddenError(errs.CodeNotAssignedAgency, "delivery is not assigned to this actor")
	}

	from := d.status
	if !rules.IsAllowed(from, target) {
		return Unknown, errs.NewInvalidTransitionError(errs.CodeInvalidJobTransition, "delivery", from, target)
	}

	d.status = target
	d.updatedAt = at
	return from, nil
}

// JobNotOpen is the InvalidState returned when a job can no longer be claimed.
func JobNotOpen(reason string) *errs.InvalidStateError {
	return errs.NewInvalidStateError(errs.CodeJobNotOpen, "delivery job is not open: "+reason)
}
