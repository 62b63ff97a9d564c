// Package dispute provides the Dispute entity a customer opens against a
// delivered order. Its status is never stored: DeriveStatus computes it from
// the resolution at every read site.
package dispute

import (
	"errors"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// RejectedResolution is the resolution value that derives REJECTED.
const RejectedResolution = "REJECTED"

var (
	ErrReasonIsRequired        = errs.NewValueIsRequiredError("reason")
	ErrResolutionIsRequired    = errs.NewValueIsRequiredError("resolution")
	ErrDisputeIsNotConstructed = errors.New("Dispute must be created via NewDispute constructor")
)

type Status int

const (
	Open Status = iota + 1
	Rejected
	Resolved
)

func (s Status) String() string {
	switch s {
	case Open:
		return "OPEN"
	case Rejected:
		return "REJECTED"
	case Resolved:
		return "RESOLVED"
	default:
		return "UNKNOWN"
	}
}

// DeriveStatus maps a resolution to a status: nil is OPEN, "REJECTED" is
// REJECTED and any other value is RESOLVED.
func DeriveStatus(resolution *string) Status {
	switch {
	case resolution == nil:
		return Open
	case *resolution == RejectedResolution:
		return Rejected
	default:
		return Resolved
	}
}

type Dispute struct {
	id          kernel.UUID
	orderID     kernel.UUID
	customerID  kernel.UUID
	reason      string
	description string
	resolution  *string
	resolvedAt  *time.Time
	createdAt   time.Time
	guard       guard.ConstructorGuard
}

// NewDispute opens a dispute. Ownership and order status are checked by the caller.
func NewDispute(id, orderID, customerID kernel.UUID, reason, description string, now time.Time) (*Dispute, error) {
	return RestoreDispute(id, orderID, customerID, reason, description, nil, nil, now)
}

func RestoreDispute(
	id, orderID, customerID kernel.UUID,
	reason, description string,
	resolution *string,
	resolvedAt *time.Time,
	createdAt time.Time,
) (*Dispute, error) {
	var reasonErr error
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reasonErr = ErrReasonIsRequired
	}
	if err := errors.Join(id.Validate(), orderID.Validate(), customerID.Validate(), reasonErr); err != nil {
		return nil, err
	}

	return &Dispute{
		id:          id,
		orderID:     orderID,
		customerID:  customerID,
		reason:      reason,
		description: strings.TrimSpace(description),
		resolution:  resolution,
		resolvedAt:  resolvedAt,
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (d *Dispute) Validate() error {
	if d == nil {
		return ErrDisputeIsNotConstructed
	}
	return d.guard.Validate(ErrDisputeIsNotConstructed)
}

func (d *Dispute) ID() kernel.UUID         { return d.id }
func (d *Dispute) OrderID() kernel.UUID    { return d.orderID }
func (d *Dispute) CustomerID() kernel.UUID { return d.customerID }
func (d *Dispute) Reason() string          { return d.reason }
func (d *Dispute) Description() string     { return d.description }
func (d *Dispute) Resolution() *string     { return d.resolution }
func (d *Dispute) ResolvedAt() *time.Time  { return d.resolvedAt }
func (d *Dispute) CreatedAt() time.Time    { return d.createdAt }
func (d *Dispute) Status() Status          { return DeriveStatus(d.resolution) }

// Resolve closes an OPEN dispute with the given resolution.
func (d *Dispute) Resolve(resolution string, at time.Time) error {
	resolution = strings.TrimSpace(resolution)
	if resolution == "" {
		return ErrResolutionIsRequired
	}
	if d.Status() != Open {
		return errs.NewInvalidStateError(errs.CodeDisputeNotOpen, "dispute is already "+d.Status().String())
	}
	d.resolution = &resolution
	d.resolvedAt = &at
	return nil
}
