package order

import (
	"fmt"
	"strings"

	"marketplace/internal/pkg/errs"
)

// Status represents the fulfillment state of an order.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the status of a freshly placed order. Stock is already reserved.
	Pending

	// Confirmed means the vendor accepted the order. The payment method may
	// be recorded on this transition.
	Confirmed

	// Processing means the vendor is preparing the order.
	Processing

	// OutForDelivery means a delivery actor picked the order up.
	OutForDelivery

	// Delivered is terminal. Only delivered orders can be disputed.
	Delivered

	// Cancelled is terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Pending:        "PENDING",
		Confirmed:      "CONFIRMED",
		Processing:     "PROCESSING",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Cancelled:      "CANCELLED",
	}
}

// Statuses returns every valid status in fulfillment order.
func Statuses() []Status {
	return []Status{Pending, Confirmed, Processing, OutForDelivery, Delivered, Cancelled}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("order status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status, or "UNKNOWN".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// ParseStatus maps a persisted or transport name back to a Status.
func ParseStatus(s string) (Status, error) {
	want := strings.ToUpper(strings.TrimSpace(s))
	for status, name := range getStatusStrings() {
		if name == want {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("order status", fmt.Errorf("%q is not a valid status", s))
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsPreDispatch reports whether the goods are still with the vendor.
// Cancelling from a pre-dispatch status returns the reserved stock.
func (s Status) IsPreDispatch() bool {
	return s == Pending || s == Confirmed || s == Processing
}

// IsDispatchable reports whether a delivery job may be posted for the order.
func (s Status) IsDispatchable() bool {
	return s == Confirmed || s == Processing
}
