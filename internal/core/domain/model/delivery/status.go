package delivery

import (
	"fmt"
	"strings"

	"marketplace/internal/pkg/errs"
)

// Status is the sub-status of a delivery job.
type Status int

const (
	Unknown Status = iota
	AwaitingPickup
	PickedUp
	OnTheWay
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		AwaitingPickup: "AWAITING_PICKUP",
		PickedUp:       "PICKED_UP",
		OnTheWay:       "ON_THE_WAY",
		Delivered:      "DELIVERED",
	}
}

// Statuses returns every valid status in chain order.
func Statuses() []Status {
	return []Status{AwaitingPickup, PickedUp, OnTheWay, Delivered}
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("delivery status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func ParseStatus(s string) (Status, error) {
	want := strings.ToUpper(strings.TrimSpace(s))
	for status, name := range getStatusStrings() {
		if name == want {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("delivery status", fmt.Errorf("%q is not a valid status", s))
}

// IsRequestable reports whether a delivery actor may ask for s.
func (s Status) IsRequestable() bool {
	return s == PickedUp || s == OnTheWay || s == Delivered
}

// NotRequestable is the error for a target outside the requestable set.
// The current status is irrelevant for this failure and is reported as "*".
func NotRequestable(target string) *errs.InvalidTransitionError {
	return &errs.InvalidTransitionError{
		Code:   errs.CodeInvalidJobTransition,
		Entity: "delivery",
		From:   "*",
		To:     target,
	}
}
