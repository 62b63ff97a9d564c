// Package role defines the closed set of marketplace roles.
package role

import (
	"fmt"
	"strings"

	"marketplace/internal/pkg/errs"
)

// Role is the authorization role of a user.
//
// The set is closed: every table keyed by Role (promotion paths, self-service
// presets, transport mappings) must list all of the values below.
type Role int

const (
	// Unknown catches uninitialized values.
	Unknown Role = iota
	Customer
	Vendor
	Rider
	DeliveryAgency
	Admin
)

// All returns every valid role in declaration order.
func All() []Role {
	return []Role{Customer, Vendor, Rider, DeliveryAgency, Admin}
}

func names() map[Role]string {
	return map[Role]string{
		Customer:       "CUSTOMER",
		Vendor:         "VENDOR",
		Rider:          "RIDER",
		DeliveryAgency: "DELIVERY_AGENCY",
		Admin:          "ADMIN",
	}
}

// String returns the persisted name of the role, or "UNKNOWN".
func (r Role) String() string {
	if s, ok := names()[r]; ok {
		return s
	}
	return "UNKNOWN"
}

// Validate rejects Unknown and out of range values.
func (r Role) Validate() error {
	if _, ok := names()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// Parse maps a persisted or transport name back to a Role.
// Matching is case-insensitive and ignores surrounding whitespace.
func Parse(s string) (Role, error) {
	want := strings.ToUpper(strings.TrimSpace(s))
	for r, name := range names() {
		if name == want {
			return r, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// IsDeliveryActor reports whether the role can carry delivery jobs.
func (r Role) IsDeliveryActor() bool {
	return r == Rider || r == DeliveryAgency
}
