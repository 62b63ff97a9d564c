package policy

import (
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/role"
	"marketplace/internal/core/domain/model/user"
)

// Relations is the set of ways an actor relates to an order.
type Relations uint8

const (
	RelationCustomer Relations = 1 << iota
	RelationVendor
	RelationAdmin
	RelationSystem
)

// None is the empty relation set.
const None Relations = 0

// Has reports whether r and other share at least one relation.
func (r Relations) Has(other Relations) bool {
	return r&other != 0
}

func (r Relations) String() string {
	if r == None {
		return "NONE"
	}
	var parts []string
	for _, rel := range []struct {
		bit  Relations
		name string
	}{
		{RelationCustomer, "CUSTOMER"},
		{RelationVendor, "VENDOR"},
		{RelationAdmin, "ADMIN"},
		{RelationSystem, "SYSTEM"},
	} {
		if r&rel.bit != 0 {
			parts = append(parts, rel.name)
		}
	}
	return strings.Join(parts, "|")
}

// RelationsOf computes how actor relates to o. A vendor relation requires
// both the VENDOR role and being the order's vendor.
func RelationsOf(o *order.Order, actor user.Actor) Relations {
	return RelationsFor(o.CustomerID(), o.VendorID(), actor)
}

// RelationsFor is RelationsOf for read models that only carry the order's
// customer and vendor ids.
func RelationsFor(customerID, vendorID kernel.UUID, actor user.Actor) Relations {
	if actor.IsSystem() {
		return RelationSystem
	}

	var rel Relations
	if actor.IsAdmin() {
		rel |= RelationAdmin
	}
	if actor.Is(customerID) {
		rel |= RelationCustomer
	}
	if actor.Role() == role.Vendor && actor.Is(vendorID) {
		rel |= RelationVendor
	}
	return rel
}
