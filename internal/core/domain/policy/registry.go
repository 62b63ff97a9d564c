package policy

import (
	"fmt"
	"slices"
	"strings"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/profile"
	"marketplace/internal/core/domain/model/role"
	"marketplace/internal/pkg/errs"
)

type orderEdge struct {
	from, to order.Status
}

// PromotionPath describes how a user reaches a role.
type PromotionPath struct {
	Target role.Role
	// Promotable is false for roles that are never a promotion target.
	Promotable bool
	// Profile is the profile kind created together with the role change.
	Profile profile.Kind
	// AdminProvisioned roles are only reachable through an administrator.
	AdminProvisioned bool
}

// Registry holds the immutable marketplace rules.
type Registry struct {
	orderTransitions    map[order.Status][]order.Status
	orderActors         map[orderEdge]Relations
	deliveryTransitions map[delivery.Status][]delivery.Status
	promotionPaths      map[role.Role]PromotionPath
	selfService         map[role.Role]struct{}
}

// StrictSelfServiceRoles is the default preset: customers may only become vendors.
func StrictSelfServiceRoles() []role.Role {
	return []role.Role{role.Vendor}
}

// OpenSelfServiceRoles also lets customers register as riders.
func OpenSelfServiceRoles() []role.Role {
	return []role.Role{role.Vendor, role.Rider}
}

// ParseSelfServiceRoles reads the self-service configuration value. It accepts
// the preset names "strict" and "open" or a comma separated list of roles.
// An empty value selects the strict preset.
func ParseSelfServiceRoles(value string) ([]role.Role, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "strict":
		return StrictSelfServiceRoles(), nil
	case "open":
		return OpenSelfServiceRoles(), nil
	}

	var roles []role.Role
	for _, part := range strings.Split(value, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		r, err := role.Parse(part)
		if err != nil {
			return nil, err
		}
		roles = append(roles, r)
	}
	return roles, nil
}

// NewRegistry builds the registry with the given self-service roles. Every
// self-service role must be promotable without an administrator.
func NewRegistry(selfService ...role.Role) (*Registry, error) {
	r := &Registry{
		orderTransitions: map[order.Status][]order.Status{
			order.Pending:        {order.Confirmed, order.Cancelled},
			order.Confirmed:      {order.Processing, order.Cancelled},
			order.Processing:     {order.OutForDelivery, order.Cancelled},
			order.OutForDelivery: {order.Delivered, order.Cancelled},
			order.Delivered:      {},
			order.Cancelled:      {},
		},
		orderActors: map[orderEdge]Relations{
			{order.Pending, order.Confirmed}:         RelationVendor | RelationAdmin,
			{order.Confirmed, order.Processing}:      RelationVendor | RelationAdmin,
			{order.Processing, order.OutForDelivery}: RelationVendor | RelationAdmin,
			{order.OutForDelivery, order.Delivered}:  RelationSystem | RelationAdmin,
			{order.Pending, order.Cancelled}:         RelationCustomer | RelationVendor | RelationAdmin,
			{order.Confirmed, order.Cancelled}:       RelationCustomer | RelationVendor | RelationAdmin,
			{order.Processing, order.Cancelled}:      RelationVendor | RelationAdmin,
			{order.OutForDelivery, order.Cancelled}:  RelationAdmin,
		},
		deliveryTransitions: map[delivery.Status][]delivery.Status{
			delivery.AwaitingPickup: {delivery.PickedUp},
			delivery.PickedUp:       {delivery.OnTheWay},
			delivery.OnTheWay:       {delivery.Delivered},
			delivery.Delivered:      {},
		},
		promotionPaths: make(map[role.Role]PromotionPath),
		selfService:    make(map[role.Role]struct{}),
	}

	for _, target := range role.All() {
		r.promotionPaths[target] = promotionPathFor(target)
	}

	for _, sr := range selfService {
		if err := sr.Validate(); err != nil {
			return nil, err
		}
		path := r.promotionPaths[sr]
		if !path.Promotable || path.AdminProvisioned {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"self-service roles",
				fmt.Errorf("%s cannot be self-service", sr),
			)
		}
		r.selfService[sr] = struct{}{}
	}

	return r, nil
}

// promotionPathFor must list every role.
func promotionPathFor(target role.Role) PromotionPath {
	switch target {
	case role.Vendor:
		return PromotionPath{Target: target, Promotable: true, Profile: profile.Vendor}
	case role.Rider:
		return PromotionPath{Target: target, Promotable: true, Profile: profile.Rider}
	case role.DeliveryAgency:
		return PromotionPath{Target: target, Promotable: true, Profile: profile.Agency, AdminProvisioned: true}
	case role.Customer, role.Admin:
		return PromotionPath{Target: target}
	default:
		return PromotionPath{Target: role.Unknown}
	}
}

// AllowsOrderTransition reports whether from -> to is an edge of the order machine.
func (r *Registry) AllowsOrderTransition(from, to order.Status) bool {
	return slices.Contains(r.orderTransitions[from], to)
}

// NextOrderStatuses returns the statuses reachable from from in one step.
func (r *Registry) NextOrderStatuses(from order.Status) []order.Status {
	return slices.Clone(r.orderTransitions[from])
}

// OrderActorRelations returns the relations allowed to apply from -> to.
func (r *Registry) OrderActorRelations(from, to order.Status) Relations {
	return r.orderActors[orderEdge{from, to}]
}

// AllowsOrderActor reports whether an actor with relations rel may apply from -> to.
func (r *Registry) AllowsOrderActor(from, to order.Status, rel Relations) bool {
	return r.OrderActorRelations(from, to).Has(rel)
}

// AllowsDeliveryTransition reports whether from -> to is an edge of the delivery chain.
func (r *Registry) AllowsDeliveryTransition(from, to delivery.Status) bool {
	return slices.Contains(r.deliveryTransitions[from], to)
}

// PromotionPath returns how target can be reached.
func (r *Registry) PromotionPath(target role.Role) PromotionPath {
	if path, ok := r.promotionPaths[target]; ok {
		return path
	}
	return PromotionPath{Target: role.Unknown}
}

// IsSelfService reports whether a customer may request target on their own.
func (r *Registry) IsSelfService(target role.Role) bool {
	_, ok := r.selfService[target]
	return ok
}

// SelfServiceRoles returns the configured self-service roles in role order.
func (r *Registry) SelfServiceRoles() []role.Role {
	var out []role.Role
	for _, candidate := range role.All() {
		if r.IsSelfService(candidate) {
			out = append(out, candidate)
		}
	}
	return out
}

// OrderRules adapts the registry to order.TransitionRules.
func (r *Registry) OrderRules() order.TransitionRules {
	return orderRules{r}
}

// DeliveryRules adapts the registry to delivery.TransitionRules.
func (r *Registry) DeliveryRules() delivery.TransitionRules {
	return deliveryRules{r}
}

type orderRules struct{ r *Registry }

func (o orderRules) IsAllowed(from, to order.Status) bool {
	return o.r.AllowsOrderTransition(from, to)
}

type deliveryRules struct{ r *Registry }

func (d deliveryRules) IsAllowed(from, to delivery.Status) bool {
	return d.r.AllowsDeliveryTransition(from, to)
}
