package services

import (
	"fmt"

	"marketplace/internal/core/domain/model/role"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/domain/policy"
	"marketplace/internal/pkg/errs"
)

// AdministratorNotice is shown when a role requires administrator provisioning.
const AdministratorNotice = "this role is provisioned by an administrator; contact marketplace support to request it"

// RiderNotice is shown by the rider application endpoint while rider self-service is disabled.
const RiderNotice = "rider self-registration is closed; delivery partners are onboarded by an administrator, contact marketplace support"

// PromotionGate decides whether a role change may be attempted.
type PromotionGate struct {
	registry *policy.Registry
}

func NewPromotionGate(registry *policy.Registry) PromotionGate {
	return PromotionGate{registry: registry}
}

// CheckSelfService validates a promotion requested by the user themselves.
func (g PromotionGate) CheckSelfService(target role.Role) (policy.PromotionPath, error) {
	path, err := g.promotable(target)
	if err != nil {
		return policy.PromotionPath{}, err
	}
	if path.AdminProvisioned || !g.registry.IsSelfService(target) {
		return policy.PromotionPath{}, errs.NewPolicyDisabledError(
			errs.CodeSelfServiceDisabled,
			fmt.Sprintf("%s: %s", target, AdministratorNotice),
		)
	}
	return path, nil
}

// CheckRiderApplication is the gate of the rider application endpoint.
func (g PromotionGate) CheckRiderApplication() error {
	if !g.registry.IsSelfService(role.Rider) {
		return errs.NewPolicyDisabledError(errs.CodeRiderSelfServiceDisabled, RiderNotice)
	}
	return nil
}

// CheckProvisioning validates an administrator provisioning target for another user.
func (g PromotionGate) CheckProvisioning(actor user.Actor, target role.Role) (policy.PromotionPath, error) {
	if !actor.IsAdmin() {
		return policy.PromotionPath{}, errs.NewForbiddenError(errs.CodeAdminRequired, "only administrators can provision accounts")
	}
	return g.promotable(target)
}

func (g PromotionGate) promotable(target role.Role) (policy.PromotionPath, error) {
	if err := target.Validate(); err != nil {
		return policy.PromotionPath{}, err
	}
	path := g.registry.PromotionPath(target)
	if !path.Promotable {
		return policy.PromotionPath{}, errs.NewForbiddenError(
			errs.CodeRoleNotPromotable,
			fmt.Sprintf("%s is not a promotion target", target),
		)
	}
	return path, nil
}
