package commands

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/profile"
	"marketplace/internal/core/domain/model/role"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/domain/policy"
	"marketplace/internal/pkg/errs"
)

// PromotionResult is returned by every promotion flavour.
type PromotionResult struct {
	User    *user.User
	Profile profile.Profile
}

// pathCheck decides whether the promotion may proceed once the user is known.
type pathCheck func() (policy.PromotionPath, error)

// promote runs the shared promotion transaction:
//
//	user exists -> path check -> no profile of that kind -> user is CUSTOMER
//	-> create profile -> conditional role update -> commit
//
// Any failure rolls the whole unit of work back, so a partial promotion is
// never observable.
func promote(
	ctx context.Context,
	factory PromotionUoWFactory,
	userID kernel.UUID,
	target role.Role,
	details profile.Details,
	check pathCheck,
) (PromotionResult, error) {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PromotionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	users := uow.UserRepository()
	profiles := uow.ProfileRepository()

	u, err := users.Get(ctx, userID)
	if err != nil {
		return PromotionResult{}, err
	}

	path, err := check()
	if err != nil {
		return PromotionResult{}, err
	}

	if details.Kind() != path.Profile {
		return PromotionResult{}, errs.NewValueIsInvalidErrorWithCause(
			"profile details",
			fmt.Errorf("%s details do not match role %s", details.Kind(), target),
		)
	}

	exists, err := profiles.Exists(ctx, userID, path.Profile)
	if err != nil {
		return PromotionResult{}, err
	}
	if exists {
		return PromotionResult{}, profileAlreadyExists(path.Profile)
	}

	previous := u.Role()
	if err = u.Promote(target); err != nil {
		return PromotionResult{}, err
	}

	p, err := details.Build(kernel.NewUUID(), userID, time.Now().UTC())
	if err != nil {
		return PromotionResult{}, err
	}

	if err = profiles.Add(ctx, p); err != nil {
		return PromotionResult{}, conflictOn(err, errs.CodeProfileAlreadyExists, profileAlreadyExists(path.Profile).Reason)
	}

	if err = users.UpdateRole(ctx, u, previous); err != nil {
		return PromotionResult{}, conflictOn(err, errs.CodeProfileAlreadyExists, "user role changed concurrently")
	}

	if err = uow.Commit(ctx); err != nil {
		return PromotionResult{}, err
	}

	return PromotionResult{User: u, Profile: p}, nil
}

func profileAlreadyExists(kind profile.Kind) *errs.ConflictError {
	return errs.NewConflictError(errs.CodeProfileAlreadyExists, fmt.Sprintf("user already has a %s", kind))
}
