package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/role"
	"marketplace/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for users.
type UserRepository interface {
	Add(ctx context.Context, aggregate *user.User) error

	// Get returns errs.ObjectNotFoundError when the id is unknown.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// UpdateRole stores aggregate.Role() only if the stored role is still
	// expected. A miss returns ErrStaleWrite.
	UpdateRole(ctx context.Context, aggregate *user.User, expected role.Role) error
}
