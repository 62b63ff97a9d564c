package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/profile"
)

// ProfileRepository persists every profile kind. Each kind has its own table
// with a unique user_id.
type ProfileRepository interface {
	// Add returns ErrDuplicateKey when the user already has a profile of this kind.
	Add(ctx context.Context, p profile.Profile) error

	Exists(ctx context.Context, userID kernel.UUID, kind profile.Kind) (bool, error)

	// Get returns errs.ObjectNotFoundError when the user has no profile of this kind.
	Get(ctx context.Context, userID kernel.UUID, kind profile.Kind) (profile.Profile, error)
}
