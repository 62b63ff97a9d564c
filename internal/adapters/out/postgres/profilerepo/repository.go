package profilerepo

import (
	"context"
	"errors"

	"marketplace/internal/adapters/out/postgres/sqlerr"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/profile"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProfileRepository implements ports.ProfileRepository using GORM.
type GormProfileRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormProfileRepository(db *gorm.DB, tracker aggregateTracker) *GormProfileRepository {
	return &GormProfileRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the profile into the table of its kind. The unique user_id
// index turns a second profile of the same kind into ports.ErrDuplicateKey.
func (r *GormProfileRepository) Add(ctx context.Context, p profile.Profile) error {
	if p == nil {
		return errs.NewValueIsRequiredError("profile")
	}

	dto, err := fromDomain(p)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(dto).Error; err != nil {
		return sqlerr.Write(err)
	}

	r.tracker.TrackAggregate(p.ID(), p)
	return nil
}

func (r *GormProfileRepository) Exists(ctx context.Context, userID kernel.UUID, kind profile.Kind) (bool, error) {
	if err := userID.Validate(); err != nil {
		return false, err
	}

	model, err := modelFor(kind)
	if err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(model).Where("user_id = ?", userID.Value()).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormProfileRepository) Get(ctx context.Context, userID kernel.UUID, kind profile.Kind) (profile.Profile, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	dto, err := modelFor(kind)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).First(dto, "user_id = ?", userID.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(kind.String()+" profile", userID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
