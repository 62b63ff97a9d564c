package disputerepo

import (
	"context"
	"errors"

	"marketplace/internal/adapters/out/postgres/sqlerr"
	"marketplace/internal/core/domain/model/dispute"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDisputeRepository implements ports.DisputeRepository using GORM.
type GormDisputeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormDisputeRepository(db *gorm.DB, tracker aggregateTracker) *GormDisputeRepository {
	return &GormDisputeRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormDisputeRepository) Add(ctx context.Context, aggregate *dispute.Dispute) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return sqlerr.Write(err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormDisputeRepository) Get(ctx context.Context, id kernel.UUID) (*dispute.Dispute, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DisputeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dispute", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormDisputeRepository) ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error) {
	if err := orderID.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&DisputeDTO{}).
		Where("order_id = ?", orderID.Value()).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Resolve writes the resolution once. A dispute that is already resolved or
// rejected is not matched.
func (r *GormDisputeRepository) Resolve(ctx context.Context, aggregate *dispute.Dispute) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if aggregate.Resolution() == nil {
		return dispute.ErrResolutionIsRequired
	}

	result := r.db.WithContext(ctx).
		Model(&DisputeDTO{}).
		Where("id = ? AND resolution IS NULL", aggregate.ID().Value()).
		Updates(map[string]any{
			"resolution":  *aggregate.Resolution(),
			"resolved_at": aggregate.ResolvedAt(),
		})
	if err := sqlerr.Conditional(result); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
