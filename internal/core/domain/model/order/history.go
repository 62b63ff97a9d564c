package order

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

// HistoryEntry records one applied status transition. ActorID is nil when
// the transition was applied by the system actor.
type HistoryEntry struct {
	OrderID   kernel.UUID
	From      Status
	To        Status
	ActorID   *kernel.UUID
	CreatedAt time.Time
}
