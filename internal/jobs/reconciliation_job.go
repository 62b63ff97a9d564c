package jobs

import (
	"context"

	"marketplace/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DivergenceLister is satisfied by queries.ListDivergentDeliveriesQueryHandler.
type DivergenceLister interface {
	Handle(ctx context.Context, query queries.ListDivergentDeliveriesQuery) ([]queries.DivergentDelivery, error)
}

// ReconciliationJob reports deliveries marked DELIVERED whose order is not.
// The completion saga never leaves such pairs behind, so every hit points
// to an out-of-band write and is logged for an operator. Nothing is repaired
// automatically.
type ReconciliationJob struct {
	lister   DivergenceLister
	schedule string
	cron     *cron.Cron
	logger   *zap.Logger
}

func NewReconciliationJob(lister DivergenceLister, schedule string, logger *zap.Logger) *ReconciliationJob {
	return &ReconciliationJob{
		lister:   lister,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With(zap.String("component", "reconciliation_job")),
	}
}

// Start schedules the job. The schedule uses the standard five field cron
// syntax or descriptors such as "@every 5m".
func (j *ReconciliationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		_, _ = j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("reconciliation job started", zap.String("schedule", j.schedule))
	return nil
}

// RunOnce performs a single pass and returns the number of divergent pairs.
func (j *ReconciliationJob) RunOnce(ctx context.Context) (int, error) {
	divergent, err := j.lister.Handle(ctx, queries.NewListDivergentDeliveriesQuery())
	if err != nil {
		j.logger.Error("reconciliation pass failed", zap.Error(err))
		return 0, err
	}

	for _, d := range divergent {
		j.logger.Warn("delivery and order diverge",
			zap.Stringer("delivery_id", d.DeliveryID),
			zap.Stringer("order_id", d.OrderID),
			zap.Stringer("order_status", d.OrderStatus),
			zap.Time("delivered_at", d.DeliveredAt),
		)
	}
	return len(divergent), nil
}

// Stop waits for a running pass to finish.
func (j *ReconciliationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("reconciliation job stopped")
}
