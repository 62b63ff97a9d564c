package queries_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/testdb"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/role"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixture struct {
	db  *gorm.DB
	uow ports.UnitOfWork

	customer user.Actor
	vendor   user.Actor
	admin    user.Actor
	stranger user.Actor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testdb.NewSQLite(t)

	actor := func(r role.Role) user.Actor {
		a, err := user.NewActor(kernel.NewUUID(), r)
		require.NoError(t, err)
		return a
	}

	return &fixture{
		db:       db,
		uow:      postgres.NewGormUnitOfWorkFactory(db, zap.NewNop()).Create(),
		customer: actor(role.Customer),
		vendor:   actor(role.Vendor),
		admin:    actor(role.Admin),
		stranger: actor(role.Customer),
	}
}

func (f *fixture) order(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	line, err := order.NewLine(kernel.NewUUID(), 3, 250)
	require.NoError(t, err)

	now := time.Now().UTC()
	o, err := order.RestoreOrder(
		kernel.NewUUID(), f.customer.ID(), f.vendor.ID(),
		status, order.CashOnDelivery, []order.Line{line}, now, now,
	)
	require.NoError(t, err)
	require.NoError(t, f.uow.OrderRepository().Add(context.Background(), o))
	return o
}

func (f *fixture) delivery(t *testing.T, orderID kernel.UUID, status delivery.Status, assignee *kernel.UUID) *delivery.Delivery {
	t.Helper()
	now := time.Now().UTC()
	d, err := delivery.RestoreDelivery(kernel.NewUUID(), orderID, assignee, status, now, now)
	require.NoError(t, err)
	require.NoError(t, f.uow.DeliveryRepository().Add(context.Background(), d))
	return d
}
