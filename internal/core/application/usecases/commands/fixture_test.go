package commands_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/testdb"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/domain/model/role"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/domain/policy"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type promotionFactory func() commands.PromotionUoW

func (f promotionFactory) Create() commands.PromotionUoW { return f() }

type orderFactory func() commands.OrderUoW

func (f orderFactory) Create() commands.OrderUoW { return f() }

type deliveryFactory func() commands.DeliveryUoW

func (f deliveryFactory) Create() commands.DeliveryUoW { return f() }

type disputeFactory func() commands.DisputeUoW

func (f disputeFactory) Create() commands.DisputeUoW { return f() }

// store runs handlers against an in-memory SQLite database.
type store struct {
	db       *gorm.DB
	uows     *postgres.GormUnitOfWorkFactory
	registry *policy.Registry
	logger   *zap.Logger

	customer user.Actor
	vendor   user.Actor
	rider    user.Actor
	admin    user.Actor
}

func newStore(t *testing.T, selfService ...role.Role) *store {
	t.Helper()
	if len(selfService) == 0 {
		selfService = policy.StrictSelfServiceRoles()
	}
	registry, err := policy.NewRegistry(selfService...)
	require.NoError(t, err)

	db := testdb.NewSQLite(t)
	actor := func(r role.Role) user.Actor {
		a, err := user.NewActor(kernel.NewUUID(), r)
		require.NoError(t, err)
		return a
	}

	return &store{
		db:       db,
		uows:     postgres.NewGormUnitOfWorkFactory(db, zap.NewNop()),
		registry: registry,
		logger:   zap.NewNop(),
		customer: actor(role.Customer),
		vendor:   actor(role.Vendor),
		rider:    actor(role.Rider),
		admin:    actor(role.Admin),
	}
}

// repos returns a unit of work without a transaction, for seeding and
// assertions outside of handlers.
func (s *store) repos() ports.UnitOfWork {
	return s.uows.Create()
}

func (s *store) promotions() promotionFactory {
	return func() commands.PromotionUoW { return s.uows.CreateGorm() }
}

func (s *store) orders() orderFactory {
	return func() commands.OrderUoW { return s.uows.CreateGorm() }
}

func (s *store) deliveries() deliveryFactory {
	return func() commands.DeliveryUoW { return s.uows.CreateGorm() }
}

func (s *store) disputes() disputeFactory {
	return func() commands.DisputeUoW { return s.uows.CreateGorm() }
}

func (s *store) addUser(t *testing.T, email string) *user.User {
	t.Helper()
	u, err := user.NewUser(kernel.NewUUID(), email, "Test User", time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, s.repos().UserRepository().Add(context.Background(), u))
	return u
}

func (s *store) addProduct(t *testing.T, price int64, stock int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), s.vendor.ID(), "Apples", price, stock)
	require.NoError(t, err)
	require.NoError(t, s.repos().ProductRepository().Add(context.Background(), p))
	return p
}

func (s *store) stock(t *testing.T, id kernel.UUID) int {
	t.Helper()
	p, err := s.repos().ProductRepository().Get(context.Background(), id)
	require.NoError(t, err)
	return p.Stock()
}

func (s *store) loadOrder(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()
	o, err := s.repos().OrderRepository().Get(context.Background(), id)
	require.NoError(t, err)
	return o
}

func (s *store) placeOrder(t *testing.T, items ...commands.OrderItem) *order.Order {
	t.Helper()
	cmd, err := commands.NewPlaceOrderCommand(s.customer, s.vendor.ID(), items, order.CashOnDelivery)
	require.NoError(t, err)
	o, err := commands.NewPlaceOrderCommandHandler(s.orders(), s.logger).Handle(t.Context(), cmd)
	require.NoError(t, err)
	return o
}

func (s *store) transition(t *testing.T, id kernel.UUID, actor user.Actor, target order.Status) (*order.Order, error) {
	t.Helper()
	cmd, err := commands.NewTransitionOrderCommand(id, actor, target, nil)
	require.NoError(t, err)
	return commands.NewTransitionOrderCommandHandler(s.orders(), s.registry, s.logger).Handle(t.Context(), cmd)
}

// orderIn places a one-line order and walks it to status through the vendor.
func (s *store) orderIn(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	p := s.addProduct(t, 500, 10)
	o := s.placeOrder(t, commands.OrderItem{ProductID: p.ID(), Quantity: 2})

	path := []order.Status{order.Confirmed, order.Processing, order.OutForDelivery}
	for _, next := range path {
		if o.Status() == status {
			break
		}
		var err error
		o, err = s.transition(t, o.ID(), s.vendor, next)
		require.NoError(t, err)
	}
	if status == order.Delivered {
		var err error
		o, err = s.transition(t, o.ID(), s.admin, order.Delivered)
		require.NoError(t, err)
	}
	require.Equal(t, status, o.Status())
	return o
}

// stranger is a customer with no relation to any seeded order.
func stranger(t *testing.T) user.Actor {
	t.Helper()
	a, err := user.NewActor(kernel.NewUUID(), role.Customer)
	require.NoError(t, err)
	return a
}
