package commands_test

import (
	"context"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/dispute"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/domain/model/profile"
	"marketplace/internal/core/domain/model/role"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, u *user.User, expected role.Role) error {
	return m.Called(ctx, u, expected).Error(0)
}

type MockProfileRepository struct{ mock.Mock }

func (m *MockProfileRepository) Add(ctx context.Context, p profile.Profile) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProfileRepository) Exists(ctx context.Context, userID kernel.UUID, kind profile.Kind) (bool, error) {
	args := m.Called(ctx, userID, kind)
	return args.Bool(0), args.Error(1)
}

func (m *MockProfileRepository) Get(ctx context.Context, userID kernel.UUID, kind profile.Kind) (profile.Profile, error) {
	args := m.Called(ctx, userID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(profile.Profile), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) Reserve(ctx context.Context, id kernel.UUID, quantity int) error {
	return m.Called(ctx, id, quantity).Error(0)
}

func (m *MockProductRepository) Restock(ctx context.Context, id kernel.UUID, quantity int) error {
	return m.Called(ctx, id, quantity).Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, o *order.Order, expected order.Status) error {
	return m.Called(ctx, o, expected).Error(0)
}

func (m *MockOrderRepository) AppendHistory(ctx context.Context, entry order.HistoryEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockOrderRepository) History(ctx context.Context, orderID kernel.UUID) ([]order.HistoryEntry, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.HistoryEntry), args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) Assign(ctx context.Context, d *delivery.Delivery) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDeliveryRepository) UpdateStatus(ctx context.Context, d *delivery.Delivery, expected delivery.Status) error {
	return m.Called(ctx, d, expected).Error(0)
}

type MockDisputeRepository struct{ mock.Mock }

func (m *MockDisputeRepository) Add(ctx context.Context, d *dispute.Dispute) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDisputeRepository) Get(ctx context.Context, id kernel.UUID) (*dispute.Dispute, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dispute.Dispute), args.Error(1)
}

func (m *MockDisputeRepository) ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

func (m *MockDisputeRepository) Resolve(ctx context.Context, d *dispute.Dispute) error {
	return m.Called(ctx, d).Error(0)
}

// MockUoW implements every unit of work flavour the handlers depend on.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) UserRepository() ports.UserRepository {
	return m.Called().Get(0).(ports.UserRepository)
}

func (m *MockUoW) ProfileRepository() ports.ProfileRepository {
	return m.Called().Get(0).(ports.ProfileRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	return m.Called().Get(0).(ports.ProductRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	return m.Called().Get(0).(ports.DeliveryRepository)
}

func (m *MockUoW) DisputeRepository() ports.DisputeRepository {
	return m.Called().Get(0).(ports.DisputeRepository)
}

// MockUoWFactory hands out the same MockUoW for every flavour.
type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) create() *MockUoW {
	return m.Called().Get(0).(*MockUoW)
}

type mockPromotionFactory struct{ *MockUoWFactory }

func (f mockPromotionFactory) Create() commands.PromotionUoW { return f.create() }

type mockOrderFactory struct{ *MockUoWFactory }

func (f mockOrderFactory) Create() commands.OrderUoW { return f.create() }

type mockDeliveryFactory struct{ *MockUoWFactory }

func (f mockDeliveryFactory) Create() commands.DeliveryUoW { return f.create() }

type mockDisputeFactory struct{ *MockUoWFactory }

func (f mockDisputeFactory) Create() commands.DisputeUoW { return f.create() }
