package orderrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/testdb"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *testdb.Container
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	suite.pg = testdb.StartPostgres(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.pg.DB, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_PersistsLinesInOrder() {
	ctx := context.Background()
	o := newOrder(suite.T())
	suite.tracker.On("TrackAggregate", o.ID(), o).Once()

	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().Len(got.Lines(), 2)
	for i, line := range o.Lines() {
		suite.Equal(line.ProductID(), got.Lines()[i].ProductID())
		suite.Equal(line.UnitPrice(), got.Lines()[i].UnitPrice())
	}
	suite.True(o.CreatedAt().Equal(got.CreatedAt()))
	suite.tracker.AssertExpectations(suite.T())
}

// Concurrent confirmations of the same PENDING order: the conditional
// update lets exactly one through.
func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_ConcurrentWriters() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	o := newOrder(suite.T())
	suite.Require().NoError(suite.repository.Add(ctx, o))

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		stale int
		won   int
	)
	for range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			copyOf, err := suite.repository.Get(ctx, o.ID())
			if err != nil {
				return
			}
			from, err := copyOf.Transition(forward, order.Confirmed, time.Now().UTC())
			if err != nil {
				return
			}
			err = suite.repository.UpdateStatus(ctx, copyOf, from)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				won++
			case suite.ErrorIs(err, ports.ErrStaleWrite):
				stale++
			}
		}()
	}
	wg.Wait()

	suite.Equal(1, won)
	suite.LessOrEqual(won+stale, 5)
	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, got.Status())
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration suite")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
