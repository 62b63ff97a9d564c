package cmd

import (
	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/policy"
	"marketplace/internal/jobs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	registry   *policy.Registry
	logger     *zap.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *zap.Logger) (CompositionRoot, error) {
	registry, err := policy.NewRegistry(config.SelfServiceRoles...)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, logger),
		registry:   registry,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) promotionUoWFactory() commands.PromotionUoWFactory {
	return FuncPromotionUoWFactory(func() commands.PromotionUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) disputeUoWFactory() commands.DisputeUoWFactory {
	return FuncDisputeUoWFactory(func() commands.DisputeUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) CreatePromoteUserCommandHandler() commands.PromoteUserCommandHandler {
	return commands.NewPromoteUserCommandHandler(c.promotionUoWFactory(), c.registry, c.logger)
}

func (c *CompositionRoot) CreateApplyAsRiderCommandHandler() commands.ApplyAsRiderCommandHandler {
	return commands.NewApplyAsRiderCommandHandler(c.registry, c.CreatePromoteUserCommandHandler())
}

func (c *CompositionRoot) CreateProvisionDeliveryAgencyCommandHandler() commands.ProvisionDeliveryAgencyCommandHandler {
	return commands.NewProvisionDeliveryAgencyCommandHandler(c.promotionUoWFactory(), c.registry, c.logger)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	return commands.NewTransitionOrderCommandHandler(c.orderUoWFactory(), c.registry, c.logger)
}

func (c *CompositionRoot) CreatePostDeliveryJobCommandHandler() commands.PostDeliveryJobCommandHandler {
	return commands.NewPostDeliveryJobCommandHandler(c.deliveryUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateAssignDeliveryCommandHandler() commands.AssignDeliveryCommandHandler {
	return commands.NewAssignDeliveryCommandHandler(c.deliveryUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateAdvanceDeliveryCommandHandler() commands.AdvanceDeliveryCommandHandler {
	return commands.NewAdvanceDeliveryCommandHandler(c.deliveryUoWFactory(), c.registry, c.logger)
}

func (c *CompositionRoot) CreateCreateDisputeCommandHandler() commands.CreateDisputeCommandHandler {
	return commands.NewCreateDisputeCommandHandler(c.disputeUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateResolveDisputeCommandHandler() commands.ResolveDisputeCommandHandler {
	return commands.NewResolveDisputeCommandHandler(c.disputeUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, c.registry)
}

func (c *CompositionRoot) CreateGetDeliveryQueryHandler() queries.GetDeliveryQueryHandler {
	return queries.NewGetDeliveryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListMyDisputesQueryHandler() queries.ListMyDisputesQueryHandler {
	return queries.NewListMyDisputesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListDivergentDeliveriesQueryHandler() queries.ListDivergentDeliveriesQueryHandler {
	return queries.NewListDivergentDeliveriesQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every handler into the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	handlers := httpin.Handlers{
		PromoteUser:             c.CreatePromoteUserCommandHandler(),
		ApplyAsRider:            c.CreateApplyAsRiderCommandHandler(),
		ProvisionDeliveryAgency: c.CreateProvisionDeliveryAgencyCommandHandler(),
		PlaceOrder:              c.CreatePlaceOrderCommandHandler(),
		TransitionOrder:         c.CreateTransitionOrderCommandHandler(),
		PostDeliveryJob:         c.CreatePostDeliveryJobCommandHandler(),
		AssignDelivery:          c.CreateAssignDeliveryCommandHandler(),
		AdvanceDelivery:         c.CreateAdvanceDeliveryCommandHandler(),
		CreateDispute:           c.CreateCreateDisputeCommandHandler(),
		ResolveDispute:          c.CreateResolveDisputeCommandHandler(),
		GetOrder:                c.CreateGetOrderQueryHandler(),
		GetDelivery:             c.CreateGetDeliveryQueryHandler(),
		ListMyDisputes:          c.CreateListMyDisputesQueryHandler(),
	}
	return httpin.NewServer(handlers, httpin.NewAuthenticator(c.config.JWTSecret), c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateListDivergentDeliveriesQueryHandler(), c.config.ReconciliationSchedule, c.logger)
}

type FuncPromotionUoWFactory func() commands.PromotionUoW

func (f FuncPromotionUoWFactory) Create() commands.PromotionUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncDisputeUoWFactory func() commands.DisputeUoW

func (f FuncDisputeUoWFactory) Create() commands.DisputeUoW {
	return f()
}
