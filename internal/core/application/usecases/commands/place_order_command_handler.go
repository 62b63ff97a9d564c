package commands

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"

	"go.uber.org/zap"
)

// PlaceOrderCommandHandler reserves stock and creates a PENDING order in one
// transaction. Prices are taken from the catalog, not from the caller.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *zap.Logger
}

func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory, logger *zap.Logger) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{uowFactory: uowFactory, logger: logger}
}

func (h PlaceOrderCommandHandler) Handle(ctx context.Context, command PlaceOrderCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	products := uow.ProductRepository()
	orders := uow.OrderRepository()

	lines := make([]order.Line, 0, len(command.Items()))
	for _, item := range command.Items() {
		p, err := products.Get(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if !p.VendorID().IsEqual(command.VendorID()) {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"items",
				fmt.Errorf("product %s is not sold by vendor %s", p.ID(), command.VendorID()),
			)
		}

		if err = products.Reserve(ctx, p.ID(), item.Quantity); err != nil {
			if isStale(err) {
				return nil, product.InsufficientStock(p.ID(), item.Quantity)
			}
			return nil, err
		}

		line, err := order.NewLine(p.ID(), item.Quantity, p.Price())
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	o, err := order.NewOrder(
		kernel.NewUUID(),
		command.Customer().ID(),
		command.VendorID(),
		lines,
		command.PaymentMethod(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = orders.Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.Info("order placed",
		zap.Stringer("order_id", o.ID()),
		zap.Stringer("customer_id", o.CustomerID()),
		zap.Int64("total", o.Total()),
	)
	return o, nil
}
