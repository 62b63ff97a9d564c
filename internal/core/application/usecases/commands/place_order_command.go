package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
)

// OrderItem is one requested product and quantity at checkout.
type OrderItem struct {
	ProductID kernel.UUID
	Quantity  int
}

// PlaceOrderCommand is a checkout with a single vendor.
type PlaceOrderCommand struct {
	customer      user.Actor
	vendorID      kernel.UUID
	items         []OrderItem
	paymentMethod order.PaymentMethod

	guard guard.ConstructorGuard
}

func NewPlaceOrderCommand(
	customer user.Actor,
	vendorID kernel.UUID,
	items []OrderItem,
	paymentMethod order.PaymentMethod,
) (PlaceOrderCommand, error) {
	var customerErr error
	if customer.IsSystem() {
		customerErr = errs.NewValueIsInvalidError("customer")
	}

	if err := errors.Join(
		customerErr,
		vendorID.Validate(),
		validateItems(items),
		paymentMethod.Validate(),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return PlaceOrderCommand{
		customer:      customer,
		vendorID:      vendorID,
		items:         append([]OrderItem(nil), items...),
		paymentMethod: paymentMethod,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func validateItems(items []OrderItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	seen := make(map[kernel.UUID]struct{}, len(items))
	for _, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return err
		}
		if item.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", item.Quantity))
		}
		if _, dup := seen[item.ProductID]; dup {
			return errs.NewValueIsInvalidErrorWithCause("items", fmt.Errorf("product %s is listed twice", item.ProductID))
		}
		seen[item.ProductID] = struct{}{}
	}
	return nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) Customer() user.Actor               { return c.customer }
func (c PlaceOrderCommand) VendorID() kernel.UUID              { return c.vendorID }
func (c PlaceOrderCommand) Items() []OrderItem                 { return append([]OrderItem(nil), c.items...) }
func (c PlaceOrderCommand) PaymentMethod() order.PaymentMethod { return c.paymentMethod }
