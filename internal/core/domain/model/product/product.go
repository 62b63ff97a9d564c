// Package product provides the Product entity whose stock is reserved at
// checkout and returned when an order is cancelled before dispatch.
package product

import (
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrNameIsRequired          = errs.NewValueIsRequiredError("name")
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

type Product struct {
	id       kernel.UUID
	vendorID kernel.UUID
	name     string
	price    int64
	stock    int
	guard    guard.ConstructorGuard
}

// NewProduct builds a product. Price is in minor currency units.
func NewProduct(id, vendorID kernel.UUID, name string, price int64, stock int) (*Product, error) {
	var nameErr, priceErr, stockErr error
	name = strings.TrimSpace(name)
	if name == "" {
		nameErr = ErrNameIsRequired
	}
	if price < 0 {
		priceErr = errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d is negative", price))
	}
	if stock < 0 {
		stockErr = errs.NewValueIsInvalidErrorWithCause("stock", fmt.Errorf("%d is negative", stock))
	}

	if err := errors.Join(id.Validate(), vendorID.Validate(), nameErr, priceErr, stockErr); err != nil {
		return nil, err
	}

	return &Product{
		id:       id,
		vendorID: vendorID,
		name:     name,
		price:    price,
		stock:    stock,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() kernel.UUID       { return p.id }
func (p *Product) VendorID() kernel.UUID { return p.vendorID }
func (p *Product) Name() string          { return p.name }
func (p *Product) Price() int64          { return p.price }
func (p *Product) Stock() int            { return p.stock }

// Reserve takes quantity units out of stock.
func (p *Product) Reserve(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if p.stock < quantity {
		return InsufficientStock(p.id, quantity)
	}
	p.stock -= quantity
	return nil
}

// Restock returns quantity units to stock.
func (p *Product) Restock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	p.stock += quantity
	return nil
}

// InsufficientStock is the Conflict returned when a reservation cannot be served.
func InsufficientStock(productID kernel.UUID, requested int) *errs.ConflictError {
	return errs.NewConflictError(
		errs.CodeInsufficientStock,
		fmt.Sprintf("product %s cannot serve %d units", productID, requested),
	)
}
