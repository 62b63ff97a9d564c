package order

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Line is one product entry of an order. UnitPrice is in minor currency units.
type Line struct {
	productID kernel.UUID
	quantity  int
	unitPrice int64
}

func NewLine(productID kernel.UUID, quantity int, unitPrice int64) (Line, error) {
	var qtyErr, priceErr error
	if quantity <= 0 {
		qtyErr = errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPrice < 0 {
		priceErr = errs.NewValueIsInvalidErrorWithCause("unit price", fmt.Errorf("%d is negative", unitPrice))
	}
	if err := errors.Join(productID.Validate(), qtyErr, priceErr); err != nil {
		return Line{}, err
	}
	return Line{productID: productID, quantity: quantity, unitPrice: unitPrice}, nil
}

func (l Line) ProductID() kernel.UUID { return l.productID }
func (l Line) Quantity() int          { return l.quantity }
func (l Line) UnitPrice() int64       { return l.unitPrice }
func (l Line) Subtotal() int64        { return l.unitPrice * int64(l.quantity) }
