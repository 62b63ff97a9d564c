package order

import (
	"fmt"
	"strings"

	"marketplace/internal/pkg/errs"
)

// PaymentMethod is the payment tag attached to an order. Settlement is
// handled outside the marketplace core.
type PaymentMethod int

const (
	UnknownPaymentMethod PaymentMethod = iota
	CashOnDelivery
	Card
	Wallet
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		CashOnDelivery: "CASH_ON_DELIVERY",
		Card:           "CARD",
		Wallet:         "WALLET",
	}
}

func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "UNKNOWN"
}

func (m PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment method", fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	want := strings.ToUpper(strings.TrimSpace(s))
	for m, name := range getPaymentMethodStrings() {
		if name == want {
			return m, nil
		}
	}
	return UnknownPaymentMethod, errs.NewValueIsInvalidErrorWithCause("payment method", fmt.Errorf("%q is not a valid payment method", s))
}
