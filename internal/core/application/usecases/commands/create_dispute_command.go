package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/dispute"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrCreateDisputeCommandIsNotConstructed = errors.New(
	"CreateDisputeCommand must be created via NewCreateDisputeCommand constructor",
)

// CreateDisputeCommand opens a dispute on a delivered order.
type CreateDisputeCommand struct {
	customerID  kernel.UUID
	orderID     kernel.UUID
	reason      string
	description string

	guard guard.ConstructorGuard
}

func NewCreateDisputeCommand(customerID, orderID kernel.UUID, reason, description string) (CreateDisputeCommand, error) {
	var reasonErr error
	if strings.TrimSpace(reason) == "" {
		reasonErr = dispute.ErrReasonIsRequired
	}

	if err := errors.Join(customerID.Validate(), orderID.Validate(), reasonErr); err != nil {
		return CreateDisputeCommand{}, err
	}

	return CreateDisputeCommand{
		customerID:  customerID,
		orderID:     orderID,
		reason:      reason,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateDisputeCommand) Validate() error {
	return c.guard.Validate(ErrCreateDisputeCommandIsNotConstructed)
}

func (c CreateDisputeCommand) CustomerID() kernel.UUID { return c.customerID }
func (c CreateDisputeCommand) OrderID() kernel.UUID    { return c.orderID }
func (c CreateDisputeCommand) Reason() string          { return c.reason }
func (c CreateDisputeCommand) Description() string     { return c.description }
