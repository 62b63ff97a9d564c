package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/dispute"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/guard"
)

var ErrResolveDisputeCommandIsNotConstructed = errors.New(
	"ResolveDisputeCommand must be created via NewResolveDisputeCommand constructor",
)

// ResolveDisputeCommand closes a dispute. A resolution of "REJECTED" rejects
// it; any other value resolves it.
type ResolveDisputeCommand struct {
	actor      user.Actor
	disputeID  kernel.UUID
	resolution string

	guard guard.ConstructorGuard
}

func NewResolveDisputeCommand(actor user.Actor, disputeID kernel.UUID, resolution string) (ResolveDisputeCommand, error) {
	var resolutionErr error
	if strings.TrimSpace(resolution) == "" {
		resolutionErr = dispute.ErrResolutionIsRequired
	}

	if err := errors.Join(disputeID.Validate(), resolutionErr); err != nil {
		return ResolveDisputeCommand{}, err
	}

	return ResolveDisputeCommand{
		actor:      actor,
		disputeID:  disputeID,
		resolution: resolution,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ResolveDisputeCommand) Validate() error {
	return c.guard.Validate(ErrResolveDisputeCommandIsNotConstructed)
}

func (c ResolveDisputeCommand) Actor() user.Actor      { return c.actor }
func (c ResolveDisputeCommand) DisputeID() kernel.UUID { return c.disputeID }
func (c ResolveDisputeCommand) Resolution() string     { return c.resolution }
