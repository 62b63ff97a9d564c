package user

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/role"
)

// Actor is the identity invoking an operation.
type Actor struct {
	id     kernel.UUID
	role   role.Role
	system bool
}

// NewActor builds an actor from an authenticated user id and role.
func NewActor(id kernel.UUID, r role.Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := r.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: r}, nil
}

// SystemActor is used by internal workflows. It has no id and no role.
func SystemActor() Actor {
	return Actor{system: true}
}

func (a Actor) ID() kernel.UUID { return a.id }
func (a Actor) Role() role.Role { return a.role }
func (a Actor) IsSystem() bool  { return a.system }
func (a Actor) IsAdmin() bool   { return !a.system && a.role == role.Admin }

// Is reports whether the actor is the user with the given id.
func (a Actor) Is(id kernel.UUID) bool {
	return !a.system && a.id.IsEqual(id)
}

// HistoryID is the id recorded in audit rows; nil for the system actor.
func (a Actor) HistoryID() *kernel.UUID {
	if a.system {
		return nil
	}
	id := a.id
	return &id
}

func (a Actor) String() string {
	if a.system {
		return "SYSTEM"
	}
	return a.role.String() + ":" + a.id.String()
}
