package user

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/role"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrEmailIsRequired       = errs.NewValueIsRequiredError("email")
	ErrDisplayNameIsRequired = errs.NewValueIsRequiredError("display name")
	// ErrUserIsNotConstructed is returned when a User was not built via NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")
)

// User is the root of the ownership graph: profiles, orders and disputes
// all point back to a user.
type User struct {
	id          kernel.UUID
	email       string
	displayName string
	role        role.Role
	createdAt   time.Time
	guard       guard.ConstructorGuard
}

// NewUser registers a user with the CUSTOMER role.
func NewUser(id kernel.UUID, email, displayName string, createdAt time.Time) (*User, error) {
	return RestoreUser(id, email, displayName, role.Customer, createdAt)
}

// RestoreUser rebuilds a user loaded from storage.
func RestoreUser(id kernel.UUID, email, displayName string, r role.Role, createdAt time.Time) (*User, error) {
	u := &User{
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setDisplayName(displayName),
		u.setRole(r),
	); err != nil {
		return nil, err
	}

	return u, nil
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() kernel.UUID      { return u.id }
func (u *User) Email() string        { return u.email }
func (u *User) DisplayName() string  { return u.displayName }
func (u *User) Role() role.Role      { return u.role }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) IsEqual(o *User) bool { return o != nil && u.id.IsEqual(o.id) }
func (u *User) IsCustomer() bool     { return u.role == role.Customer }
func (u *User) AsActor() Actor       { return Actor{id: u.id, role: u.role} }

// Promote moves the user from CUSTOMER to target. Promotion is one-shot:
// any other current role yields InvalidState USER_NOT_CUSTOMER.
func (u *User) Promote(target role.Role) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if u.role != role.Customer {
		return errs.NewInvalidStateError(
			errs.CodeUserNotCustomer,
			fmt.Sprintf("user is %s, only %s accounts can be promoted", u.role, role.Customer),
		)
	}
	u.role = target
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailIsRequired
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	u.email = email
	return nil
}

func (u *User) setDisplayName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrDisplayNameIsRequired
	}
	u.displayName = name
	return nil
}

func (u *User) setRole(r role.Role) error {
	if err := r.Validate(); err != nil {
		return err
	}
	u.role = r
	return nil
}
