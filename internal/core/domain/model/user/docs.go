// Package user provides the User aggregate and the Actor value object.
//
// A User is created as a CUSTOMER and may be promoted exactly once to a
// profile-backed role. Which roles are reachable, and by whom, is decided by
// the policy registry; the aggregate only enforces that the promotion starts
// from CUSTOMER.
//
// Actor is the authenticated identity behind an operation. The system actor
// has no identifier and is used by internal workflows such as the delivery
// completion saga.
package user
