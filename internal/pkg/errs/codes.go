package errs

import "errors"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown is reported for errors that carry no domain code.
	CodeUnknown Code = "UNKNOWN"

	// Generic codes
	CodeNotFound      Code = "NOT_FOUND"
	CodeValueRequired Code = "VALUE_REQUIRED"
	CodeValueInvalid  Code = "VALUE_INVALID"
	CodeAdminRequired Code = "ADMIN_REQUIRED"

	// Role promotion codes
	CodeRoleNotPromotable        Code = "ROLE_NOT_PROMOTABLE"
	CodeSelfServiceDisabled      Code = "SELF_SERVICE_DISABLED"
	CodeRiderSelfServiceDisabled Code = "RIDER_SELF_SERVICE_DISABLED"
	CodeProfileAlreadyExists     Code = "PROFILE_ALREADY_EXISTS"
	CodeUserNotCustomer          Code = "USER_NOT_CUSTOMER"
	CodeNotAccountOwner          Code = "NOT_ACCOUNT_OWNER"

	// Order codes
	CodeInvalidOrderTransition Code = "INVALID_ORDER_TRANSITION"
	CodeOrderActorForbidden    Code = "ORDER_ACTOR_FORBIDDEN"
	CodeInsufficientStock      Code = "INSUFFICIENT_STOCK"

	// Delivery job codes
	CodeInvalidJobTransition  Code = "INVALID_JOB_TRANSITION"
	CodeJobNotOpen            Code = "JOB_NOT_OPEN"
	CodeJobAlreadyAssigned    Code = "JOB_ALREADY_ASSIGNED"
	CodeNotAssignedAgency     Code = "NOT_ASSIGNED_AGENCY"
	CodeNotDeliveryActor      Code = "NOT_DELIVERY_ACTOR"
	CodeDeliveryAlreadyExists Code = "DELIVERY_ALREADY_EXISTS"
	CodeOrderNotDispatchable  Code = "ORDER_NOT_DISPATCHABLE"

	// Dispute codes
	CodeNotOrderOwner        Code = "NOT_ORDER_OWNER"
	CodeOrderNotDelivered    Code = "ORDER_NOT_DELIVERED"
	CodeDisputeAlreadyExists Code = "DISPUTE_ALREADY_EXISTS"
	CodeDisputeNotOpen       Code = "DISPUTE_NOT_OPEN"
)

// Coded is implemented by every error in this package.
type Coded interface {
	error
	ErrorCode() Code
}

// CodeOf returns the code of the first coded error in err's chain,
// or CodeUnknown when there is none.
func CodeOf(err error) Code {
	var coded Coded
	if errors.As(err, &coded) {
		return coded.ErrorCode()
	}
	return CodeUnknown
}
