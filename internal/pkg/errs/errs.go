package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsRequired   = errors.New("value is required")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidState      = errors.New("invalid state")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrConflict          = errors.New("conflict")
	ErrPolicyDisabled    = errors.New("policy disabled")
)

// sanitize keeps user supplied values on a single line.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %v)", msg, cause)
}

// ObjectNotFoundError reports that an identifier did not resolve to an entity.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	return withCause(fmt.Sprintf("%s: %s %s", ErrObjectNotFound, e.ParamName, sanitize(e.ID)), e.Cause)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

func (e *ObjectNotFoundError) ErrorCode() Code {
	return CodeNotFound
}

// ValueIsRequiredError reports a missing mandatory input.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

func (e *ValueIsRequiredError) ErrorCode() Code {
	return CodeValueRequired
}

// ValueIsInvalidError reports a malformed or out of domain input.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

func (e *ValueIsInvalidError) ErrorCode() Code {
	return CodeValueInvalid
}

// ForbiddenError reports that the actor has no rights over this entity instance.
type ForbiddenError struct {
	Code   Code
	Reason string
}

func NewForbiddenError(code Code, reason string) *ForbiddenError {
	return &ForbiddenError{Code: code, Reason: reason}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s: %s", ErrForbidden, e.Reason)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

func (e *ForbiddenError) ErrorCode() Code {
	return e.Code
}

// InvalidStateError reports that the entity exists and the actor is authorized,
// but its current state does not admit the operation.
type InvalidStateError struct {
	Code   Code
	Reason string
}

func NewInvalidStateError(code Code, reason string) *InvalidStateError {
	return &InvalidStateError{Code: code, Reason: reason}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidState, e.Reason)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

func (e *InvalidStateError) ErrorCode() Code {
	return e.Code
}

// InvalidTransitionError reports a state machine edge that is not allowed.
// From and To are kept separately so callers can render a precise message.
type InvalidTransitionError struct {
	Code   Code
	Entity string
	From   string
	To     string
}

func NewInvalidTransitionError(code Code, entity string, from, to fmt.Stringer) *InvalidTransitionError {
	return &InvalidTransitionError{Code: code, Entity: entity, From: from.String(), To: to.String()}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s %s -> %s", ErrInvalidTransition, e.Entity, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

func (e *InvalidTransitionError) ErrorCode() Code {
	return e.Code
}

// ConflictError reports a violated uniqueness or one-per-parent invariant.
type ConflictError struct {
	Code   Code
	Reason string
	Cause  error
}

func NewConflictError(code Code, reason string) *ConflictError {
	return &ConflictError{Code: code, Reason: reason}
}

func NewConflictErrorWithCause(code Code, reason string, cause error) *ConflictError {
	return &ConflictError{Code: code, Reason: reason, Cause: cause}
}

func (e *ConflictError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrConflict, e.Reason), e.Cause)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

func (e *ConflictError) ErrorCode() Code {
	return e.Code
}

// PolicyDisabledError reports a self-service capability withdrawn by the
// current policy. Notice is meant for end users and points to the
// administrator path. It also matches ErrForbidden.
type PolicyDisabledError struct {
	Code   Code
	Notice string
}

func NewPolicyDisabledError(code Code, notice string) *PolicyDisabledError {
	return &PolicyDisabledError{Code: code, Notice: notice}
}

func (e *PolicyDisabledError) Error() string {
	return fmt.Sprintf("%s: %s", ErrPolicyDisabled, e.Notice)
}

func (e *PolicyDisabledError) Unwrap() error {
	return ErrPolicyDisabled
}

func (e *PolicyDisabledError) Is(target error) bool {
	return target == ErrForbidden
}

func (e *PolicyDisabledError) ErrorCode() Code {
	return e.Code
}
