package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConflict indicates that the operation would violate an invariant of the
// committed state (unit already borrowed, nothing to return, etc.).
var ErrConflict = errors.New("conflicting state")

// ErrPolicyViolation indicates that the borrower is not permitted to borrow
// under the active borrow policy.
var ErrPolicyViolation = errors.New("borrow policy violation")

// ErrTransient indicates that the atomic commit could not complete because of
// contention or the store being unavailable. Safe to retry.
var ErrTransient = errors.New("transient storage failure")

// RejectionCode is a stable, machine-readable code attached to every expected
// rejection so clients can branch on it instead of parsing messages.
type RejectionCode string

const (
	CodeUnitNotFound         RejectionCode = "UNIT_NOT_FOUND"
	CodeNoUnitsAvailable     RejectionCode = "NO_UNITS_AVAILABLE"
	CodeBorrowerAlreadyHolds RejectionCode = "BORROWER_ALREADY_HOLDS"
	CodePolicyWindowExceeded RejectionCode = "POLICY_WINDOW_EXCEEDED"
	CodeNoActiveReservation  RejectionCode = "NO_ACTIVE_RESERVATION"
	CodeStorageUnavailable   RejectionCode = "STORAGE_UNAVAILABLE"
)

// RejectionError is an expected, user-facing outcome of a borrow or return
// attempt. It wraps one of the category sentinels above so callers can use
// errors.Is for coarse handling and Code for exact branching.
type RejectionError struct {
	Code     RejectionCode
	Category error // one of ErrNotFound, ErrConflict, ErrPolicyViolation, ErrTransient
	Message  string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *RejectionError) Unwrap() error {
	return e.Category
}

// NewRejection builds a RejectionError for the given code and category.
func NewRejection(code RejectionCode, category error, message string) *RejectionError {
	return &RejectionError{Code: code, Category: category, Message: message}
}

// RejectionCodeOf extracts the stable code from an error chain, if any.
func RejectionCodeOf(err error) (RejectionCode, bool) {
	var rej *RejectionError
	if errors.As(err, &rej) {
		return rej.Code, true
	}
	return "", false
}

// AppError represents an unexpected internal failure with an associated
// status code and wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that also matches ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
