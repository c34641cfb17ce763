// Package errors defines the error taxonomy shared by the core packages and
// its translation into gRPC status codes.
package errors

import (
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
)

// Class groups errors by who is at fault and whether a retry can help.
type Class string

const (
	ClassValidation     Class = "validation"
	ClassPolicy         Class = "policy"
	ClassInfrastructure Class = "infrastructure"
)

// Error is a deterministic, caller-visible failure with a stable reason code.
type Error struct {
	Class   Class
	Code    codes.Code
	Reason  string
	Message string
}

func (e *Error) Error() string { return e.Message }

// Retryable reports whether the caller may retry the same request later.
func (e *Error) Retryable() bool { return e.Class == ClassInfrastructure }

func newErr(class Class, code codes.Code, reason, msg string) *Error {
	return &Error{Class: class, Code: code, Reason: reason, Message: msg}
}

var (
	ErrInvalidTarget      = newErr(ClassPolicy, codes.InvalidArgument, "INVALID_TARGET", "cannot act on yourself")
	ErrInvalidDirection   = newErr(ClassValidation, codes.InvalidArgument, "INVALID_DIRECTION", "direction must be like or pass")
	ErrInvalidReason      = newErr(ClassValidation, codes.InvalidArgument, "INVALID_REASON", "unknown report reason")
	ErrInvalidGender      = newErr(ClassValidation, codes.InvalidArgument, "INVALID_GENDER", "unknown gender")
	ErrInvalidInterests   = newErr(ClassValidation, codes.InvalidArgument, "INVALID_INTERESTS", "interests must be a non-empty set of known genders")
	ErrInvalidPhotoType   = newErr(ClassValidation, codes.InvalidArgument, "INVALID_PHOTO_TYPE", "unknown photo type")
	ErrEmptyContent       = newErr(ClassValidation, codes.InvalidArgument, "EMPTY_CONTENT", "content must not be empty")
	ErrContentTooLarge    = newErr(ClassValidation, codes.InvalidArgument, "CONTENT_TOO_LARGE", "content exceeds the size limit")
	ErrInvalidPageToken   = newErr(ClassValidation, codes.InvalidArgument, "INVALID_PAGE_TOKEN", "invalid pagination token")
	ErrInvalidID          = newErr(ClassValidation, codes.InvalidArgument, "INVALID_ID", "identifier must be a valid uint64")
	ErrOutsideService     = newErr(ClassValidation, codes.InvalidArgument, "OUTSIDE_SERVICE_AREA", "locality is outside the service area")
	ErrNotFound           = newErr(ClassPolicy, codes.NotFound, "NOT_FOUND", "record not found")
	ErrNotParticipant     = newErr(ClassPolicy, codes.PermissionDenied, "NOT_PARTICIPANT", "requester is not a participant of this match")
	ErrIneligible         = newErr(ClassPolicy, codes.FailedPrecondition, "INELIGIBLE", "participants are not eligible to match")
	ErrSuspended          = newErr(ClassPolicy, codes.PermissionDenied, "SUSPENDED", "account is suspended")
	ErrInvalidLogin       = newErr(ClassPolicy, codes.Unauthenticated, "INVALID_CREDENTIALS", "invalid username or password")
	ErrUsernameTaken      = newErr(ClassPolicy, codes.AlreadyExists, "USERNAME_TAKEN", "username already registered")
	ErrAlreadyBlocked     = newErr(ClassPolicy, codes.AlreadyExists, "ALREADY_BLOCKED", "user already blocked")
	ErrPhotoLimit         = newErr(ClassPolicy, codes.FailedPrecondition, "PHOTO_LIMIT_REACHED", "photo limit reached")
	ErrDuplicateOwn       = newErr(ClassPolicy, codes.AlreadyExists, "DUPLICATE_OWN_CONTENT", "you already uploaded this photo")
	ErrContentClaimed     = newErr(ClassPolicy, codes.AlreadyExists, "CONTENT_ALREADY_CLAIMED", "this photo belongs to another account")
	ErrRateExceeded       = newErr(ClassPolicy, codes.ResourceExhausted, "RATE_EXCEEDED", "rate limit exceeded")
	ErrServiceUnavailable = newErr(ClassInfrastructure, codes.Unavailable, "SERVICE_UNAVAILABLE", "service temporarily unavailable, retry later")
)

// RateExceededError carries the abuse class and how long until the window resets.
// errors.Is(err, ErrRateExceeded) holds for every RateExceededError.
type RateExceededError struct {
	Class      string
	RetryAfter time.Duration
}

func (e *RateExceededError) Error() string {
	return fmt.Sprintf("rate limit exceeded for %s, retry after %s", e.Class, e.RetryAfter)
}

func (e *RateExceededError) Is(target error) bool { return target == ErrRateExceeded }

// InfraError wraps a persistence or counter-store failure.
type InfraError struct {
	Op  string
	Err error
}

func (e *InfraError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *InfraError) Unwrap() error { return e.Err }

// Infra wraps err as a retryable infrastructure failure. A nil err stays nil.
func Infra(op string, err error) error {
	if err == nil {
		return nil
	}
	var ie *InfraError
	if errors.As(err, &ie) {
		return err
	}
	return &InfraError{Op: op, Err: err}
}

// IsInfrastructure reports whether err is (or wraps) an infrastructure failure.
func IsInfrastructure(err error) bool {
	var ie *InfraError
	if errors.As(err, &ie) {
		return true
	}
	var e *Error
	return errors.As(err, &e) && e.Class == ClassInfrastructure
}
