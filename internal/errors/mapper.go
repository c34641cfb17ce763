// internal/errors/mapper.go
package errors

import (
	"context"
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
	"google.golang.org/protobuf/types/known/durationpb"
	"gorm.io/gorm"
)

// Domain is reported in ErrorInfo details so clients can tell our reason codes apart.
const Domain = "matchcore"

// Map converts repo/infra/domain errors into gRPC-friendly status errors.
// Keeps service layer clean by centralizing error mapping.
func Map(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var rate *RateExceededError
	var domainErr *Error

	switch {
	case errors.As(err, &rate):
		st := status.New(codes.ResourceExhausted, rate.Error())
		return withDetails(st,
			&errdetails.ErrorInfo{Reason: ErrRateExceeded.Reason, Domain: Domain, Metadata: map[string]string{"class": rate.Class}},
			&errdetails.RetryInfo{RetryDelay: durationpb.New(rate.RetryAfter)},
		)

	case errors.As(err, &domainErr):
		st := status.New(domainErr.Code, domainErr.Message)
		return withDetails(st, &errdetails.ErrorInfo{Reason: domainErr.Reason, Domain: Domain})

	case errors.Is(err, gorm.ErrRecordNotFound):
		return status.Error(codes.NotFound, "record not found")

	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "request timed out")

	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request was canceled")

	case IsInfrastructure(err):
		return status.Error(codes.Unavailable, "backing store unavailable, retry later")

	default:
		// fallback → bubble up error message for debugging
		return status.Error(codes.Internal, err.Error())
	}
}

// ReasonOf extracts the ErrorInfo reason from a status error, or "".
func ReasonOf(err error) string {
	st, ok := status.FromError(err)
	if !ok {
		return ""
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info.GetReason()
		}
	}
	return ""
}

func withDetails(st *status.Status, details ...protoadapt.MessageV1) error {
	detailed, err := st.WithDetails(details...)
	if err != nil {
		return st.Err()
	}
	return detailed.Err()
}

// InvalidArgument creates a gRPC InvalidArgument error.
// Use this in service layer for bad input validation.
func InvalidArgument(msg string) error {
	return status.Error(codes.InvalidArgument, msg)
}

// AlreadyExists creates a gRPC AlreadyExists error.
func AlreadyExists(msg string) error {
	return status.Error(codes.AlreadyExists, msg)
}
