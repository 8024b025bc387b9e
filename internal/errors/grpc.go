package errors

import (
	"fmt"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorDomain identifies this service in status details.
const ErrorDomain = "rpg-sheet"

// descriptionKey carries the description in ErrorInfo metadata.
const descriptionKey = "description"

// ToGRPCError converts an error to a gRPC status error
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	return GRPCStatus(err).Err()
}

// GRPCStatus returns the gRPC status for any error. Kinded errors attach an
// ErrorInfo detail whose reason is the kind and whose metadata holds the
// description and the string form of every meta value.
func GRPCStatus(err error) *status.Status {
	if err == nil {
		return status.New(codes.OK, "")
	}
	if st, ok := status.FromError(err); ok {
		return st
	}

	var customErr *Error
	if !As(err, &customErr) {
		return status.New(codes.Internal, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)
	if customErr.Kind == "" && customErr.Description == "" && len(customErr.Meta) == 0 {
		return st
	}

	info := &errdetails.ErrorInfo{
		Reason:   string(customErr.Kind),
		Domain:   ErrorDomain,
		Metadata: make(map[string]string, len(customErr.Meta)+1),
	}
	for k, v := range customErr.Meta {
		info.Metadata[k] = fmt.Sprint(v)
	}
	if customErr.Description != "" {
		info.Metadata[descriptionKey] = customErr.Description
	}

	detailed, detailErr := st.WithDetails(info)
	if detailErr != nil {
		return st
	}
	return detailed
}

// FromGRPCError converts a gRPC error back to an *Error, restoring the kind
// and description from an ErrorInfo detail of this domain.
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	out := &Error{
		Code:    grpcCodeToCode(st.Code()),
		Message: st.Message(),
	}
	for _, detail := range st.Details() {
		info, ok := detail.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != ErrorDomain {
			continue
		}
		out.Kind = Kind(info.GetReason())
		for k, v := range info.GetMetadata() {
			if k == descriptionKey {
				out.Description = v
				continue
			}
			out.WithMeta(k, v)
		}
	}
	return out
}

// GRPCCode returns the corresponding gRPC code
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeOK:
		return codes.OK
	case CodeInvalidArgument:
		return codes.InvalidArgument
	case CodeNotFound:
		return codes.NotFound
	case CodeAlreadyExists:
		return codes.AlreadyExists
	case CodeFailedPrecondition:
		return codes.FailedPrecondition
	case CodeOutOfRange:
		return codes.OutOfRange
	case CodeInternal:
		return codes.Internal
	case CodeUnavailable:
		return codes.Unavailable
	case CodeDataLoss:
		return codes.DataLoss
	default:
		return codes.Unknown
	}
}

func grpcCodeToCode(grpcCode codes.Code) Code {
	switch grpcCode {
	case codes.OK:
		return CodeOK
	case codes.InvalidArgument:
		return CodeInvalidArgument
	case codes.NotFound:
		return CodeNotFound
	case codes.AlreadyExists:
		return CodeAlreadyExists
	case codes.FailedPrecondition:
		return CodeFailedPrecondition
	case codes.OutOfRange:
		return CodeOutOfRange
	case codes.Unavailable:
		return CodeUnavailable
	case codes.DataLoss:
		return CodeDataLoss
	default:
		return CodeInternal
	}
}
