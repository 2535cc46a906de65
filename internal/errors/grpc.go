package errors

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var grpcCodes = map[Code]codes.Code{
	CodeOK:               codes.OK,
	CodeInvalidArgument:  codes.InvalidArgument,
	CodeNotFound:         codes.NotFound,
	CodeDeadlineExceeded: codes.DeadlineExceeded,
	CodeUnavailable:      codes.Unavailable,
	CodeDataLoss:         codes.DataLoss,
	CodeInternal:         codes.Internal,
}

// GRPCCode returns the gRPC status code for c
func (c Code) GRPCCode() codes.Code {
	if gc, ok := grpcCodes[c]; ok {
		return gc
	}
	return codes.Unknown
}

// ToGRPCError converts err into a status error carrying only the outermost
// message; causes stay in the server logs
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	if e, ok := find(err); ok {
		return status.Error(e.Code.GRPCCode(), e.Message)
	}
	return status.Error(codes.Internal, err.Error())
}

// FromGRPCError converts a status error back into an *Error. Codes without
// a counterpart become CodeInternal; non-status errors are returned as is.
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	code := CodeInternal
	for c, gc := range grpcCodes {
		if gc == st.Code() {
			code = c
			break
		}
	}
	return New(code, st.Message())
}
