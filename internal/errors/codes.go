package errors

// Code classifies an error for callers and for the gRPC boundary
type Code string

// Error codes
const (
	CodeOK               Code = "OK"
	CodeInvalidArgument  Code = "INVALID_ARGUMENT"
	CodeNotFound         Code = "NOT_FOUND"
	CodeDeadlineExceeded Code = "DEADLINE_EXCEEDED"
	CodeUnavailable      Code = "UNAVAILABLE"
	CodeDataLoss         Code = "DATA_LOSS"
	CodeInternal         Code = "INTERNAL"
)

// String returns the code name
func (c Code) String() string {
	return string(c)
}
