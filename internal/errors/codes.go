package errors

// Code classifies an error by what the caller can do about it
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// ExitCode maps the code to a process exit status. Usage errors follow the
// shell convention of 2 and an unavailable store uses EX_UNAVAILABLE.
func (c Code) ExitCode() int {
	switch c {
	case CodeOK:
		return 0
	case CodeInvalidArgument:
		return 2
	case CodeNotFound:
		return 3
	case CodeFailedPrecondition:
		return 4
	case CodeAlreadyExists:
		return 5
	case CodeUnavailable:
		return 69
	case CodeCanceled:
		return 130
	default:
		return 1
	}
}
